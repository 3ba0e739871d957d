package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/srgjo27/ticket_purchase/internal/core/domain"
	"github.com/srgjo27/ticket_purchase/internal/platform/log"
)

type SeatReservationRepository struct {
	db *sqlx.DB
}

func NewSeatReservationRepository(db *sqlx.DB) *SeatReservationRepository {
	return &SeatReservationRepository{db: db}
}

func (r *SeatReservationRepository) ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error {
	reservation := domain.SeatReservation{
		ID:         uuid.New(),
		AccountID:  accountID,
		Seats:      totalSeatsToAllocate,
		ReservedAt: time.Now().UTC(),
	}

	query := `
	INSERT INTO seat_reservations (id, account_id, seats, reserved_at)
	VALUES (:id, :account_id, :seats, :reserved_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, reservation); err != nil {
		return fmt.Errorf("failed to reserve %d seats for account %d: %w", totalSeatsToAllocate, accountID, err)
	}

	log.FromContext(ctx).
		WithField("account_id", accountID).
		WithField("reservation_id", reservation.ID).
		Debugf("Reserved %d seats", totalSeatsToAllocate)

	return nil
}

func (r *SeatReservationRepository) ReservedSeats(ctx context.Context, accountID int64) (int, error) {
	query := `
	SELECT COALESCE(SUM(seats), 0)
	FROM seat_reservations
	WHERE account_id = $1
	`

	var seats int
	if err := r.db.GetContext(ctx, &seats, query, accountID); err != nil {
		return 0, fmt.Errorf("failed to count reserved seats for account %d: %w", accountID, err)
	}

	return seats, nil
}

func (r *SeatReservationRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.SeatReservation, error) {
	query := `
	SELECT id, account_id, seats, reserved_at
	FROM seat_reservations
	WHERE account_id = $1
	ORDER BY reserved_at
	`

	var reservations []domain.SeatReservation
	if err := r.db.SelectContext(ctx, &reservations, query, accountID); err != nil {
		return nil, fmt.Errorf("failed to list reservations for account %d: %w", accountID, err)
	}

	return reservations, nil
}
