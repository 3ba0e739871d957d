package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/srgjo27/ticket_purchase/internal/core/domain"
	"github.com/srgjo27/ticket_purchase/internal/platform/log"
)

type PaymentBalances interface {
	Balance(ctx context.Context, accountID int64) (int64, error)
}

type SeatReservations interface {
	ReservedSeats(ctx context.Context, accountID int64) (int, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.SeatReservation, error)
}

type ReservationResponse struct {
	ID         string    `json:"id"`
	Seats      int       `json:"seats"`
	ReservedAt time.Time `json:"reserved_at"`
}

type AccountPurchasesResponse struct {
	AccountID     int64                 `json:"account_id"`
	TotalPaid     int64                 `json:"total_paid"`
	ReservedSeats int                   `json:"reserved_seats"`
	Reservations  []ReservationResponse `json:"reservations"`
}

// AccountHandler reports what the payment and seat reservation services
// have recorded for an account.
type AccountHandler struct {
	payments     PaymentBalances
	reservations SeatReservations
}

func NewAccountHandler(payments PaymentBalances, reservations SeatReservations) *AccountHandler {
	return &AccountHandler{
		payments:     payments,
		reservations: reservations,
	}
}

func (h *AccountHandler) GetPurchases(c echo.Context) error {
	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || accountID < 1 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.MsgInvalidAccountID})
	}

	ctx := c.Request().Context()
	logger := log.FromContext(ctx).WithField("account_id", accountID)

	paid, err := h.payments.Balance(ctx, accountID)
	if err != nil {
		logger.WithError(err).Error("Failed to read payment balance")
		return c.JSON(http.StatusInternalServerError, internalError(ctx))
	}

	seats, err := h.reservations.ReservedSeats(ctx, accountID)
	if err != nil {
		logger.WithError(err).Error("Failed to read reserved seats")
		return c.JSON(http.StatusInternalServerError, internalError(ctx))
	}

	reservations, err := h.reservations.ListByAccount(ctx, accountID)
	if err != nil {
		logger.WithError(err).Error("Failed to list reservations")
		return c.JSON(http.StatusInternalServerError, internalError(ctx))
	}

	resp := AccountPurchasesResponse{
		AccountID:     accountID,
		TotalPaid:     paid,
		ReservedSeats: seats,
		Reservations:  make([]ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, ReservationResponse{
			ID:         r.ID.String(),
			Seats:      r.Seats,
			ReservedAt: r.ReservedAt,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func internalError(ctx context.Context) errorResponse {
	return errorResponse{
		Error:         "internal server error",
		CorrelationID: log.CorrelationIDFromContext(ctx),
	}
}
