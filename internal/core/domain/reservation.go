package domain

import (
	"time"

	"github.com/google/uuid"
)

type SeatReservation struct {
	ID         uuid.UUID `db:"id"`
	AccountID  int64     `db:"account_id"`
	Seats      int       `db:"seats"`
	ReservedAt time.Time `db:"reserved_at"`
}
