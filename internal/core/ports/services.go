package ports

import "context"

type TicketPaymentService interface {
	MakePayment(ctx context.Context, accountID int64, totalAmountToPay int) error
}

type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error
}
