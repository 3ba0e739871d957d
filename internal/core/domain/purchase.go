package domain

import (
	"errors"

	"github.com/samber/lo"
)

const MaxTicketsPerPurchase = 20

const (
	MsgInvalidAccountID      = "Account id not valid"
	MsgInvalidTicketType     = "Ticket type not valid"
	MsgMinimumTickets        = "Must purchase 1 ticket at minimum"
	MsgAdultRequired         = "Child and Infant tickets cannot be purchased without purchasing an Adult ticket"
	MsgInfantPerAdult        = "Infants will be sitting on an Adult's lap. 1 Infant per Adult"
	MsgMaximumTicketsReached = "Only a maximum of 20 tickets that can be purchased at a time"
)

type InvalidPurchaseError struct {
	Message string
}

func NewInvalidPurchaseError(msg string) *InvalidPurchaseError {
	return &InvalidPurchaseError{Message: msg}
}

func (e *InvalidPurchaseError) Error() string {
	return e.Message
}

func IsInvalidPurchase(err error) bool {
	var target *InvalidPurchaseError
	return errors.As(err, &target)
}

// Totals is the aggregate of a purchase request. Requests of the same type
// are additive.
type Totals struct {
	Tickets int
	Amount  int
	Seats   int
	ByType  map[TicketType]int
}

func (t Totals) Count(ticketType TicketType) int {
	return t.ByType[ticketType]
}

func Summarize(requests []TicketTypeRequest) Totals {
	byType := make(map[TicketType]int, len(ticketRules))
	for _, r := range requests {
		byType[r.Type()] += r.NoOfTickets()
	}

	return Totals{
		Tickets: lo.SumBy(requests, TicketTypeRequest.NoOfTickets),
		Amount:  lo.SumBy(requests, TicketTypeRequest.TotalAmount),
		Seats:   lo.SumBy(requests, TicketTypeRequest.TotalSeats),
		ByType:  byType,
	}
}
