package domain

import (
	"errors"
	"fmt"
	"strings"
)

type TicketType string

const (
	TicketAdult  TicketType = "ADULT"
	TicketChild  TicketType = "CHILD"
	TicketInfant TicketType = "INFANT"
)

var ErrUnknownTicketType = errors.New("unknown ticket type")

type ticketRule struct {
	price int
	seats int
}

// Infants sit on an adult's lap, so they neither pay nor take a seat.
var ticketRules = map[TicketType]ticketRule{
	TicketAdult:  {price: 20, seats: 1},
	TicketChild:  {price: 10, seats: 1},
	TicketInfant: {price: 0, seats: 0},
}

func TicketTypes() []TicketType {
	return []TicketType{TicketAdult, TicketChild, TicketInfant}
}

func ParseTicketType(s string) (TicketType, error) {
	t := TicketType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTicketType, s)
	}

	return t, nil
}

func (t TicketType) Valid() bool {
	_, ok := ticketRules[t]
	return ok
}

func (t TicketType) Price() int {
	return ticketRules[t].price
}

func (t TicketType) Seats() int {
	return ticketRules[t].seats
}

func (t TicketType) String() string {
	return string(t)
}

// TicketTypeRequest is an immutable request for a number of tickets of one
// type. Totals are derived once on construction.
type TicketTypeRequest struct {
	ticketType  TicketType
	noOfTickets int
	totalSeats  int
	totalAmount int
}

func NewTicketTypeRequest(ticketType TicketType, noOfTickets int) TicketTypeRequest {
	return TicketTypeRequest{
		ticketType:  ticketType,
		noOfTickets: noOfTickets,
		totalSeats:  noOfTickets * ticketType.Seats(),
		totalAmount: noOfTickets * ticketType.Price(),
	}
}

func (r TicketTypeRequest) Type() TicketType {
	return r.ticketType
}

func (r TicketTypeRequest) NoOfTickets() int {
	return r.noOfTickets
}

func (r TicketTypeRequest) TotalSeats() int {
	return r.totalSeats
}

func (r TicketTypeRequest) TotalAmount() int {
	return r.totalAmount
}
