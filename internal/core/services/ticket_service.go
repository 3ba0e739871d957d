package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticket_purchase/internal/core/domain"
	"github.com/srgjo27/ticket_purchase/internal/core/ports"
	"github.com/srgjo27/ticket_purchase/internal/platform/log"
)

type TicketService struct {
	paymentService         ports.TicketPaymentService
	seatReservationService ports.SeatReservationService
}

func NewTicketService(paymentService ports.TicketPaymentService, seatReservationService ports.SeatReservationService) *TicketService {
	return &TicketService{
		paymentService:         paymentService,
		seatReservationService: seatReservationService,
	}
}

// PurchaseTickets validates the request set and, once every rule passes,
// takes payment and then reserves seats for the aggregated totals. The
// returned totals are the ones charged and reserved. Collaborator errors are
// returned as is.
func (s *TicketService) PurchaseTickets(ctx context.Context, accountID int64, requests ...domain.TicketTypeRequest) (domain.Totals, error) {
	logger := log.FromContext(ctx).WithField("account_id", accountID)

	totals, err := s.Validate(accountID, requests...)
	if err != nil {
		logger.WithError(err).Info("Ticket purchase rejected")
		return domain.Totals{}, err
	}

	if err := s.paymentService.MakePayment(ctx, accountID, totals.Amount); err != nil {
		return domain.Totals{}, err
	}

	if err := s.seatReservationService.ReserveSeat(ctx, accountID, totals.Seats); err != nil {
		return domain.Totals{}, err
	}

	logger.WithFields(logrus.Fields{
		"total_tickets": totals.Tickets,
		"total_amount":  totals.Amount,
		"total_seats":   totals.Seats,
	}).Info("Tickets purchased")

	return totals, nil
}

// Validate applies the purchase rules without calling any collaborator.
// Rules run in a fixed order and the first violation is returned.
func (s *TicketService) Validate(accountID int64, requests ...domain.TicketTypeRequest) (domain.Totals, error) {
	totals := domain.Summarize(requests)

	if accountID < 1 {
		return domain.Totals{}, domain.NewInvalidPurchaseError(domain.MsgInvalidAccountID)
	}

	for _, r := range requests {
		if !r.Type().Valid() {
			return domain.Totals{}, domain.NewInvalidPurchaseError(domain.MsgInvalidTicketType)
		}
	}

	if totals.Tickets < 1 {
		return domain.Totals{}, domain.NewInvalidPurchaseError(domain.MsgMinimumTickets)
	}

	adults := totals.Count(domain.TicketAdult)
	children := totals.Count(domain.TicketChild)
	infants := totals.Count(domain.TicketInfant)

	if (children > 0 || infants > 0) && adults < 1 {
		return domain.Totals{}, domain.NewInvalidPurchaseError(domain.MsgAdultRequired)
	}

	if infants > adults {
		return domain.Totals{}, domain.NewInvalidPurchaseError(domain.MsgInfantPerAdult)
	}

	if totals.Tickets > domain.MaxTicketsPerPurchase {
		return domain.Totals{}, domain.NewInvalidPurchaseError(domain.MsgMaximumTicketsReached)
	}

	return totals, nil
}
