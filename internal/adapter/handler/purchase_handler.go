package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/srgjo27/ticket_purchase/internal/core/domain"
	"github.com/srgjo27/ticket_purchase/internal/core/services"
	"github.com/srgjo27/ticket_purchase/internal/platform/log"
)

type TicketRequest struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

type PurchaseRequest struct {
	AccountID int64           `json:"account_id"`
	Tickets   []TicketRequest `json:"tickets"`
}

type PurchaseResponse struct {
	AccountID    int64 `json:"account_id"`
	TotalTickets int   `json:"total_tickets"`
	TotalAmount  int   `json:"total_amount"`
	TotalSeats   int   `json:"total_seats"`
}

type TicketTypeResponse struct {
	Type  string `json:"type"`
	Price int    `json:"price"`
	Seats int    `json:"seats"`
}

type errorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

type PurchaseHandler struct {
	svc *services.TicketService
}

func NewPurchaseHandler(svc *services.TicketService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

func (h *PurchaseHandler) PostPurchase(c echo.Context) error {
	req, requests, err := bindPurchase(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ctx := c.Request().Context()

	totals, err := h.svc.PurchaseTickets(ctx, req.AccountID, requests...)
	if err != nil {
		if domain.IsInvalidPurchase(err) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}

		log.FromContext(ctx).WithError(err).Error("Ticket purchase failed")
		return c.JSON(http.StatusInternalServerError, internalError(ctx))
	}

	return c.JSON(http.StatusCreated, newPurchaseResponse(req.AccountID, totals))
}

// PostQuote runs the purchase rules and returns the totals without taking
// payment or reserving seats.
func (h *PurchaseHandler) PostQuote(c echo.Context) error {
	req, requests, err := bindPurchase(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	totals, err := h.svc.Validate(req.AccountID, requests...)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, newPurchaseResponse(req.AccountID, totals))
}

func (h *PurchaseHandler) GetTicketTypes(c echo.Context) error {
	types := domain.TicketTypes()
	resp := make([]TicketTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, TicketTypeResponse{
			Type:  t.String(),
			Price: t.Price(),
			Seats: t.Seats(),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

var (
	errInvalidBody     = errors.New("invalid json body")
	errInvalidQuantity = errors.New("ticket quantity must not be negative")
)

func bindPurchase(c echo.Context) (PurchaseRequest, []domain.TicketTypeRequest, error) {
	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return PurchaseRequest{}, nil, errInvalidBody
	}

	requests := make([]domain.TicketTypeRequest, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		if t.Quantity < 0 {
			return PurchaseRequest{}, nil, errInvalidQuantity
		}

		ticketType, err := domain.ParseTicketType(t.Type)
		if err != nil {
			return PurchaseRequest{}, nil, err
		}
		requests = append(requests, domain.NewTicketTypeRequest(ticketType, t.Quantity))
	}

	return req, requests, nil
}

func newPurchaseResponse(accountID int64, totals domain.Totals) PurchaseResponse {
	return PurchaseResponse{
		AccountID:    accountID,
		TotalTickets: totals.Tickets,
		TotalAmount:  totals.Amount,
		TotalSeats:   totals.Seats,
	}
}
