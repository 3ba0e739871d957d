package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/ticket_purchase/internal/adapter/handler"
	"github.com/srgjo27/ticket_purchase/internal/core/domain"
	"github.com/srgjo27/ticket_purchase/internal/core/ports/mocks"
	"github.com/srgjo27/ticket_purchase/internal/core/services"
)

type testServer struct {
	payment      *mocks.TicketPaymentService
	seats        *mocks.SeatReservationService
	balances     *paymentBalancesMock
	reservations *seatReservationsMock
	handler      http.Handler
}

func newTestServer(t *testing.T) testServer {
	payment := mocks.NewTicketPaymentService(t)
	seats := mocks.NewSeatReservationService(t)
	svc := services.NewTicketService(payment, seats)

	balances := &paymentBalancesMock{}
	balances.Test(t)
	reservations := &seatReservationsMock{}
	reservations.Test(t)
	t.Cleanup(func() {
		balances.AssertExpectations(t)
		reservations.AssertExpectations(t)
	})

	return testServer{
		payment:      payment,
		seats:        seats,
		balances:     balances,
		reservations: reservations,
		handler: handler.NewRouter(
			handler.NewPurchaseHandler(svc),
			handler.NewAccountHandler(balances, reservations),
		),
	}
}

func (s testServer) do(method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func TestPostPurchase_Success(t *testing.T) {
	s := newTestServer(t)

	s.payment.On("MakePayment", mock.Anything, int64(1), 120).Return(nil).Once()
	s.seats.On("ReserveSeat", mock.Anything, int64(1), 8).Return(nil).Once()

	rec := s.do(http.MethodPost, "/purchases", `{
		"account_id": 1,
		"tickets": [
			{"type": "ADULT", "quantity": 4},
			{"type": "infant", "quantity": 4},
			{"type": "CHILD", "quantity": 4}
		]
	}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp handler.PurchaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handler.PurchaseResponse{
		AccountID:    1,
		TotalTickets: 12,
		TotalAmount:  120,
		TotalSeats:   8,
	}, resp)
}

func TestPostPurchase_Rejected(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/purchases", `{"account_id": 1, "tickets": [{"type": "ADULT", "quantity": 19}, {"type": "CHILD", "quantity": 2}]}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.MsgMaximumTicketsReached, decodeError(t, rec))
	s.payment.AssertNotCalled(t, "MakePayment", mock.Anything, mock.Anything, mock.Anything)
	s.seats.AssertNotCalled(t, "ReserveSeat", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostPurchase_InvalidAccount(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/purchases", `{"account_id": 0, "tickets": [{"type": "ADULT", "quantity": 2}]}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.MsgInvalidAccountID, decodeError(t, rec))
}

func TestPostPurchase_UnknownTicketType(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/purchases", `{"account_id": 1, "tickets": [{"type": "SENIOR", "quantity": 1}]}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "unknown ticket type")
}

func TestPostPurchase_NegativeQuantity(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/purchases", `{
		"account_id": 1,
		"tickets": [
			{"type": "ADULT", "quantity": 3},
			{"type": "INFANT", "quantity": 3},
			{"type": "CHILD", "quantity": -5}
		]
	}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ticket quantity must not be negative", decodeError(t, rec))
	s.payment.AssertNotCalled(t, "MakePayment", mock.Anything, mock.Anything, mock.Anything)
	s.seats.AssertNotCalled(t, "ReserveSeat", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostQuote_NegativeQuantity(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/purchases/quote", `{"account_id": 1, "tickets": [{"type": "ADULT", "quantity": 2}, {"type": "ADULT", "quantity": -1}]}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ticket quantity must not be negative", decodeError(t, rec))
}

func TestPostPurchase_InvalidJSON(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/purchases", `{"account_id": `, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid json body", decodeError(t, rec))
}

func TestPostPurchase_CollaboratorFailure(t *testing.T) {
	s := newTestServer(t)

	s.payment.On("MakePayment", mock.Anything, int64(2), 20).Return(errors.New("ledger down")).Once()

	rec := s.do(http.MethodPost, "/purchases", `{"account_id": 2, "tickets": [{"type": "ADULT", "quantity": 1}]}`,
		http.Header{"Correlation-Id": []string{"purchase-42"}})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error         string `json:"error"`
		CorrelationID string `json:"correlation_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Error)
	assert.Equal(t, "purchase-42", body.CorrelationID)
}

func TestPostQuote(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/purchases/quote", `{"account_id": 1, "tickets": [{"type": "ADULT", "quantity": 2}, {"type": "ADULT", "quantity": 2}]}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.PurchaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 80, resp.TotalAmount)
	assert.Equal(t, 4, resp.TotalSeats)
	s.payment.AssertNotCalled(t, "MakePayment", mock.Anything, mock.Anything, mock.Anything)
	s.seats.AssertNotCalled(t, "ReserveSeat", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostQuote_Rejected(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/purchases/quote", `{"account_id": 1, "tickets": []}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.MsgMinimumTickets, decodeError(t, rec))
}

func TestGetTicketTypes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/ticket-types", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []handler.TicketTypeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []handler.TicketTypeResponse{
		{Type: "ADULT", Price: 20, Seats: 1},
		{Type: "CHILD", Price: 10, Seats: 1},
		{Type: "INFANT", Price: 0, Seats: 0},
	}, resp)
}

func TestCorrelationID(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "", http.Header{"Correlation-Id": []string{"abc-123"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get("Correlation-ID"))

	rec = s.do(http.MethodGet, "/health", "", nil)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Correlation-ID"), "gen_"))
}
