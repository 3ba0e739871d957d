package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func NewRouter(purchaseHandler *PurchaseHandler, accountHandler *AccountHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(CorrelationID)
	e.Use(RequestLogger)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.POST("/purchases", purchaseHandler.PostPurchase)
	e.POST("/purchases/quote", purchaseHandler.PostQuote)
	e.GET("/ticket-types", purchaseHandler.GetTicketTypes)
	e.GET("/accounts/:id/purchases", accountHandler.GetPurchases)

	return e
}
