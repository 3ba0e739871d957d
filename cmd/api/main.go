package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/srgjo27/ticket_purchase/internal/adapter/handler"
	paymentredis "github.com/srgjo27/ticket_purchase/internal/adapter/payment/redis"
	"github.com/srgjo27/ticket_purchase/internal/adapter/repository/postgres"
	"github.com/srgjo27/ticket_purchase/internal/core/services"
	"github.com/srgjo27/ticket_purchase/internal/platform/cache"
	"github.com/srgjo27/ticket_purchase/internal/platform/config"
	"github.com/srgjo27/ticket_purchase/internal/platform/database"
	"github.com/srgjo27/ticket_purchase/internal/platform/log"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}

	level := logrus.InfoLevel
	if cfg.Debug {
		level = logrus.DebugLevel
	}
	log.Init(level, cfg.Debug)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		logrus.WithError(err).Fatal("Server stopped with error")
	}

	logrus.Info("Server exiting")
}

func run(ctx context.Context, cfg config.Config) error {
	db, err := database.NewPostgresDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.InitializeSchema(ctx, db); err != nil {
		return err
	}

	rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	paymentLedger := paymentredis.NewPaymentLedger(rdb)
	seatReservationRepo := postgres.NewSeatReservationRepository(db)

	ticketService := services.NewTicketService(paymentLedger, seatReservationRepo)

	e := handler.NewRouter(
		handler.NewPurchaseHandler(ticketService),
		handler.NewAccountHandler(paymentLedger, seatReservationRepo),
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logrus.Infof("Server starting on port %s", addr)

		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server startup failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logrus.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
