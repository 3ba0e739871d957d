package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	MaxRetries int
	RetryDelay time.Duration
}

func (c Config) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}

	return dsn.String()
}

func NewPostgresDB(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = 2 * time.Second
	}

	var db *sqlx.DB
	var err error

	for i := 1; i <= maxRetries; i++ {
		logrus.Infof("Connecting to database (Attempt %d/%d)...", i, maxRetries)
		db, err = sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
		if err == nil {
			logrus.Info("Database connected successfully!")
			return db, nil
		}

		if i == maxRetries {
			break
		}

		logrus.WithError(err).Warnf("Database not ready yet. Waiting %s...", retryDelay)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}
