package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func InitializeSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS seat_reservations (
		id UUID PRIMARY KEY,
		account_id BIGINT NOT NULL,
		seats INTEGER NOT NULL CHECK (seats >= 0),
		reserved_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`)
	if err != nil {
		return fmt.Errorf("creating seat_reservations table: %w", err)
	}

	_, err = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_seat_reservations_account_id
		ON seat_reservations (account_id);`)
	if err != nil {
		return fmt.Errorf("creating seat_reservations index: %w", err)
	}

	return nil
}
