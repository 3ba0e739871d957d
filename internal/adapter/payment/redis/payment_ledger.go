package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/ticket_purchase/internal/platform/log"
)

const (
	fieldTotalAmount = "total_amount"
	fieldPayments    = "payments"
)

// PaymentLedger records charges per account in Redis. Settlement with the
// payment provider happens downstream and is not this service's concern.
type PaymentLedger struct {
	rdb redis.Cmdable
}

func NewPaymentLedger(rdb redis.Cmdable) *PaymentLedger {
	return &PaymentLedger{rdb: rdb}
}

func ledgerKey(accountID int64) string {
	return fmt.Sprintf("payments:account:%d", accountID)
}

func (l *PaymentLedger) MakePayment(ctx context.Context, accountID int64, totalAmountToPay int) error {
	key := ledgerKey(accountID)

	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, fieldTotalAmount, int64(totalAmountToPay))
		pipe.HIncrBy(ctx, key, fieldPayments, 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record payment for account %d: %w", accountID, err)
	}

	log.FromContext(ctx).WithField("account_id", accountID).Debugf("Payment of %d recorded", totalAmountToPay)

	return nil
}

func (l *PaymentLedger) Balance(ctx context.Context, accountID int64) (int64, error) {
	amount, err := l.rdb.HGet(ctx, ledgerKey(accountID), fieldTotalAmount).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read balance for account %d: %w", accountID, err)
	}

	return amount, nil
}
