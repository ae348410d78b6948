package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kasra-bnpl/internal/usecase/interfaces"
)

// WithTimeout caps every Record call at d. Deadline expiry comes back as
// ErrLedgerTimeout; cancellation by the caller passes through untouched.
func WithTimeout(r interfaces.ILedgerRecorder, d time.Duration) interfaces.ILedgerRecorder {
	if d <= 0 {
		return r
	}
	return &timeoutRecorder{inner: r, d: d}
}

type timeoutRecorder struct {
	inner interfaces.ILedgerRecorder
	d     time.Duration
}

func (t *timeoutRecorder) Record(ctx context.Context, event interfaces.LedgerEvent) (string, error) {
	callerCtx := ctx
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()

	recordID, err := t.inner.Record(ctx, event)
	if err == nil {
		return recordID, nil
	}
	if errors.Is(err, context.DeadlineExceeded) && callerCtx.Err() == nil {
		return "", fmt.Errorf("%w after %s", ErrLedgerTimeout, t.d)
	}
	return "", err
}
