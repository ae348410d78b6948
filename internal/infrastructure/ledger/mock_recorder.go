package ledger

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"kasra-bnpl/internal/usecase/interfaces"
)

// MockRecorder is the default ledger sink for local development. It accepts
// every event and returns simulated Hedera file ids.

type MockRecorder struct {
	seq atomic.Int64
}

var _ interfaces.ILedgerRecorder = (*MockRecorder)(nil)

func NewMockRecorder() *MockRecorder {
	log.Printf("[ledger][recorder] mock mode enabled")
	r := &MockRecorder{}
	r.seq.Store(900000)
	return r
}

func (r *MockRecorder) Record(ctx context.Context, event interfaces.LedgerEvent) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fileID := fmt.Sprintf("0.0.%d", r.seq.Add(1))
	log.Printf("[ledger][recorder] mock record type=%q agreement_id=%s file_id=%s", event.Type, event.AgreementID, fileID)
	return fileID, nil
}
