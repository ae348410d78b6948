package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type LedgerEventType string

const (
	LedgerEventAgreementInitiated LedgerEventType = "Pay Later Agreement"
	LedgerEventInstallmentPaid    LedgerEventType = "Installment Payment"
)

// LedgerEvent is the immutable note written to the external ledger for
// agreement creation and each installment. Detail carries the full record
// (the agreement snapshot on creation) for traceability.
type LedgerEvent struct {
	Type           LedgerEventType `json:"type"`
	AgreementID    string          `json:"agreementId"`
	BuyerAccountID string          `json:"buyerAccountId"`
	Amount         decimal.Decimal `json:"amount"`
	TransactionID  string          `json:"transactionId,omitempty"`
	Date           time.Time       `json:"date"`
	Detail         json.RawMessage `json:"detail,omitempty"`
}

// ILedgerRecorder abstracts the distributed ledger logging service.
//
// Record blocks until the event is durably accepted and returns the external
// record id (a Hedera file id in the original deployment). Implementations
// must honor ctx so callers can impose timeouts and distinguish cancellation
// from a hard failure.
type ILedgerRecorder interface {
	Record(ctx context.Context, event LedgerEvent) (recordID string, err error)
}
