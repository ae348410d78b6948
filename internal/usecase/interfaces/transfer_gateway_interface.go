package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// ITransferGateway abstracts the HBAR transfer rail.
//
// The prototype ships a simulated implementation: a real transfer needs the
// buyer's wallet signature, which this backend never holds.
type ITransferGateway interface {
	Transfer(ctx context.Context, buyerAccountID, merchantID string, amount decimal.Decimal) (transactionID string, err error)
}
