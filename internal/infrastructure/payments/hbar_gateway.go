package payments

import (
	"context"
	"fmt"
	"log"
	"time"

	"kasra-bnpl/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// SimulatedHbarGateway stands in for the HBAR transfer rail.
//
// A real transfer debits the buyer and credits the merchant and must be
// signed by the buyer's wallet; this backend never holds buyer keys, so the
// gateway only fabricates a Hedera-style transaction id
// (operator@seconds.nanos) for the rest of the flow to reference.

type SimulatedHbarGateway struct {
	operatorID string
}

var _ interfaces.ITransferGateway = (*SimulatedHbarGateway)(nil)

func NewSimulatedHbarGateway(operatorID string) *SimulatedHbarGateway {
	return &SimulatedHbarGateway{operatorID: operatorID}
}

func (g *SimulatedHbarGateway) Transfer(ctx context.Context, buyerAccountID, merchantID string, amount decimal.Decimal) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	txID := fmt.Sprintf("%s@%d.%09d", g.operatorID, now.Unix(), now.Nanosecond())
	log.Printf("[payment][gateway] simulated transfer from=%s to=%s amount=%s tx_id=%s", buyerAccountID, merchantID, amount, txID)
	return txID, nil
}
