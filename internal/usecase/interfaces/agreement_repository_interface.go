package interfaces

import (
	"context"

	"kasra-bnpl/internal/domain/entities"
)

// IAgreementRepository abstracts the durable mapping from buyer account id
// to that buyer's agreement list.
//
// The store must be able to:
//   - list a buyer's agreements (empty slice for an unknown buyer)
//   - replace a buyer's agreement list wholesale
//   - load the entire document (debug/inspection)
//
// Callers serialize mutations; implementations only guarantee that a single
// PutBuyer is durable and atomic.

type IAgreementRepository interface {
	ListByBuyer(ctx context.Context, buyerAccountID string) ([]entities.Agreement, error)
	PutBuyer(ctx context.Context, buyerAccountID string, agreements []entities.Agreement) error
	ReadAll(ctx context.Context) (map[string][]entities.Agreement, error)
}
