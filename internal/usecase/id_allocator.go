package usecase

import (
	"github.com/google/uuid"

	"kasra-bnpl/internal/usecase/interfaces"
)

const agreementIDPrefix = "BNPL-"

// UUIDAllocator issues BNPL-<uuid> agreement ids. UUIDs replace the
// original timestamp-plus-random scheme so concurrent creations can never
// collide.
type UUIDAllocator struct{}

var _ interfaces.IDAllocator = UUIDAllocator{}

func (UUIDAllocator) NewAgreementID() string {
	return agreementIDPrefix + uuid.NewString()
}
