package interfaces

// IDAllocator hands out globally unique agreement ids. Injected so tests can
// pin ids and so the generation scheme can change without touching the state
// machine.
type IDAllocator interface {
	NewAgreementID() string
}
