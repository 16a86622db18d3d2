package storage

// ApiStore defines the complete set of operations needed by the API surface.
// It composes the role interfaces to provide a clear boundary for the API's
// data access.
type ApiStore interface {
	AccountStore
	TransferStore
	GameStore
	ActionStore
	DuelStore
	AssetStore
	CryptoStore
	LedgerReader
}

// Storage defines the root interface for the entire data layer. Components
// should depend on the more granular interfaces (AccountStore, DuelStore,
// etc.) instead of this one.
type Storage interface {
	ApiStore
}
