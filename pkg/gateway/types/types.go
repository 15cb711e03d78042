package types

// ContentRecord is the application-level description of a piece of content to
// anchor on chain. It is produced by the caller and never mutated by the
// gateway.
type ContentRecord struct {
	UID           string `json:"uid"`
	URL           string `json:"url"`
	ContentHash   string `json:"content_hash"`
	ContentLength uint64 `json:"content_length"`
	CreatedAt     string `json:"created_at"`
}

// TransactionResult is produced only on a successful submission. TransactionID
// is the ledger-assigned signature string, always non-empty, and opaque to the
// gateway.
type TransactionResult struct {
	TransactionID    string  `json:"transaction_id"`
	AccountAddress   string  `json:"account_address,omitempty"`
	BlockHeight      *uint64 `json:"block_height,omitempty"`
	ConfirmationTime *uint64 `json:"confirmation_time,omitempty"`
}

// NetworkInfo is a point-in-time snapshot of the target network, never cached.
type NetworkInfo struct {
	ChainID     string `json:"chain_id"`
	BlockHeight uint64 `json:"block_height"`
	NetworkName string `json:"network_name"`
}

// ChainType selects the concrete ledger back-end.
type ChainType string

const (
	ChainSolana   ChainType = "solana"
	ChainEthereum ChainType = "ethereum"
)
