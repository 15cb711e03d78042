package gateway

import (
	"context"

	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

// ChainProvider is the contract a concrete ledger back-end satisfies. The
// gateway depends only on this interface; adding a chain means implementing it
// and registering the chain type with the factory.
type ChainProvider interface {
	// StoreRecord anchors a content record on the ledger and returns the
	// ledger-assigned transaction identifier.
	StoreRecord(ctx context.Context, record types.ContentRecord) (types.TransactionResult, error)

	// RetrieveRecord looks up a previously stored record by transaction ID.
	RetrieveRecord(ctx context.Context, transactionID string) (types.ContentRecord, error)

	// HealthCheck performs a single unretried probe of the ledger endpoint.
	HealthCheck(ctx context.Context) bool

	// GetNetworkInfo returns a point-in-time snapshot of the target network.
	GetNetworkInfo(ctx context.Context) (types.NetworkInfo, error)
}

// Initializer is satisfied by providers that need I/O-bearing startup, kept
// separate from construction so construction stays pure.
type Initializer interface {
	Initialize(ctx context.Context) error
}
