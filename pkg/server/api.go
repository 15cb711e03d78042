package server

import "github.com/provenlabs/chaingate/pkg/gateway/types"

// StoreRequest carries the record to anchor. Record is a pointer so an absent
// record is distinguishable from an empty one.
type StoreRequest struct {
	Record *types.ContentRecord `json:"record"`
}

type StoreResponse struct {
	Success        bool   `json:"success"`
	TransactionID  string `json:"transaction_id"`
	AccountAddress string `json:"account_address,omitempty"`
}

type RetrieveResponse struct {
	Record types.ContentRecord `json:"record"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
