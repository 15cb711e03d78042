package solana

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// fakeClient implements ClientAPI with per-method hooks. Unset hooks return a
// healthy default so tests only wire what they exercise.
type fakeClient struct {
	getHealth             func(ctx context.Context) (string, error)
	getGenesisHash        func(ctx context.Context) (solana.Hash, error)
	getSlot               func(ctx context.Context, commitment rpc.CommitmentType) (uint64, error)
	getMinimumBalance     func(ctx context.Context, dataSize uint64, commitment rpc.CommitmentType) (uint64, error)
	getLatestBlockhash    func(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	sendTransaction       func(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	getSignatureStatuses  func(ctx context.Context, history bool, sigs ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
	getAccountInfoW       func(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
	healthCalls           int
	sentTransactions      []*solana.Transaction
	rentQueries           []uint64
	signatureStatusChecks int
}

var _ ClientAPI = (*fakeClient)(nil)

func (f *fakeClient) GetHealth(ctx context.Context) (string, error) {
	f.healthCalls++
	if f.getHealth != nil {
		return f.getHealth(ctx)
	}
	return rpc.HealthOk, nil
}

func (f *fakeClient) GetGenesisHash(ctx context.Context) (solana.Hash, error) {
	if f.getGenesisHash != nil {
		return f.getGenesisHash(ctx)
	}
	return solana.Hash{}, nil
}

func (f *fakeClient) GetSlot(ctx context.Context, commitment rpc.CommitmentType) (uint64, error) {
	if f.getSlot != nil {
		return f.getSlot(ctx, commitment)
	}
	return 1, nil
}

func (f *fakeClient) GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64, commitment rpc.CommitmentType) (uint64, error) {
	f.rentQueries = append(f.rentQueries, dataSize)
	if f.getMinimumBalance != nil {
		return f.getMinimumBalance(ctx, dataSize, commitment)
	}
	return 1_000_000, nil
}

func (f *fakeClient) GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	if f.getLatestBlockhash != nil {
		return f.getLatestBlockhash(ctx, commitment)
	}
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{
			Blockhash:            solana.Hash{1, 2, 3},
			LastValidBlockHeight: 100,
		},
	}, nil
}

func (f *fakeClient) SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error) {
	f.sentTransactions = append(f.sentTransactions, tx)
	if f.sendTransaction != nil {
		return f.sendTransaction(ctx, tx, opts)
	}
	return tx.Signatures[0], nil
}

func (f *fakeClient) GetSignatureStatuses(ctx context.Context, history bool, sigs ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	f.signatureStatusChecks++
	if f.getSignatureStatuses != nil {
		return f.getSignatureStatuses(ctx, history, sigs...)
	}
	return confirmedStatuses(42), nil
}

func (f *fakeClient) GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error) {
	if f.getAccountInfoW != nil {
		return f.getAccountInfoW(ctx, account, opts)
	}
	return nil, errors.New("no account info configured")
}

func confirmedStatuses(slot uint64) *rpc.GetSignatureStatusesResult {
	return &rpc.GetSignatureStatusesResult{
		Value: []*rpc.SignatureStatusesResult{
			{
				Slot:               slot,
				ConfirmationStatus: rpc.ConfirmationStatusConfirmed,
			},
		},
	}
}
