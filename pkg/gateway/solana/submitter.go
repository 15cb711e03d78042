package solana

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

const confirmPollInterval = 2 * time.Second

// TransactionSubmitter signs an assembled transaction with every declared
// signer, submits it, and blocks until the network confirms it at the
// configured commitment. A rejection is surfaced, never silently retried:
// resubmitting with a stale blockhash or a partially applied side effect risks
// duplicate ledger state.
type TransactionSubmitter struct {
	client         ClientAPI
	commitment     rpc.CommitmentType
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

func NewTransactionSubmitter(client ClientAPI, commitment rpc.CommitmentType, confirmTimeout time.Duration) *TransactionSubmitter {
	return &TransactionSubmitter{
		client:         client,
		commitment:     commitment,
		confirmTimeout: confirmTimeout,
		pollInterval:   confirmPollInterval,
	}
}

// Submit fetches a fresh blockhash, signs, submits, and waits for
// confirmation. The blockhash is read immediately before signing because
// blockhashes expire; anything that delays the read-sign-submit sequence eats
// into the expiry window.
func (s *TransactionSubmitter) Submit(ctx context.Context, instructions []solana.Instruction, signers []solana.PrivateKey) (types.TransactionResult, error) {
	if len(signers) == 0 {
		return types.TransactionResult{}, types.NewError(types.KindInternal, "no signers provided")
	}

	recent, err := s.client.GetLatestBlockhash(ctx, s.commitment)
	if err != nil {
		return types.TransactionResult{}, types.WrapError(types.KindConnection, "fetching latest blockhash", err)
	}

	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(signers[0].PublicKey()),
	)
	if err != nil {
		return types.TransactionResult{}, types.WrapError(types.KindInternal, "assembling transaction", err)
	}

	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}
		return nil
	}); err != nil {
		return types.TransactionResult{}, types.WrapError(types.KindInternal, "signing transaction", err)
	}

	sig, err := s.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: s.commitment,
	})
	if err != nil {
		return types.TransactionResult{}, types.WrapError(types.KindSubmission, "submitting transaction", err)
	}
	log.Infow("transaction submitted", "signature", sig)

	start := time.Now()
	slot, err := s.awaitConfirmation(ctx, sig)
	if err != nil {
		return types.TransactionResult{}, err
	}
	elapsed := uint64(time.Since(start).Milliseconds())

	log.Infow("transaction confirmed", "signature", sig, "slot", slot, "elapsed_ms", elapsed)
	return types.TransactionResult{
		TransactionID:    sig.String(),
		BlockHeight:      &slot,
		ConfirmationTime: &elapsed,
	}, nil
}

// awaitConfirmation polls the signature status until the configured commitment
// is reached, the transaction fails on chain, or the timeout elapses.
func (s *TransactionSubmitter) awaitConfirmation(ctx context.Context, sig solana.Signature) (uint64, error) {
	confirmed := func() (uint64, error) {
		statuses, err := s.client.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			return 0, err
		}
		if len(statuses.Value) == 0 || statuses.Value[0] == nil {
			return 0, types.NewErrorf(types.KindConfirmationTimeout, "signature %s not yet observed", sig)
		}
		status := statuses.Value[0]
		if status.Err != nil {
			return 0, backoff.Permanent(types.NewErrorf(types.KindSubmission,
				"transaction %s failed on chain: %v", sig, status.Err))
		}
		if !commitmentReached(status.ConfirmationStatus, s.commitment) {
			return 0, types.NewErrorf(types.KindConfirmationTimeout,
				"signature %s at %s, awaiting %s", sig, status.ConfirmationStatus, s.commitment)
		}
		return status.Slot, nil
	}

	slot, err := backoff.Retry(
		ctx,
		confirmed,
		backoff.WithBackOff(backoff.NewConstantBackOff(s.pollInterval)),
		backoff.WithMaxElapsedTime(s.confirmTimeout),
	)
	if err != nil {
		if types.KindOf(err) == types.KindSubmission {
			return 0, err
		}
		return 0, types.WrapError(types.KindConfirmationTimeout,
			"transaction not confirmed within commitment window", err)
	}
	return slot, nil
}

func commitmentReached(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	rank := map[rpc.ConfirmationStatusType]int{
		rpc.ConfirmationStatusProcessed: 1,
		rpc.ConfirmationStatusConfirmed: 2,
		rpc.ConfirmationStatusFinalized: 3,
	}
	wantRank := map[rpc.CommitmentType]int{
		rpc.CommitmentProcessed: 1,
		rpc.CommitmentConfirmed: 2,
		rpc.CommitmentFinalized: 3,
	}
	return rank[status] >= wantRank[want]
}
