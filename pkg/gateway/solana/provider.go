package solana

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	logging "github.com/ipfs/go-log/v2"

	"github.com/provenlabs/chaingate/pkg/config"
	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

var log = logging.Logger("gateway/solana")

// Provider anchors content records on Solana by creating a rent-exempt
// storage account per record and invoking the configured program with the
// Borsh-encoded proof payload.
//
// The RPC client and payer identity are shared, read-mostly resources; each
// store request generates its own ephemeral storage keypair, so concurrent
// requests never contend over signer material.
type Provider struct {
	client      ClientAPI
	programID   solana.PublicKey
	payer       solana.PrivateKey
	commitment  rpc.CommitmentType
	networkName string
	settleDelay time.Duration

	health    *ConnectionHealth
	builder   *TransactionBuilder
	submitter *TransactionSubmitter

	// Maps transaction id to the storage account it populated, so Retrieve
	// can find the account holding the encoded record.
	mu       sync.RWMutex
	accounts map[string]solana.PublicKey
}

// New constructs a provider from configuration. Construction is pure: no
// network I/O happens until Initialize or the first request.
func New(cfg config.ChainConfig) (*Provider, error) {
	return newProvider(cfg, rpc.New(cfg.NetworkURL))
}

func newProvider(cfg config.ChainConfig, client ClientAPI) (*Provider, error) {
	programID, err := solana.PublicKeyFromBase58(cfg.ProgramID)
	if err != nil {
		return nil, types.WrapError(types.KindConfig, "invalid program id", err)
	}

	payer, err := LoadKeypair(cfg.PrivateKeyPath, cfg.StrictKeys)
	if err != nil {
		return nil, err
	}
	if payer.PublicKey().Equals(programID) {
		return nil, types.NewErrorf(types.KindCollision, "payer key %s equals program id", programID)
	}

	commitment := commitmentFromString(cfg.Commitment)
	return &Provider{
		client:      client,
		programID:   programID,
		payer:       payer,
		commitment:  commitment,
		networkName: cfg.NetworkName,
		settleDelay: cfg.SettleDelay,
		health:      NewConnectionHealth(client),
		builder:     NewTransactionBuilder(client, programID, commitment),
		submitter:   NewTransactionSubmitter(client, commitment, cfg.ConfirmTimeout),
		accounts:    make(map[string]solana.PublicKey),
	}, nil
}

// Initialize waits for the validator to become reachable. Separate from New so
// tests and callers control when startup I/O happens.
func (p *Provider) Initialize(ctx context.Context) error {
	return p.health.AwaitReady(ctx, DefaultProbeAttempts, DefaultProbeInterval)
}

// StoreRecord builds, signs, submits, and confirms the anchoring transaction
// for one record.
func (p *Provider) StoreRecord(ctx context.Context, record types.ContentRecord) (types.TransactionResult, error) {
	if p.settleDelay > 0 {
		// Lets a prior funding operation (airdrop) settle before we spend.
		// Kept short: the delay competes with blockhash expiry.
		select {
		case <-time.After(p.settleDelay):
		case <-ctx.Done():
			return types.TransactionResult{}, ctx.Err()
		}
	}

	built, err := p.builder.Build(ctx, record, p.payer)
	if err != nil {
		return types.TransactionResult{}, err
	}

	result, err := p.submitter.Submit(ctx, built.Instructions, built.Signers)
	if err != nil {
		return types.TransactionResult{}, err
	}
	result.AccountAddress = built.StorageAccount.String()

	p.mu.Lock()
	p.accounts[result.TransactionID] = built.StorageAccount
	p.mu.Unlock()

	log.Infow("record anchored",
		"uid", record.UID,
		"transaction_id", result.TransactionID,
		"storage_account", result.AccountAddress)
	return result, nil
}

// RetrieveRecord maps a transaction id back to its storage account and decodes
// the record from the account data. UID and creation time are caller metadata
// that never reach the chain; only the proof fields come back.
func (p *Provider) RetrieveRecord(ctx context.Context, transactionID string) (types.ContentRecord, error) {
	p.mu.RLock()
	account, ok := p.accounts[transactionID]
	p.mu.RUnlock()
	if !ok {
		return types.ContentRecord{}, types.NewErrorf(types.KindNotFound, "no record for transaction %s", transactionID)
	}

	info, err := p.client.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Commitment: p.commitment,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return types.ContentRecord{}, types.NewErrorf(types.KindNotFound, "storage account %s not found", account)
		}
		return types.ContentRecord{}, types.WrapError(types.KindConnection, "fetching storage account", err)
	}
	if info.Value == nil {
		return types.ContentRecord{}, types.NewErrorf(types.KindNotFound, "storage account %s not found", account)
	}

	proof, err := DecodeStoreProof(info.Value.Data.GetBinary())
	if err != nil {
		return types.ContentRecord{}, err
	}
	return types.ContentRecord{
		URL:           proof.URL,
		ContentHash:   proof.ContentHash,
		ContentLength: proof.ContentLength,
	}, nil
}

// HealthCheck is a single unretried probe.
func (p *Provider) HealthCheck(ctx context.Context) bool {
	return p.health.Probe(ctx)
}

// GetNetworkInfo returns a fresh snapshot, never cached.
func (p *Provider) GetNetworkInfo(ctx context.Context) (types.NetworkInfo, error) {
	genesis, err := p.client.GetGenesisHash(ctx)
	if err != nil {
		return types.NetworkInfo{}, types.WrapError(types.KindConnection, "fetching genesis hash", err)
	}
	slot, err := p.client.GetSlot(ctx, p.commitment)
	if err != nil {
		return types.NetworkInfo{}, types.WrapError(types.KindConnection, "fetching slot", err)
	}
	return types.NetworkInfo{
		ChainID:     genesis.String(),
		BlockHeight: slot,
		NetworkName: p.networkName,
	}, nil
}
