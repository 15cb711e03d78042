package solana

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

// BuiltTransaction is the output of a build: the ordered instruction list, the
// complete signer set, and the derived storage account address.
type BuiltTransaction struct {
	Instructions   []solana.Instruction
	Signers        []solana.PrivateKey
	StorageAccount solana.PublicKey
}

// TransactionBuilder assembles the create-then-populate instruction pair for a
// store request. The storage account does not exist before the call, so the
// same transaction both creates it and writes the payload into it.
type TransactionBuilder struct {
	client     ClientAPI
	programID  solana.PublicKey
	commitment rpc.CommitmentType
}

func NewTransactionBuilder(client ClientAPI, programID solana.PublicKey, commitment rpc.CommitmentType) *TransactionBuilder {
	return &TransactionBuilder{
		client:     client,
		programID:  programID,
		commitment: commitment,
	}
}

// Build derives a fresh storage-account identity, encodes the record, and
// produces the ordered instruction list funding and populating the account.
// The storage keypair lives for exactly this transaction; it is never reused
// or persisted.
func (b *TransactionBuilder) Build(ctx context.Context, record types.ContentRecord, payer solana.PrivateKey) (BuiltTransaction, error) {
	storage, err := solana.NewRandomPrivateKey()
	if err != nil {
		return BuiltTransaction{}, types.WrapError(types.KindInternal, "generating storage account keypair", err)
	}

	// With real randomness this never fires; the invariant is still checked
	// because a collision would hand the storage account to a key we must not
	// control twice.
	storagePub := storage.PublicKey()
	if storagePub.Equals(payer.PublicKey()) || storagePub.Equals(b.programID) {
		return BuiltTransaction{}, types.NewErrorf(types.KindCollision,
			"generated storage account %s collides with a known key", storagePub)
	}

	payload, err := EncodeStoreProof(record)
	if err != nil {
		return BuiltTransaction{}, err
	}
	space := uint64(len(payload))

	lamports, err := b.client.GetMinimumBalanceForRentExemption(ctx, space, b.commitment)
	if err != nil {
		return BuiltTransaction{}, types.WrapError(types.KindConnection, "querying rent-exempt balance", err)
	}

	createAccount, err := system.NewCreateAccountInstruction(
		lamports,
		space,
		b.programID,
		payer.PublicKey(),
		storagePub,
	).ValidateAndBuild()
	if err != nil {
		return BuiltTransaction{}, types.WrapError(types.KindInternal, "building create-account instruction", err)
	}

	storeProof := solana.NewInstruction(
		b.programID,
		solana.AccountMetaSlice{
			solana.NewAccountMeta(payer.PublicKey(), true, true),
			solana.NewAccountMeta(storagePub, true, true),
			solana.NewAccountMeta(solana.SystemProgramID, false, false),
		},
		payload,
	)

	log.Debugw("built store transaction",
		"storage_account", storagePub,
		"payload_bytes", space,
		"lamports", lamports)

	return BuiltTransaction{
		Instructions: []solana.Instruction{createAccount, storeProof},
		// The storage account signs because it is created in this same
		// transaction.
		Signers:        []solana.PrivateKey{payer, storage},
		StorageAccount: storagePub,
	}, nil
}
