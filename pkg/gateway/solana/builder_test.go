package solana

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

func testProgramID(t *testing.T) solana.PublicKey {
	t.Helper()
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return key.PublicKey()
}

func TestBuild_InstructionList(t *testing.T) {
	client := &fakeClient{}
	programID := testProgramID(t)
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	builder := NewTransactionBuilder(client, programID, rpc.CommitmentConfirmed)
	built, err := builder.Build(context.Background(), testRecord(), payer)
	require.NoError(t, err)

	// create-then-populate: the storage account does not exist before this
	// transaction, so account creation comes first.
	require.Len(t, built.Instructions, 2)
	assert.Equal(t, solana.SystemProgramID, built.Instructions[0].ProgramID())
	assert.Equal(t, programID, built.Instructions[1].ProgramID())

	payload, err := EncodeStoreProof(testRecord())
	require.NoError(t, err)
	data, err := built.Instructions[1].Data()
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	// rent query sized to the encoded payload
	require.Len(t, client.rentQueries, 1)
	assert.Equal(t, uint64(len(payload)), client.rentQueries[0])
}

func TestBuild_AccountsAndSigners(t *testing.T) {
	client := &fakeClient{}
	programID := testProgramID(t)
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	builder := NewTransactionBuilder(client, programID, rpc.CommitmentConfirmed)
	built, err := builder.Build(context.Background(), testRecord(), payer)
	require.NoError(t, err)

	accounts := built.Instructions[1].Accounts()
	require.Len(t, accounts, 3)
	assert.Equal(t, payer.PublicKey(), accounts[0].PublicKey)
	assert.True(t, accounts[0].IsSigner)
	assert.Equal(t, built.StorageAccount, accounts[1].PublicKey)
	assert.True(t, accounts[1].IsSigner)
	assert.True(t, accounts[1].IsWritable)
	assert.Equal(t, solana.SystemProgramID, accounts[2].PublicKey)
	assert.False(t, accounts[2].IsSigner)
	assert.False(t, accounts[2].IsWritable)

	// both payer and storage sign because the storage account is created in
	// this same transaction
	require.Len(t, built.Signers, 2)
	assert.Equal(t, payer.PublicKey(), built.Signers[0].PublicKey())
	assert.Equal(t, built.StorageAccount, built.Signers[1].PublicKey())
}

func TestBuild_StorageAccountNeverCollides(t *testing.T) {
	client := &fakeClient{}
	programID := testProgramID(t)
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	builder := NewTransactionBuilder(client, programID, rpc.CommitmentConfirmed)
	seen := make(map[solana.PublicKey]bool)
	for i := 0; i < 100; i++ {
		built, err := builder.Build(context.Background(), testRecord(), payer)
		require.NoError(t, err)

		assert.NotEqual(t, payer.PublicKey(), built.StorageAccount)
		assert.NotEqual(t, programID, built.StorageAccount)
		assert.False(t, seen[built.StorageAccount], "storage account reused")
		seen[built.StorageAccount] = true
	}
}

func TestBuild_RentQueryFailure(t *testing.T) {
	client := &fakeClient{
		getMinimumBalance: func(context.Context, uint64, rpc.CommitmentType) (uint64, error) {
			return 0, assert.AnError
		},
	}
	builder := NewTransactionBuilder(client, testProgramID(t), rpc.CommitmentConfirmed)
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	_, err = builder.Build(context.Background(), testRecord(), payer)
	require.Error(t, err)
	assert.Equal(t, types.KindConnection, types.KindOf(err))
}

func TestBuild_EncodingFailureBeforeNetwork(t *testing.T) {
	client := &fakeClient{}
	builder := NewTransactionBuilder(client, testProgramID(t), rpc.CommitmentConfirmed)
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	record := testRecord()
	record.ContentHash = string([]byte{0xff, 0xfe})

	_, err = builder.Build(context.Background(), record, payer)
	require.Error(t, err)
	assert.Equal(t, types.KindEncoding, types.KindOf(err))
	assert.Empty(t, client.rentQueries)
}
