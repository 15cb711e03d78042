package solana

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

func testRecord() types.ContentRecord {
	return types.ContentRecord{
		UID:           "abc",
		URL:           "https://x.test",
		ContentHash:   "deadbeef",
		ContentLength: 42,
		CreatedAt:     "2025-01-01T00:00:00Z",
	}
}

func TestEncodeStoreProof_Deterministic(t *testing.T) {
	record := testRecord()

	first, err := EncodeStoreProof(record)
	require.NoError(t, err)
	second, err := EncodeStoreProof(record)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEncodeStoreProof_Layout(t *testing.T) {
	record := testRecord()

	data, err := EncodeStoreProof(record)
	require.NoError(t, err)

	// discriminant, u32 len + url, u32 len + hash, u64 length
	assert.Equal(t, variantStoreProof, data[0])
	assert.Equal(t, uint32(len(record.URL)), binary.LittleEndian.Uint32(data[1:5]))
	assert.Equal(t, record.URL, string(data[5:5+len(record.URL)]))
	assert.Len(t, data, 1+4+len(record.URL)+4+len(record.ContentHash)+8)
	assert.Equal(t, record.ContentLength, binary.LittleEndian.Uint64(data[len(data)-8:]))
}

func TestEncodeGetProof_Discriminant(t *testing.T) {
	assert.Equal(t, []byte{variantGetProof}, EncodeGetProof())
}

func TestDecodeStoreProof_RoundTrip(t *testing.T) {
	for _, record := range []types.ContentRecord{
		testRecord(),
		{URL: "", ContentHash: "", ContentLength: 0},
		{URL: "https://example.com/path?q=1", ContentHash: "0xabc123", ContentLength: 1<<63 + 7},
		{URL: "https://ünïcode.example/ü", ContentHash: "cafébabe", ContentLength: 1},
	} {
		data, err := EncodeStoreProof(record)
		require.NoError(t, err)

		proof, err := DecodeStoreProof(data)
		require.NoError(t, err)
		assert.Equal(t, record.URL, proof.URL)
		assert.Equal(t, record.ContentHash, proof.ContentHash)
		assert.Equal(t, record.ContentLength, proof.ContentLength)
	}
}

func TestEncodeStoreProof_InvalidUTF8(t *testing.T) {
	record := testRecord()
	record.URL = string([]byte{0xff, 0xfe, 0xfd})

	_, err := EncodeStoreProof(record)
	require.Error(t, err)
	assert.Equal(t, types.KindEncoding, types.KindOf(err))
}

func TestDecodeStoreProof_Malformed(t *testing.T) {
	valid, err := EncodeStoreProof(testRecord())
	require.NoError(t, err)

	cases := map[string][]byte{
		"empty":             {},
		"wrong variant":     {variantGetProof},
		"truncated prefix":  {variantStoreProof, 1, 0},
		"truncated string":  {variantStoreProof, 10, 0, 0, 0, 'a'},
		"truncated integer": valid[:len(valid)-3],
		"trailing garbage":  append(append([]byte{}, valid...), 0xee),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeStoreProof(data)
			require.Error(t, err)
			assert.Equal(t, types.KindEncoding, types.KindOf(err))
		})
	}
}
