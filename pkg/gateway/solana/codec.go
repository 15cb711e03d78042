package solana

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

// The on-chain program expects Borsh-encoded instructions: a one-byte variant
// discriminant, u32 little-endian length-prefixed UTF-8 strings in declared
// order, then fixed-width little-endian integers. The layout is owned by the
// program; changing it here breaks wire compatibility.
const (
	variantStoreProof byte = 0
	variantGetProof   byte = 1
)

// StoreProof is the payload of the store-proof instruction variant.
type StoreProof struct {
	URL           string
	ContentHash   string
	ContentLength uint64
}

// EncodeStoreProof serializes a record into the program's store-proof
// instruction format. Encoding is deterministic: the same record always yields
// identical bytes.
func EncodeStoreProof(record types.ContentRecord) ([]byte, error) {
	payload := StoreProof{
		URL:           record.URL,
		ContentHash:   record.ContentHash,
		ContentLength: record.ContentLength,
	}

	buf := make([]byte, 0, 1+4+len(payload.URL)+4+len(payload.ContentHash)+8)
	buf = append(buf, variantStoreProof)

	var err error
	if buf, err = appendString(buf, payload.URL); err != nil {
		return nil, types.WrapError(types.KindEncoding, "encoding url", err)
	}
	if buf, err = appendString(buf, payload.ContentHash); err != nil {
		return nil, types.WrapError(types.KindEncoding, "encoding content hash", err)
	}
	buf = binary.LittleEndian.AppendUint64(buf, payload.ContentLength)
	return buf, nil
}

// EncodeGetProof serializes the fieldless get-proof instruction variant.
func EncodeGetProof() []byte {
	return []byte{variantGetProof}
}

// DecodeStoreProof parses bytes produced by EncodeStoreProof. It round-trips
// every encoded value and is used by tests and by record retrieval.
func DecodeStoreProof(data []byte) (StoreProof, error) {
	if len(data) == 0 {
		return StoreProof{}, types.NewError(types.KindEncoding, "empty instruction data")
	}
	if data[0] != variantStoreProof {
		return StoreProof{}, types.NewErrorf(types.KindEncoding, "unexpected instruction variant %d", data[0])
	}
	rest := data[1:]

	url, rest, err := readString(rest)
	if err != nil {
		return StoreProof{}, types.WrapError(types.KindEncoding, "decoding url", err)
	}
	hash, rest, err := readString(rest)
	if err != nil {
		return StoreProof{}, types.WrapError(types.KindEncoding, "decoding content hash", err)
	}
	if len(rest) != 8 {
		return StoreProof{}, types.NewErrorf(types.KindEncoding, "expected 8 trailing bytes for content length, got %d", len(rest))
	}
	return StoreProof{
		URL:           url,
		ContentHash:   hash,
		ContentLength: binary.LittleEndian.Uint64(rest),
	}, nil
}

func appendString(buf []byte, s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, types.NewError(types.KindEncoding, "string is not valid UTF-8")
	}
	if uint64(len(s)) > math.MaxUint32 {
		return nil, types.NewError(types.KindEncoding, "string exceeds u32 length prefix")
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...), nil
}

func readString(data []byte) (string, []byte, error) {
	if len(data) < 4 {
		return "", nil, types.NewError(types.KindEncoding, "truncated string length prefix")
	}
	n := binary.LittleEndian.Uint32(data)
	data = data[4:]
	if uint64(len(data)) < uint64(n) {
		return "", nil, types.NewErrorf(types.KindEncoding, "truncated string: want %d bytes, have %d", n, len(data))
	}
	s := string(data[:n])
	if !utf8.ValidString(s) {
		return "", nil, types.NewError(types.KindEncoding, "string is not valid UTF-8")
	}
	return s, data[n:], nil
}
