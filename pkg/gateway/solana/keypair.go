package solana

import (
	"crypto/ed25519"

	"github.com/gagliardetto/solana-go"

	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

// LoadKeypair loads the payer identity from a Solana CLI-style credential file
// (a JSON array of raw secret-key bytes).
//
// Under the lenient policy any failure (missing path, unreadable file,
// malformed JSON, wrong key length) degrades to a freshly generated ephemeral
// identity, logged but not surfaced: availability wins over strict credential
// enforcement. Under the strict policy the same failures are configuration
// errors. A deployment picks exactly one policy via ChainConfig.StrictKeys.
func LoadKeypair(path string, strict bool) (solana.PrivateKey, error) {
	if path == "" {
		if strict {
			return nil, types.NewError(types.KindConfig, "private key path is required")
		}
		return generateKeypair()
	}

	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err == nil && len(key) != ed25519.PrivateKeySize {
		err = types.NewErrorf(types.KindConfig, "credential file holds %d bytes, want %d", len(key), ed25519.PrivateKeySize)
	}
	if err != nil {
		if strict {
			return nil, types.WrapError(types.KindConfig, "loading keypair from "+path, err)
		}
		log.Warnw("failed to load keypair, generating a new one", "path", path, "error", err)
		return generateKeypair()
	}

	log.Infow("loaded existing keypair", "pubkey", key.PublicKey())
	return key, nil
}

func generateKeypair() (solana.PrivateKey, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, types.WrapError(types.KindInternal, "generating keypair", err)
	}
	log.Infow("generated new keypair", "pubkey", key.PublicKey())
	return key, nil
}
