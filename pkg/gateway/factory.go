package gateway

import (
	logging "github.com/ipfs/go-log/v2"

	"github.com/provenlabs/chaingate/pkg/config"
	"github.com/provenlabs/chaingate/pkg/gateway/solana"
	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

var log = logging.Logger("gateway")

// New dispatches on the configured chain type and constructs the matching
// provider. Unsupported or misconfigured chains fail here, before any network
// I/O is attempted.
func New(cfg config.ChainConfig) (ChainProvider, error) {
	switch cfg.Type() {
	case types.ChainSolana:
		log.Infow("creating provider", "chain_type", cfg.ChainType, "network_url", cfg.NetworkURL)
		return solana.New(cfg)
	case types.ChainEthereum:
		return nil, types.NewError(types.KindConfig, "ethereum provider is not implemented")
	default:
		return nil, types.NewErrorf(types.KindConfig, "unsupported chain type %q", cfg.ChainType)
	}
}
