package config

import (
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

// ChainConfig selects and parameterizes the ledger back-end. Loaded once at
// startup and immutable thereafter.
type ChainConfig struct {
	// ChainType selects the concrete provider implementation.
	ChainType string `mapstructure:"chain_type" validate:"required" flag:"chain-type"`

	// NetworkURL is the ledger RPC endpoint.
	NetworkURL string `mapstructure:"network_url" validate:"required,url" flag:"network-url"`

	// ProgramID identifies the on-ledger program that interprets instruction
	// payloads.
	ProgramID string `mapstructure:"program_id" validate:"required" flag:"program-id"`

	// PrivateKeyPath points at a credential file holding a JSON array of raw
	// secret-key bytes. May be empty under the lenient key policy.
	PrivateKeyPath string `mapstructure:"private_key_path" flag:"private-key-path"`

	// StrictKeys makes a missing or malformed credential file a startup error
	// instead of falling back to a generated identity.
	StrictKeys bool `mapstructure:"strict_keys" flag:"strict-keys"`

	// Commitment is the confirmation depth at which a submission counts as
	// confirmed.
	Commitment string `mapstructure:"commitment" validate:"oneof=processed confirmed finalized" flag:"commitment"`

	// NetworkName is a human-readable label reported in network info.
	NetworkName string `mapstructure:"network_name" flag:"network-name"`

	// ConfirmTimeout bounds the confirmation wait after submission.
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout" validate:"gt=0" flag:"confirm-timeout"`

	// SettleDelay is an optional pre-build wait for a prior funding operation
	// to settle. Bounded: anything longer risks blockhash expiry.
	SettleDelay time.Duration `mapstructure:"settle_delay" validate:"min=0,max=5s" flag:"settle-delay"`
}

func (c ChainConfig) Validate() error {
	return validateConfig(c)
}

// Type returns the chain type as the gateway enum.
func (c ChainConfig) Type() types.ChainType {
	return types.ChainType(c.ChainType)
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host" validate:"required" flag:"host"`
	Port uint   `mapstructure:"port" validate:"required" flag:"port"`
}

func (s ServerConfig) Validate() error {
	return validateConfig(s)
}

// GatewayConfig is the root configuration for the service.
type GatewayConfig struct {
	Server ServerConfig `mapstructure:"server"`
	Chain  ChainConfig  `mapstructure:"chain"`
}

func (g GatewayConfig) Validate() error {
	var errs *multierror.Error
	errs = multierror.Append(errs, g.Server.Validate())
	errs = multierror.Append(errs, g.Chain.Validate())
	return errs.ErrorOrNil()
}
