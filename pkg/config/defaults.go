package config

import (
	"time"

	"github.com/spf13/viper"
)

// Key is a configuration key path used with Viper.
type Key string

const (
	ServerHost Key = "server.host"
	ServerPort Key = "server.port"

	ChainType      Key = "chain.chain_type"
	NetworkURL     Key = "chain.network_url"
	ProgramID      Key = "chain.program_id"
	PrivateKeyPath Key = "chain.private_key_path"
	StrictKeys     Key = "chain.strict_keys"
	Commitment     Key = "chain.commitment"
	NetworkName    Key = "chain.network_name"
	ConfirmTimeout Key = "chain.confirm_timeout"
	SettleDelay    Key = "chain.settle_delay"
)

var defaultValues = map[Key]any{
	ServerHost: "0.0.0.0",
	ServerPort: uint(50051),

	ChainType:      "solana",
	NetworkURL:     "http://localhost:8899",
	Commitment:     "confirmed",
	NetworkName:    "Solana Local Validator",
	ConfirmTimeout: time.Minute,
	SettleDelay:    time.Duration(0),
}

// SetDefaults sets all viper defaults for configuration.
// Called before viper.Unmarshal() to ensure defaults are available.
func SetDefaults() {
	for k, v := range defaultValues {
		viper.SetDefault(string(k), v)
	}
}
