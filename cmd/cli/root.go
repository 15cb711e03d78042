package cli

import (
	"context"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/provenlabs/chaingate/cmd/cli/serve"
	"github.com/provenlabs/chaingate/pkg/config"
)

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

var log = logging.Logger("cmd")

const chaingateShortDescription = `
Chaingate anchors content records on a distributed ledger
`

const chaingateLongDescription = `
Chaingate - Content Record Chain Gateway
Chaingate accepts content records over HTTP and durably anchors them on a
ledger by submitting a signed transaction, returning the ledger-assigned
transaction identifier as a tamper-evident proof of existence.
`

var (
	cfgFile  string
	logLevel string
	rootCmd  = &cobra.Command{
		Use:   "chaingate",
		Short: chaingateShortDescription,
		Long:  chaingateLongDescription,
	}
)

func init() {
	cobra.OnInitialize(initLogging, initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "logging level")

	rootCmd.PersistentFlags().String("chain-type", "solana", "Target ledger back-end")
	cobra.CheckErr(viper.BindPFlag(string(config.ChainType), rootCmd.PersistentFlags().Lookup("chain-type")))
	cobra.CheckErr(viper.BindEnv(string(config.ChainType), "CHAIN_TYPE"))

	rootCmd.PersistentFlags().String("network-url", "http://localhost:8899", "Ledger RPC endpoint")
	cobra.CheckErr(viper.BindPFlag(string(config.NetworkURL), rootCmd.PersistentFlags().Lookup("network-url")))
	// BLOCKCHAIN_URL is the historical name, RPC_URL the alias
	cobra.CheckErr(viper.BindEnv(string(config.NetworkURL), "BLOCKCHAIN_URL", "RPC_URL"))

	rootCmd.PersistentFlags().String("program-id", "", "On-ledger program identifier (required)")
	cobra.CheckErr(viper.BindPFlag(string(config.ProgramID), rootCmd.PersistentFlags().Lookup("program-id")))
	cobra.CheckErr(viper.BindEnv(string(config.ProgramID), "PROGRAM_ID"))

	rootCmd.PersistentFlags().String("private-key-path", "", "Credential file holding a JSON array of secret-key bytes")
	cobra.CheckErr(viper.BindPFlag(string(config.PrivateKeyPath), rootCmd.PersistentFlags().Lookup("private-key-path")))
	cobra.CheckErr(viper.BindEnv(string(config.PrivateKeyPath), "PRIVATE_KEY_PATH"))

	rootCmd.PersistentFlags().Bool("strict-keys", false, "Fail startup when the credential file cannot be loaded")
	cobra.CheckErr(viper.BindPFlag(string(config.StrictKeys), rootCmd.PersistentFlags().Lookup("strict-keys")))

	// register all commands and their subcommands
	rootCmd.AddCommand(serve.Cmd)
}

func initConfig() {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("CHAINGATE")
	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		cobra.CheckErr(viper.ReadInConfig())
	}
}

func initLogging() {
	if logLevel != "" {
		ll, err := logging.LevelFromString(logLevel)
		cobra.CheckErr(err)
		logging.SetAllLoggers(ll)
	} else {
		logging.SetAllLoggers(logging.LevelInfo)
		logging.SetLogLevel("config", "error")
		logging.SetLogLevel("server/middleware", "warn")
	}
}
