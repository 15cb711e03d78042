package serve

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/provenlabs/chaingate/pkg/config"
	"github.com/provenlabs/chaingate/pkg/gateway"
	"github.com/provenlabs/chaingate/pkg/server"
)

var log = logging.Logger("cmd/serve")

var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway server",
	Args:  cobra.NoArgs,
	RunE:  serveGateway,
}

func init() {
	Cmd.Flags().String(
		"host",
		"0.0.0.0",
		"Host to listen on")
	cobra.CheckErr(viper.BindPFlag(string(config.ServerHost), Cmd.Flags().Lookup("host")))

	Cmd.Flags().Uint(
		"port",
		50051,
		"Port to listen on",
	)
	cobra.CheckErr(viper.BindPFlag(string(config.ServerPort), Cmd.Flags().Lookup("port")))
}

func serveGateway(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load[config.GatewayConfig]()
	if err != nil {
		return err
	}

	provider, err := gateway.New(cfg.Chain)
	if err != nil {
		return err
	}

	if init, ok := provider.(gateway.Initializer); ok {
		if err := init.Initialize(ctx); err != nil {
			return err
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Infow("starting gateway", "addr", addr, "chain_type", cfg.Chain.ChainType)
	return server.ListenAndServe(ctx, addr, provider)
}
