package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"prepscore/internal/config"
	"prepscore/internal/logging"
	"prepscore/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the evaluation HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(config.LogLevel(), config.LogFormat())
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		addr := serveAddr
		if addr == "" {
			addr = config.Addr()
		}
		if err := server.Run(addr, logger, server.Options{
			MaxBodyBytes:   config.MaxBodyBytes(),
			MetricsEnabled: config.MetricsEnabled(),
		}); err != nil {
			logger.Error("server stopped", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from PREPSCORE_ADDR or PORT)")
}
