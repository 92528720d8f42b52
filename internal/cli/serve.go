package cli

import (
	"fmt"
	"net"

	"github.com/Lexv0lk/transfer-engine/internal/pkg/logging"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/bootstrap"
	"github.com/spf13/cobra"
)

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the gRPC health service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, rootOpts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := bootstrap.LoadTransferConfig(opts.EnvFiles...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	httpLis, err := net.Listen(bootstrap.NetworkProtocol, cfg.HttpPort)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.HttpPort, err)
	}

	grpcLis, err := net.Listen(bootstrap.NetworkProtocol, cfg.GrpcHealthPort)
	if err != nil {
		_ = httpLis.Close()
		return fmt.Errorf("failed to listen on %s: %w", cfg.GrpcHealthPort, err)
	}

	logger.Info("starting transfer engine",
		"lock_attempt_timeout", cfg.LockPolicy.AttemptTimeout.String(),
		"lock_max_attempts", cfg.LockPolicy.MaxAttempts,
		"lock_retry_delay", cfg.LockPolicy.RetryDelay.String(),
	)

	app := bootstrap.NewTransferApp(cfg, logger)
	return app.Run(cmd.Context(), httpLis, grpcLis)
}
