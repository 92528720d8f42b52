package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/Lexv0lk/transfer-engine/internal/pkg/jwt"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/bootstrap"
	"github.com/spf13/cobra"
)

var ErrSubjectMissing = errors.New("--subject is required")

type TokenOptions struct {
	Subject string
	TTL     time.Duration
}

// NewTokenCommand prints an operator token signed with the configured JWT
// secret.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an operator token for the account API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToken(cmd, rootOpts, opts, jwt.NewJWTTokenIssuer())
		},
	}

	cmd.Flags().StringVar(&opts.Subject, "subject", "", "operator name stored in the token")
	cmd.Flags().DurationVar(&opts.TTL, "ttl", time.Hour, "token lifetime")

	return cmd
}

func runToken(cmd *cobra.Command, rootOpts *RootOptions, opts *TokenOptions, issuer jwt.TokenIssuer) error {
	if opts.Subject == "" {
		return ErrSubjectMissing
	}

	cfg, err := bootstrap.LoadTransferConfig(rootOpts.EnvFiles...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	token, err := issuer.IssueToken([]byte(cfg.JwtSecret), opts.Subject, opts.TTL)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
