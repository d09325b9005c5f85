package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/yomi-backend/internal/auth"
)

const minSecretLen = 32

type tokenOptions struct {
	userID string
	secret string
	issuer string
	ttl    time.Duration
}

func newTokenCmd() *cobra.Command {
	opts := tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local testing",
		Long: `Signs an HS256 access token the API accepts as a bearer token.
The secret defaults to $AUTH_JWT_SECRET and must match the server's.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.secret == "" {
				opts.secret = os.Getenv("AUTH_JWT_SECRET")
			}
			return runToken(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.userID, "user", "", "User id (UUID); random when empty")
	f.StringVar(&opts.secret, "secret", "", "HMAC signing secret")
	f.StringVar(&opts.issuer, "issuer", "yomi", "Token issuer")
	f.DurationVar(&opts.ttl, "ttl", time.Hour, "Token lifetime")

	return cmd
}

func runToken(out io.Writer, opts tokenOptions) error {
	if len(opts.secret) < minSecretLen {
		return fmt.Errorf("secret must be at least %d characters", minSecretLen)
	}
	if opts.ttl <= 0 {
		return fmt.Errorf("--ttl must be positive")
	}

	userID := uuid.New()
	if opts.userID != "" {
		var err error
		if userID, err = uuid.Parse(opts.userID); err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
	}

	token, err := auth.NewJWTManager(opts.secret, opts.issuer, opts.ttl).GenerateAccessToken(userID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "user:  %s\ntoken: %s\n", userID, token)
	return nil
}
