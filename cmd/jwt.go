package main

import (
	"context"
	"fmt"
	"pragency/internal/auth"
	"pragency/internal/config"
	"pragency/pkg/domain"
	"pragency/pkg/logger"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed access
// token for a given user ID and TTL using the configured HMAC secret.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, _ []string) {
			ctx := context.Background()

			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(ctx, "subject must be a user UUID", zap.Error(err))
			}

			tokens, err := auth.NewTokens(auth.TokensOptions{
				Secret:         cfg.JWT.Secret,
				Algorithm:      cfg.JWT.Algorithm,
				AccessTokenTTL: ttl,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create token service", zap.Error(err))
			}

			signed, err := tokens.Issue(domain.UserID(userID))
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
