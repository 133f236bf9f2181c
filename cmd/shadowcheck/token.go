package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/config"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/server"
)

func NewTokenCommand(cfg *config.Configuration) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token signed with the auth secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, err := server.NewAuthenticator(cfg.Auth.Secret)
			if err != nil {
				return err
			}
			token, err := auth.GenerateToken(subject, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "shadowcheck", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
