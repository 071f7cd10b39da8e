package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"bookstore-web/internal/config"
	"bookstore-web/pkg/container"
)

func newCreateSuperuserCommand() *cobra.Command {
	var email, fullName, password string

	cmd := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Create a superuser, or promote an existing account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("SUPERUSER_PASSWORD")
			}
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password (or SUPERUSER_PASSWORD) are required")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dbConfig, err := config.LoadDatabaseConfig()
			if err != nil {
				return err
			}
			// Sessions are not used here.
			cfg.Session.Store = "memory"
			cfg.Queue.Enabled = false

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			c, err := container.NewContainer(ctx, cfg, dbConfig)
			if err != nil {
				return err
			}
			defer c.Cleanup()

			u, err := c.UserService.CreateSuperuser(ctx, email, fullName, password)
			if err != nil {
				return err
			}

			log.Info().Str("email", u.Email).Str("id", u.ID.String()).Msg("superuser ready")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "superuser email")
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	cmd.Flags().StringVar(&password, "password", "", "password (defaults to $SUPERUSER_PASSWORD)")
	return cmd
}
