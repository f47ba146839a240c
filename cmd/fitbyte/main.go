package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/you/fitbyte/internal/app"
	"github.com/you/fitbyte/internal/config"
	"github.com/you/fitbyte/internal/infrastructure/auth"
	"github.com/you/fitbyte/internal/logger"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "fitbyte",
		Short:         "FitByte activity tracking API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")

	rootCmd.AddCommand(serveCommand(), migrateCommand(), tokenCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCommand() *cobra.Command {
	var autoMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx, cfg, log, autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Create the schema and seed the activity catalog on startup")
	return cmd
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and seed the activity catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

			if err := app.Migrate(cmd.Context(), cfg); err != nil {
				return err
			}
			log.Info("database migrated")
			return nil
		},
	}
}

// tokenCommand issues a token with the configured secret, for local testing
func tokenCommand() *cobra.Command {
	var sub, email string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if os.Getenv("JWT_SECRET") == "" {
				fmt.Fprintln(os.Stderr, "warning: JWT_SECRET unset; a configured or random secret is used")
			}
			token, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL).Generate(sub, email)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&sub, "sub", "", "Subject (user id)")
	cmd.Flags().StringVar(&email, "email", "", "Email claim")
	_ = cmd.MarkFlagRequired("sub")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
