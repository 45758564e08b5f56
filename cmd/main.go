package main

import (
	"context"
	"fmt"
	"os"

	"maternal-care-backend/cmd/bootstrap"
	"maternal-care-backend/internal/delivery/dto"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		logrus.Fatalf("Command failed: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "maternal-care",
		Short:         "Maternal care plan backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(), newMigrateCommand(), newSeedMOHCommand())
	return root
}

func newServeCommand() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			if autoMigrate {
				if err := app.Migrate(); err != nil {
					app.Close()
					return err
				}
			}

			// Run the application
			app.Run()
			return nil
		},
	}

	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "migrate the database before serving")
	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.Connect()
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Migrate()
		},
	}
}

func newSeedMOHCommand() *cobra.Command {
	var req dto.RegisterMOHRequest

	cmd := &cobra.Command{
		Use:   "seed-moh",
		Short: "Register a MOH officer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				req.Password = os.Getenv("MOH_PASSWORD")
			}

			app, err := bootstrap.Connect()
			if err != nil {
				return err
			}
			defer app.Close()

			officer, err := app.SeedMOH(cmd.Context(), &req)
			if err != nil {
				return fmt.Errorf("failed to register MOH officer: %w", err)
			}

			app.Log.WithFields(logrus.Fields{
				"id":       officer.ID,
				"username": officer.Username,
			}).Info("MOH officer registered")
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "login username")
	cmd.Flags().StringVar(&req.Password, "password", "", "login password, defaults to $MOH_PASSWORD")
	cmd.Flags().StringVar(&req.FullName, "full-name", "", "officer full name")
	cmd.Flags().StringVar(&req.MOHArea, "moh-area", "", "MOH area")
	cmd.Flags().StringVar(&req.Email, "email", "", "contact email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("full-name")
	_ = cmd.MarkFlagRequired("moh-area")
	return cmd
}
