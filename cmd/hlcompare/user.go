package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hlcompare/internal/auth"
	"hlcompare/internal/config"
	"hlcompare/internal/store/postgres"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	createCmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create a user account",
		Long:  "Create an account directly in the database, prompting for the password.",
		Args:  cobra.ExactArgs(1),
		RunE:  runUserCreate,
	}
	cmd.AddCommand(createCmd)
	return cmd
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	setupLogging(cmd)
	username := args[0]

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("user create requires an interactive terminal")
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, repos, err := postgres.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	// Sessions are not needed to create an account.
	service := auth.NewService(repos.Users, nil, log.Logger)
	user, err := service.Register(ctx, username, password)
	if err != nil {
		return err
	}

	fmt.Printf("Created user %q (id %d)\n", user.Username, user.ID)
	return nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}
