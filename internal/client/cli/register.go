package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/lumina/internal/client/api"
)

func (c *Cli) registerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register on the backup server",
		Args:  cobra.NoArgs,
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			c.io.Println("=== Registration ===")
			c.io.Println()

			username, err := c.io.ReadInput("Username: ")
			if err != nil {
				return fmt.Errorf("failed to read username: %w", err)
			}

			password, err := c.masterPassword()
			if err != nil {
				return err
			}
			if c.cfg.MasterPassword == "" && c.passwordFile == "" {
				confirm, err := c.io.ReadPassword("Confirm master password: ")
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				if confirm != password {
					return errors.New("passwords do not match")
				}
			}

			userID, err := c.authService.Register(cmd.Context(), username, password)
			if err != nil {
				if errors.Is(err, api.ErrConflict) {
					return fmt.Errorf("username %q is already taken", username)
				}
				return err
			}

			c.io.Println()
			c.io.Println("✓ Registration successful!")
			c.io.Printf("User ID: %s\n", userID)
			c.io.Println()
			c.io.Println("Your master password is never sent to the server. If you forget it, your backups cannot be recovered.")
			c.io.Println("Run 'lumina login' to start a session.")
			return nil
		}),
	}
}
