package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/lumina/internal/client/api"
)

func (c *Cli) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to the backup server",
		Args:  cobra.NoArgs,
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			c.io.Println("=== Login ===")
			c.io.Println()

			username, err := c.io.ReadInput("Username: ")
			if err != nil {
				return fmt.Errorf("failed to read username: %w", err)
			}

			password, err := c.masterPassword()
			if err != nil {
				return err
			}

			session, err := c.authService.Login(cmd.Context(), username, password)
			if err != nil {
				if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, api.ErrNotFound) {
					return errors.New("invalid username or password")
				}
				return err
			}
			defer session.Keys.Wipe()

			c.io.Println()
			c.io.Println("✓ Login successful!")
			c.io.Printf("Username: %s\n", session.Username)
			c.io.Printf("Access token expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
			c.io.Println()
			c.io.Println("Your session has been saved securely.")
			return nil
		}),
	}
}
