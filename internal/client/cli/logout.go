package cli

import (
	"github.com/spf13/cobra"
)

func (c *Cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session on this device",
		Args:  cobra.NoArgs,
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			password, err := c.masterPassword()
			if err != nil {
				return err
			}

			if err := c.authService.Logout(cmd.Context(), password); err != nil {
				return err
			}

			c.io.Println("✓ Logged out")
			return nil
		}),
	}
}
