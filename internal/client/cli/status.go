package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/lumina/internal/models"
)

func (c *Cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session and backup status",
		Args:  cobra.NoArgs,
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c.io.Println("=== Status ===")
			c.io.Println()
			c.io.Printf("Database: %s\n", c.storage.Path())
			c.io.Printf("Server:   %s\n", c.cfg.ServerURL)
			c.io.Println()

			status, err := c.authService.Status(ctx)
			if err != nil {
				return err
			}

			if !status.LoggedIn {
				c.io.Println("Session: not logged in")
				c.io.Println("Run 'lumina login' to back up your collections.")
			} else {
				c.io.Printf("Session: %s\n", status.Username)
				remaining := status.ExpiresAt.Sub(c.now())
				if remaining > 0 {
					c.io.Printf("Access token expires in %s\n", remaining.Round(time.Second))
				} else {
					c.io.Println("Access token has expired, it is refreshed on the next push or pull.")
				}
			}

			c.io.Println()
			c.io.Println("Collections:")
			for _, kind := range models.Kinds() {
				local, err := c.storage.CollectionRevision(ctx, kind)
				if err != nil {
					return err
				}
				synced, err := c.storage.GetSyncedRevision(ctx, kind)
				if err != nil {
					return err
				}

				backup := "never pushed"
				if synced > 0 {
					backup = fmt.Sprintf("server revision %d", synced)
				}
				c.io.Printf("  %-8s local revision %d, %s\n", kind, local, backup)
			}
			return nil
		}),
	}
}
