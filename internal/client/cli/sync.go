package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/iudanet/lumina/internal/client/sync"
	"github.com/iudanet/lumina/internal/models"
)

// kindsFromArgs возвращает коллекцию из аргумента или все коллекции
func kindsFromArgs(args []string) ([]models.Kind, error) {
	if len(args) == 0 {
		return models.Kinds(), nil
	}
	kind, err := models.ParseKind(args[0])
	if err != nil {
		return nil, err
	}
	return []models.Kind{kind}, nil
}

func (c *Cli) pushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "push [outfits|vision|events]",
		Short: "Back up local collections to the server",
		Long: `Encrypt local collections and replace the server copies with them.

The server keeps the last pushed copy. If another device pushed since this
device last synced, its copy is overwritten and a warning is shown.

Demo entries shown on first run are saved locally before the push, so the
server receives exactly what the list commands show.`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			kinds, err := kindsFromArgs(args)
			if err != nil {
				return err
			}

			session, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Keys.Wipe()

			if err := c.holder.PersistSeeds(cmd.Context()); err != nil {
				return err
			}

			creds := sync.Credentials{AccessToken: session.AccessToken, Key: session.Keys.EncryptionKey}
			for _, kind := range kinds {
				res, err := c.syncService.Push(cmd.Context(), creds, kind)
				if err != nil {
					return err
				}

				c.io.Printf("✓ %-8s pushed, server revision %d\n", kind, res.Revision)
				if res.Overwrote {
					c.io.Printf("  ⚠️  another device had pushed %s since your last sync, its copy was replaced\n", kind)
				}
			}
			return nil
		}),
	}
}

func (c *Cli) pullCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pull [outfits|vision|events]",
		Short: "Restore local collections from the server",
		Long: `Download, decrypt and validate server copies and overwrite local collections with them.

Collections that were never pushed are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			kinds, err := kindsFromArgs(args)
			if err != nil {
				return err
			}

			session, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Keys.Wipe()

			creds := sync.Credentials{AccessToken: session.AccessToken, Key: session.Keys.EncryptionKey}
			for _, kind := range kinds {
				res, err := c.syncService.Pull(cmd.Context(), creds, kind)
				if err != nil {
					if errors.Is(err, sync.ErrNotOnServer) && len(args) == 0 {
						c.io.Printf("- %-8s not on server, skipped\n", kind)
						continue
					}
					return err
				}
				c.io.Printf("✓ %-8s pulled, %d item(s), server revision %d\n", kind, res.Items, res.Revision)
			}
			return nil
		}),
	}
}
