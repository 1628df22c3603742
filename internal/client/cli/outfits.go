package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iudanet/lumina/internal/client/planner"
	"github.com/iudanet/lumina/internal/models"
)

func (c *Cli) outfitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "outfits",
		Aliases: []string{"outfit"},
		Short:   "Manage the outfit registry",
	}
	cmd.AddCommand(c.outfitsListCommand(), c.outfitsAddCommand())
	return cmd
}

func (c *Cli) outfitsListCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List outfits",
		Args:  cobra.NoArgs,
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			outfits, err := planner.NewRegistry(c.holder).Filter(category)
			if err != nil {
				return err
			}

			if len(outfits) == 0 {
				c.io.Println("No outfits found.")
				return nil
			}

			w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tCATEGORY\tADDED\tID")
			for _, o := range outfits {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.Name, o.Category, o.DateAdded, o.ID)
			}
			return w.Flush()
		}),
	}
	cmd.Flags().StringVar(&category, "category", planner.FilterAll, "Filter by category: all, casual, formal, work, sport")
	return cmd
}

func (c *Cli) outfitsAddCommand() *cobra.Command {
	var (
		name     string
		category string
		image    string
		lang     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an outfit",
		Long: `Add an outfit to the registry.

Without --name a new casual look with a placeholder image is added.`,
		Args: cobra.NoArgs,
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			registry := planner.NewRegistry(c.holder)

			var (
				added models.Outfit
				err   error
			)
			if name == "" {
				l, perr := planner.ParseLang(lang)
				if perr != nil {
					return perr
				}
				added, err = registry.AddLook(cmd.Context(), l)
			} else {
				if image == "" {
					image = planner.PlaceholderImage(c.holder.NewID())
				}
				added, err = registry.Add(cmd.Context(), models.Outfit{
					Name:     name,
					Category: models.OutfitCategory(category),
					Image:    image,
				})
			}
			if err != nil {
				return err
			}

			c.io.Printf("✓ Outfit %q added (id %s)\n", added.Name, added.ID)
			return nil
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "Outfit name")
	flags.StringVar(&category, "category", string(models.OutfitCasual), "Category: casual, formal, work, sport")
	flags.StringVar(&image, "image", "", "Image URL (default: random placeholder)")
	flags.StringVar(&lang, "lang", string(planner.LangPT), "Language of the default look name: pt or en")
	return cmd
}
