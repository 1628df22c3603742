package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/lumina/internal/client/planner"
)

func (c *Cli) visionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vision",
		Short: "Manage the vision board",
	}
	cmd.AddCommand(c.visionListCommand(), c.visionGenerateCommand())
	return cmd
}

func (c *Cli) visionListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vision board items",
		Args:  cobra.NoArgs,
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			items := c.holder.VisionItems()
			if len(items) == 0 {
				c.io.Println("Vision board is empty. Run 'lumina vision generate <prompt>' to add an image.")
				return nil
			}

			for i, item := range items {
				c.io.Printf("%d. %s [%s]\n", i+1, item.Prompt, item.Category)
				c.io.Printf("   ID:    %s\n", item.ID)
				c.io.Printf("   Image: %s\n", shorten(item.ImageURL, 80))
			}
			return nil
		}),
	}
}

func (c *Cli) visionGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate a mood board image for the prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			generator, err := c.imageGenerator(cmd.Context())
			if err != nil {
				return err
			}

			board := planner.NewVisionBoard(c.holder, generator)
			board.SetPrompt(strings.Join(args, " "))

			c.io.Println("Generating image...")
			item, err := board.Generate(cmd.Context())
			if err != nil {
				if errors.Is(err, planner.ErrGenerationFailed) {
					return errors.New("could not generate an image, please try again")
				}
				return err
			}

			c.io.Printf("✓ Added to vision board (id %s)\n", item.ID)
			return nil
		}),
	}
}

// shorten обрезает длинные data: URI при выводе
func shorten(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
