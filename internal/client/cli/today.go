package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/lumina/internal/client/planner"
	"github.com/iudanet/lumina/internal/client/state"
)

const recentVisionItems = 3

func (c *Cli) todayCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "today",
		Aliases: []string{"dashboard"},
		Short:   "Show upcoming events and the latest vision board items",
		Args:    cobra.NoArgs,
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			now := c.now()
			c.io.Printf("=== %s ===\n", state.FormatDay(now))

			c.io.Println("Upcoming:")
			events := planner.NewCalendar(c.holder).Upcoming(now, 0)
			if len(events) == 0 {
				c.io.Println("  No plans yet.")
			}
			for _, e := range events {
				c.io.Printf("  %s  %-11s %s\n", e.Date, e.Type, e.Title)
			}

			c.io.Println()
			c.io.Println("Recent manifestations:")
			items := planner.NewVisionBoard(c.holder, nil).Recent(recentVisionItems)
			if len(items) == 0 {
				c.io.Println("  Vision board is empty, try `lumina vision generate <prompt>`.")
			}
			for _, v := range items {
				c.io.Printf("  • %s  %s\n", v.Prompt, shorten(v.ImageURL, 60))
			}
			return nil
		}),
	}
}
