package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/iudanet/lumina/internal/client/planner"
)

func (c *Cli) suggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Ask the assistant for today's tips and a self-care activity",
		Args:  cobra.NoArgs,
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			suggester, err := c.plannerAssistant(cmd.Context())
			if err != nil {
				return err
			}

			dayContext := planner.NewCalendar(c.holder).DayContext(c.now())
			s, ok := suggester.PlannerSuggestions(cmd.Context(), dayContext)
			if !ok {
				return errors.New("could not get suggestions, please try again")
			}

			c.io.Println("=== Today ===")
			for _, tip := range s.Tips {
				c.io.Printf("• %s\n", tip)
			}
			c.io.Println()
			c.io.Printf("Self-care: %s\n", s.SelfCare)
			return nil
		}),
	}
}
