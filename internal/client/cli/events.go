package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/lumina/internal/client/ics"
	"github.com/iudanet/lumina/internal/client/planner"
	"github.com/iudanet/lumina/internal/client/state"
	"github.com/iudanet/lumina/internal/models"
)

func (c *Cli) eventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event", "calendar"},
		Short:   "Manage calendar events",
	}
	cmd.AddCommand(
		c.eventsListCommand(),
		c.eventsAddCommand(),
		c.eventsExportCommand(),
		c.eventsImportCommand(),
	)
	return cmd
}

func (c *Cli) eventsListCommand() *cobra.Command {
	var upcoming bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Args:  cobra.NoArgs,
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			calendar := planner.NewCalendar(c.holder)

			events := calendar.Events()
			if upcoming {
				events = calendar.Upcoming(c.now(), 0)
			}

			if len(events) == 0 {
				c.io.Println("No events found.")
				return nil
			}

			w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "DATE\tTYPE\tTITLE\tID")
			for _, e := range events {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Date, e.Type, e.Title, e.ID)
			}
			return w.Flush()
		}),
	}
	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "Only events from today on, earliest first")
	return cmd
}

func (c *Cli) eventsAddCommand() *cobra.Command {
	var (
		date      string
		eventType string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event",
		Args:  cobra.ExactArgs(1),
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = state.FormatDay(c.now())
			}

			e, err := planner.NewCalendar(c.holder).AddEvent(cmd.Context(), args[0], date, models.EventType(eventType))
			if err != nil {
				return err
			}

			c.io.Printf("✓ Event %q on %s added (id %s)\n", e.Title, e.Date, e.ID)
			return nil
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&date, "date", "", "Date YYYY-MM-DD (default: today, UTC)")
	flags.StringVar(&eventType, "type", string(models.EventAppointment), "Type: appointment, social, deadline, self-care")
	return cmd
}

func (c *Cli) eventsExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export events as an iCalendar file (stdout by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			events := c.holder.Events()

			var w io.Writer = c.io
			if len(args) == 1 {
				f, err := os.Create(args[0])
				if err != nil {
					return fmt.Errorf("failed to create file: %w", err)
				}
				defer func() {
					if err := f.Close(); err != nil {
						c.logger.Error("Failed to close file", "error", err)
					}
				}()
				w = f
			}

			if err := ics.Export(w, events, c.now().UTC().Truncate(time.Second)); err != nil {
				return err
			}

			if len(args) == 1 {
				c.io.Printf("✓ Exported %d event(s) to %s\n", len(events), args[0])
			}
			return nil
		}),
	}
}

func (c *Cli) eventsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import events from an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer func() {
				if err := f.Close(); err != nil {
					c.logger.Error("Failed to close file", "error", err)
				}
			}()

			events, err := ics.Import(f, c.logger)
			if err != nil {
				return err
			}

			added, err := planner.NewCalendar(c.holder).Import(cmd.Context(), events)
			if err != nil {
				return err
			}

			c.io.Printf("✓ Imported %d of %d event(s)\n", added, len(events))
			return nil
		}),
	}
}
