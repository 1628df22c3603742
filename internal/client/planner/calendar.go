package planner

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/iudanet/lumina/internal/client/state"
	"github.com/iudanet/lumina/internal/models"
	"github.com/iudanet/lumina/internal/validation"
)

// Calendar manages calendar events
type Calendar struct {
	holder *state.Holder
}

// NewCalendar creates a calendar over the holder
func NewCalendar(holder *state.Holder) *Calendar {
	return &Calendar{holder: holder}
}

// Events returns all events in display order
func (c *Calendar) Events() []models.Event {
	return c.holder.Events()
}

// AddEvent validates and prepends a new event
func (c *Calendar) AddEvent(ctx context.Context, title, date string, eventType models.EventType) (models.Event, error) {
	e := models.Event{
		ID:    c.holder.NewID(),
		Title: strings.TrimSpace(title),
		Date:  date,
		Type:  eventType,
	}
	if err := validation.ValidateEntity(e); err != nil {
		return models.Event{}, fmt.Errorf("invalid event: %w", err)
	}

	added, err := c.holder.AddEvent(ctx, e)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to add event: %w", err)
	}
	return added, nil
}

// Import prepends events whose ids are not in the calendar yet, in one save.
// Returns the number of added events.
func (c *Calendar) Import(ctx context.Context, events []models.Event) (int, error) {
	added, err := c.holder.ImportEvents(ctx, events)
	if err != nil {
		return 0, fmt.Errorf("failed to import events: %w", err)
	}
	return added, nil
}

// MarkedDays returns the sorted days of the month that have at least one event
func (c *Calendar) MarkedDays(year int, month time.Month) []int {
	var days []int
	for _, e := range c.holder.Events() {
		d, err := time.Parse(models.DateLayout, e.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			days = append(days, d.Day())
		}
	}

	slices.Sort(days)
	return slices.Compact(days)
}

// Upcoming returns events dated on or after the day of from, earliest first.
// Days are taken in UTC like every other event date.
// limit <= 0 means no limit.
func (c *Calendar) Upcoming(from time.Time, limit int) []models.Event {
	today := state.FormatDay(from)

	var upcoming []models.Event
	for _, e := range c.holder.Events() {
		// Даты в формате YYYY-MM-DD сравниваются лексикографически
		if e.Date >= today {
			upcoming = append(upcoming, e)
		}
	}

	slices.SortStableFunc(upcoming, func(a, b models.Event) int {
		return strings.Compare(a.Date, b.Date)
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// DayContext describes the day for planner suggestions
func (c *Calendar) DayContext(day time.Time) string {
	date := state.FormatDay(day)

	var titles []string
	for _, e := range c.holder.Events() {
		if e.Date == date {
			titles = append(titles, fmt.Sprintf("%s (%s)", e.Title, e.Type))
		}
	}

	if len(titles) == 0 {
		return fmt.Sprintf("Today is %s, no events planned", date)
	}
	return fmt.Sprintf("Today is %s, events: %s", date, strings.Join(titles, ", "))
}
