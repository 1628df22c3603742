// Package ics converts calendar events to and from iCalendar (RFC 5545).
package ics

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/iudanet/lumina/internal/models"
	"github.com/iudanet/lumina/internal/validation"
)

// ProductName goes into PRODID of exported calendars
const ProductName = "lumina"

// Export writes events as a VCALENDAR with one all-day VEVENT per event.
// stamp is used as DTSTAMP of every event.
func Export(w io.Writer, events []models.Event, stamp time.Time) error {
	cal := ical.NewCalendarFor(ProductName)
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName("Lumina")

	for _, e := range events {
		day, err := time.Parse(models.DateLayout, e.Date)
		if err != nil {
			return fmt.Errorf("event %q has invalid date %q: %w", e.ID, e.Date, err)
		}

		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Title)
		ve.SetAllDayStartAt(day)
		ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
		ve.AddCategory(string(e.Type))
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("failed to serialize calendar: %w", err)
	}
	return nil
}

// Import parses VEVENTs into events. Events without a summary or a start date
// are skipped with a warning. Unknown categories become appointments and a
// missing UID is replaced by a random id.
func Import(r io.Reader, logger *slog.Logger) ([]models.Event, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar: %w", err)
	}

	events := make([]models.Event, 0)
	for _, ve := range cal.Events() {
		e, err := parseVEvent(ve)
		if err != nil {
			logger.Warn("skipping calendar event", "uid", ve.Id(), "error", err)
			continue
		}
		events = append(events, e)
	}

	return events, nil
}

func parseVEvent(ve *ical.VEvent) (models.Event, error) {
	var e models.Event

	e.ID = ve.Id()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		e.Title = strings.TrimSpace(ical.FromText(p.Value))
	}

	// Для событий со временем берется только дата начала
	start, err := ve.GetAllDayStartAt()
	if err != nil {
		return models.Event{}, fmt.Errorf("invalid start: %w", err)
	}
	e.Date = start.Format(models.DateLayout)

	e.Type = models.EventAppointment
	if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
		e.Type = eventType(ical.FromText(p.Value))
	}

	if err := validation.ValidateEntity(e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

// eventType выбирает первую известную категорию из списка через запятую
func eventType(categories string) models.EventType {
	for _, c := range strings.Split(categories, ",") {
		c = strings.ToLower(strings.TrimSpace(c))
		for _, t := range models.EventTypes() {
			if c == string(t) {
				return t
			}
		}
	}
	return models.EventAppointment
}
