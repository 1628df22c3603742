package state

import (
	"time"

	"github.com/iudanet/lumina/internal/models"
)

// TimestampLayout is the layout of Outfit.DateAdded (ISO 8601 with milliseconds, UTC).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp formats t as an outfit timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatDay returns the calendar day of t in UTC. Event dates, the seed
// event and "today" in every command share this basis.
func FormatDay(t time.Time) string {
	return t.UTC().Format(models.DateLayout)
}

// SeedOutfit returns the demo outfit shown on first run.
func SeedOutfit(now time.Time) models.Outfit {
	return models.Outfit{
		ID:        "1",
		Name:      "Picnic de Primavera",
		Category:  models.OutfitCasual,
		Image:     "https://picsum.photos/seed/outfit1/400/600",
		DateAdded: FormatTimestamp(now),
	}
}

// SeedEvent returns the demo event dated today.
func SeedEvent(now time.Time) models.Event {
	return models.Event{
		ID:    "1",
		Title: "Café com Sarah",
		Date:  FormatDay(now),
		Type:  models.EventSocial,
	}
}
