package planner

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lumina/internal/client/storage/boltdb"
	"github.com/iudanet/lumina/internal/client/state"
	"github.com/iudanet/lumina/internal/models"
)

var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func newTestHolder(t *testing.T) (*state.Holder, *boltdb.Storage) {
	t.Helper()

	backend, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "lumina.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, backend.Close())
	})

	n := 0
	h := state.NewHolder(backend,
		state.WithClock(func() time.Time { return testNow }),
		state.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("gen-%d", n)
		}),
	)
	require.NoError(t, h.Activate(context.Background()))
	return h, backend
}

func TestParseLang(t *testing.T) {
	lang, err := ParseLang("")
	require.NoError(t, err)
	assert.Equal(t, LangPT, lang)

	lang, err = ParseLang("en")
	require.NoError(t, err)
	assert.Equal(t, LangEN, lang)

	_, err = ParseLang("de")
	assert.Error(t, err)
}

func TestRegistry_AddLook(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHolder(t)
	r := NewRegistry(h)

	pt, err := r.AddLook(ctx, LangPT)
	require.NoError(t, err)
	assert.Equal(t, "Novo Estilo", pt.Name)
	assert.Equal(t, models.OutfitCasual, pt.Category)
	assert.Equal(t, "https://picsum.photos/seed/gen-1/400/600", pt.Image)
	assert.Equal(t, "gen-2", pt.ID)
	assert.Equal(t, "2026-10-19T12:00:00.000Z", pt.DateAdded)

	en, err := r.AddLook(ctx, LangEN)
	require.NoError(t, err)
	assert.Equal(t, "New Style", en.Name)

	all, err := r.Filter(FilterAll)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, en.ID, all[0].ID)
	assert.Equal(t, pt.ID, all[1].ID)
	assert.Equal(t, state.SeedOutfit(testNow), all[2])
}

func TestRegistry_Filter(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHolder(t)
	r := NewRegistry(h)

	_, err := r.Add(ctx, models.Outfit{Name: "Suit", Category: models.OutfitWork, Image: PlaceholderImage("suit")})
	require.NoError(t, err)

	work, err := r.Filter("work")
	require.NoError(t, err)
	require.Len(t, work, 1)
	assert.Equal(t, "Suit", work[0].Name)

	casual, err := r.Filter("casual")
	require.NoError(t, err)
	require.Len(t, casual, 1)
	assert.Equal(t, "Picnic de Primavera", casual[0].Name)

	sport, err := r.Filter("sport")
	require.NoError(t, err)
	assert.Empty(t, sport)

	_, err = r.Filter("party")
	assert.Error(t, err)
}

func TestRegistry_AddInvalid(t *testing.T) {
	h, _ := newTestHolder(t)
	r := NewRegistry(h)

	_, err := r.Add(context.Background(), models.Outfit{Name: "x", Category: "party", Image: "not a url"})
	assert.Error(t, err)
	assert.Len(t, h.Outfits(), 1)
}

func TestVisionBoard_Generate(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHolder(t)

	gen := &ImageGeneratorMock{
		GenerateImageFunc: func(ctx context.Context, prompt string) (string, bool) {
			return "data:image/png;base64,aGVsbG8=", true
		},
	}
	board := NewVisionBoard(h, gen)
	board.SetPrompt("  sunrise yoga retreat ")

	item, err := board.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sunrise yoga retreat", item.Prompt)
	assert.Equal(t, VisionCategory, item.Category)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", item.ImageURL)
	assert.Empty(t, board.Prompt())

	require.Len(t, gen.GenerateImageCalls(), 1)
	assert.Equal(t, "sunrise yoga retreat", gen.GenerateImageCalls()[0].Prompt)

	board.SetPrompt("second")
	second, err := board.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.VisionItem{second, item}, board.Items())
}

func TestVisionBoard_EmptyPrompt(t *testing.T) {
	h, _ := newTestHolder(t)
	gen := &ImageGeneratorMock{}
	board := NewVisionBoard(h, gen)
	board.SetPrompt("   ")

	_, err := board.Generate(context.Background())
	assert.ErrorIs(t, err, ErrEmptyPrompt)
	assert.Empty(t, gen.GenerateImageCalls())
}

func TestVisionBoard_AbsenceLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	h, backend := newTestHolder(t)

	succeed := true
	gen := &ImageGeneratorMock{
		GenerateImageFunc: func(ctx context.Context, prompt string) (string, bool) {
			if succeed {
				return "https://example.com/first.png", true
			}
			return "", false
		},
	}
	board := NewVisionBoard(h, gen)

	board.SetPrompt("first")
	_, err := board.Generate(ctx)
	require.NoError(t, err)

	before, beforeRev, err := backend.LoadCollection(ctx, models.KindVision)
	require.NoError(t, err)
	itemsBefore := board.Items()

	succeed = false
	board.SetPrompt("ocean cabin")
	_, err = board.Generate(ctx)
	assert.ErrorIs(t, err, ErrGenerationFailed)

	after, afterRev, err := backend.LoadCollection(ctx, models.KindVision)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, beforeRev, afterRev)
	assert.Equal(t, itemsBefore, board.Items())
	assert.Equal(t, "ocean cabin", board.Prompt())

	// Повтор с тем же prompt
	succeed = true
	item, err := board.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ocean cabin", item.Prompt)
	assert.Empty(t, board.Prompt())
}

func TestCalendar_AddEvent(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHolder(t)
	cal := NewCalendar(h)

	e, err := cal.AddEvent(ctx, " Dentist ", "2026-10-21", models.EventAppointment)
	require.NoError(t, err)
	assert.Equal(t, "Dentist", e.Title)
	assert.Equal(t, "gen-1", e.ID)

	events := cal.Events()
	require.Len(t, events, 2)
	assert.Equal(t, e, events[0])

	_, err = cal.AddEvent(ctx, "Bad", "21.10.2026", models.EventAppointment)
	assert.Error(t, err)
	_, err = cal.AddEvent(ctx, "", "2026-10-21", models.EventAppointment)
	assert.Error(t, err)
	_, err = cal.AddEvent(ctx, "Party", "2026-10-21", "party")
	assert.Error(t, err)
	assert.Len(t, cal.Events(), 2)
}

func TestCalendar_MarkedDaysAndUpcoming(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHolder(t)
	cal := NewCalendar(h)

	require.NoError(t, state.ReplaceAll(ctx, h, []models.Event{
		{ID: "1", Title: "Retreat", Date: "2026-10-25", Type: models.EventSelfCare},
		{ID: "2", Title: "Past", Date: "2026-10-02", Type: models.EventSocial},
		{ID: "3", Title: "Report", Date: "2026-11-01", Type: models.EventDeadline},
		{ID: "4", Title: "Lunch", Date: "2026-10-19", Type: models.EventSocial},
		{ID: "5", Title: "Spa", Date: "2026-10-25", Type: models.EventSelfCare},
	}))

	assert.Equal(t, []int{2, 19, 25}, cal.MarkedDays(2026, time.October))
	assert.Equal(t, []int{1}, cal.MarkedDays(2026, time.November))
	assert.Empty(t, cal.MarkedDays(2025, time.October))

	upcoming := cal.Upcoming(testNow, 0)
	ids := make([]string, 0, len(upcoming))
	for _, e := range upcoming {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"4", "1", "5", "3"}, ids)

	assert.Len(t, cal.Upcoming(testNow, 2), 2)

	assert.Equal(t, "Today is 2026-10-19, events: Lunch (social)", cal.DayContext(testNow))
	assert.Equal(t, "Today is 2026-10-20, no events planned", cal.DayContext(testNow.AddDate(0, 0, 1)))
}

func TestCalendar_Import(t *testing.T) {
	ctx := context.Background()
	h, backend := newTestHolder(t)
	cal := NewCalendar(h)

	incoming := []models.Event{
		{ID: "1", Title: "Duplicate of seed", Date: "2026-10-19", Type: models.EventSocial},
		{ID: "x", Title: "Concert", Date: "2026-12-01", Type: models.EventSocial},
		{ID: "x", Title: "Concert again", Date: "2026-12-01", Type: models.EventSocial},
	}

	added, err := cal.Import(ctx, incoming)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	// импортированные события встают перед существующими, как при добавлении
	events := cal.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "Concert", events[0].Title)
	assert.Equal(t, "Café com Sarah", events[1].Title)

	_, rev, err := backend.LoadCollection(ctx, models.KindEvents)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)

	added, err = cal.Import(ctx, incoming)
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestCalendar_DaysAreUTC(t *testing.T) {
	h, _ := newTestHolder(t)
	cal := NewCalendar(h)

	// 23:30 в UTC-3 уже следующий день по UTC, как и дата seed события
	lateEvening := time.Date(2026, time.October, 18, 23, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
	require.Equal(t, testNow.Format(models.DateLayout), state.FormatDay(lateEvening))

	assert.Equal(t, "Today is 2026-10-19, events: Café com Sarah (social)", cal.DayContext(lateEvening))
	upcoming := cal.Upcoming(lateEvening, 0)
	require.Len(t, upcoming, 1)
	assert.Equal(t, h.Events()[0].Date, upcoming[0].Date)
}

func TestVisionBoard_Recent(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHolder(t)
	board := NewVisionBoard(h, nil)

	assert.Empty(t, board.Recent(3))

	for _, prompt := range []string{"one", "two", "three", "four"} {
		_, err := h.AddVisionItem(ctx, models.VisionItem{ImageURL: "https://example.com/" + prompt + ".png", Prompt: prompt})
		require.NoError(t, err)
	}

	recent := board.Recent(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "four", recent[0].Prompt)
	assert.Equal(t, "two", recent[2].Prompt)
	assert.Len(t, board.Recent(10), 4)
}
