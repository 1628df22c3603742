// Package planner implements the feature services on top of the state holder:
// the outfit registry, the vision board and the calendar.
package planner

import (
	"context"
	"fmt"

	"github.com/iudanet/lumina/internal/client/state"
	"github.com/iudanet/lumina/internal/models"
)

// FilterAll matches every outfit category
const FilterAll = "all"

// Lang selects the language of generated default names
type Lang string

const (
	LangPT Lang = "pt"
	LangEN Lang = "en"
)

// ParseLang разбирает код языка, по умолчанию португальский
func ParseLang(s string) (Lang, error) {
	switch s {
	case "", "pt", "pt-BR":
		return LangPT, nil
	case "en":
		return LangEN, nil
	default:
		return "", fmt.Errorf("unsupported language %q (use pt or en)", s)
	}
}

var newLookNames = map[Lang]string{
	LangPT: "Novo Estilo",
	LangEN: "New Style",
}

// Registry is the outfit registry
type Registry struct {
	holder *state.Holder
}

// NewRegistry creates a registry over the holder
func NewRegistry(holder *state.Holder) *Registry {
	return &Registry{holder: holder}
}

// Filter returns outfits of the given category, or all outfits for "all"
func (r *Registry) Filter(category string) ([]models.Outfit, error) {
	outfits := r.holder.Outfits()
	if category == "" || category == FilterAll {
		return outfits, nil
	}

	if !validCategory(models.OutfitCategory(category)) {
		return nil, fmt.Errorf("unknown outfit category %q", category)
	}

	filtered := make([]models.Outfit, 0, len(outfits))
	for _, o := range outfits {
		if string(o.Category) == category {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// AddLook adds a casual look with a default name and a random placeholder image
func (r *Registry) AddLook(ctx context.Context, lang Lang) (models.Outfit, error) {
	name, ok := newLookNames[lang]
	if !ok {
		name = newLookNames[LangPT]
	}

	return r.Add(ctx, models.Outfit{
		Name:     name,
		Category: models.OutfitCasual,
		Image:    PlaceholderImage(r.holder.NewID()),
	})
}

// Add prepends an outfit to the registry
func (r *Registry) Add(ctx context.Context, o models.Outfit) (models.Outfit, error) {
	added, err := r.holder.AddOutfit(ctx, o)
	if err != nil {
		return models.Outfit{}, fmt.Errorf("failed to add outfit: %w", err)
	}
	return added, nil
}

// PlaceholderImage returns a picsum image URL for the seed
func PlaceholderImage(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/400/600"
}

func validCategory(c models.OutfitCategory) bool {
	for _, known := range models.OutfitCategories() {
		if c == known {
			return true
		}
	}
	return false
}
