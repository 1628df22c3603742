package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/iudanet/lumina/internal/client/state"
	"github.com/iudanet/lumina/internal/models"
)

// VisionCategory is the label of generated vision board items
const VisionCategory = "manifestation"

var (
	// ErrEmptyPrompt is returned by Generate for a blank prompt
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrGenerationFailed is returned when the generator produced nothing.
	// The prompt is kept so the call can be retried.
	ErrGenerationFailed = errors.New("image generation failed")
)

//go:generate moq -out generator_mock.go . ImageGenerator

// ImageGenerator produces an image reference for a prompt.
// The second result is false when nothing was generated.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, bool)
}

// VisionBoard generates mood-board images and keeps them in the vision collection
type VisionBoard struct {
	holder    *state.Holder
	generator ImageGenerator

	mu     sync.Mutex
	prompt string
}

// NewVisionBoard creates a vision board
func NewVisionBoard(holder *state.Holder, generator ImageGenerator) *VisionBoard {
	return &VisionBoard{
		holder:    holder,
		generator: generator,
	}
}

// SetPrompt sets the pending prompt
func (v *VisionBoard) SetPrompt(prompt string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.prompt = prompt
}

// Prompt returns the pending prompt
func (v *VisionBoard) Prompt() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.prompt
}

// Items returns the vision board, newest first
func (v *VisionBoard) Items() []models.VisionItem {
	return v.holder.VisionItems()
}

// Recent returns up to n newest items
func (v *VisionBoard) Recent(n int) []models.VisionItem {
	items := v.holder.VisionItems()
	if n >= 0 && len(items) > n {
		items = items[:n]
	}
	return items
}

// Generate creates an image for the pending prompt and prepends it to the board.
// On success the prompt is cleared. On failure nothing is stored and the prompt is kept.
func (v *VisionBoard) Generate(ctx context.Context) (models.VisionItem, error) {
	prompt := strings.TrimSpace(v.Prompt())
	if prompt == "" {
		return models.VisionItem{}, ErrEmptyPrompt
	}

	imageURL, ok := v.generator.GenerateImage(ctx, prompt)
	if !ok || imageURL == "" {
		return models.VisionItem{}, ErrGenerationFailed
	}

	item, err := v.holder.AddVisionItem(ctx, models.VisionItem{
		ImageURL: imageURL,
		Prompt:   prompt,
		Category: VisionCategory,
	})
	if err != nil {
		return models.VisionItem{}, fmt.Errorf("failed to add vision item: %w", err)
	}

	v.SetPrompt("")
	return item, nil
}
