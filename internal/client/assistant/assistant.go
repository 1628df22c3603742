// Package assistant wraps the Gemini API calls used by the planner:
// mood-board image generation and daily suggestions.
package assistant

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	DefaultImageModel   = "gemini-2.5-flash-image"
	DefaultPlannerModel = "gemini-3-flash-preview"
	DefaultTimeout      = 60 * time.Second
)

// ErrNoAPIKey is returned by New when no API key is configured
var ErrNoAPIKey = errors.New("gemini API key is not configured")

//go:generate moq -out generator_mock_test.go . contentGenerator

// contentGenerator is the part of genai.Models used by the client
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config holds assistant settings
type Config struct {
	APIKey       string
	ImageModel   string
	PlannerModel string
	// Timeout limits a single attempt. A failed attempt is retried once.
	Timeout time.Duration
}

// Suggestions is the planner answer for the day
type Suggestions struct {
	SelfCare string   `json:"selfCare"`
	Tips     []string `json:"tips"`
}

// Client calls the Gemini API
type Client struct {
	models  contentGenerator
	logger  *slog.Logger
	config  Config
	retries int
}

// New creates a Gemini-backed client
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return newClient(client.Models, cfg, logger), nil
}

func newClient(models contentGenerator, cfg Config, logger *slog.Logger) *Client {
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	if cfg.PlannerModel == "" {
		cfg.PlannerModel = DefaultPlannerModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		models:  models,
		logger:  logger,
		config:  cfg,
		retries: 1,
	}
}

// MoodBoardPrompt wraps the user prompt into the mood-board image request
func MoodBoardPrompt(prompt string) string {
	return fmt.Sprintf("A highly aesthetic, Pinterest-style mood board image representing: %s. High quality, cohesive colors, soft lighting.", prompt)
}

// GenerateImage returns a data URI with the generated image.
// The second result is false when nothing was generated; the reason is logged.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, bool) {
	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: "1:1",
		},
	}

	resp, err := c.generate(ctx, c.config.ImageModel, genai.Text(MoodBoardPrompt(prompt)), config)
	if err != nil {
		c.logger.Warn("image generation failed", "model", c.config.ImageModel, "error", err)
		return "", false
	}

	uri, ok := firstImage(resp)
	if !ok {
		c.logger.Warn("image generation returned no image", "model", c.config.ImageModel)
		return "", false
	}

	return uri, true
}

// PlannerSuggestions asks for three productivity tips and a self-care activity
func (c *Client) PlannerSuggestions(ctx context.Context, dayContext string) (*Suggestions, bool) {
	prompt := fmt.Sprintf("Context: %s. Provide 3 short, inspiring productivity tips and a suggested self-care activity for today. Format as JSON.", dayContext)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"tips": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"selfCare": {Type: genai.TypeString},
			},
			Required: []string{"tips", "selfCare"},
		},
	}

	resp, err := c.generate(ctx, c.config.PlannerModel, genai.Text(prompt), config)
	if err != nil {
		c.logger.Warn("planner suggestions failed", "model", c.config.PlannerModel, "error", err)
		return nil, false
	}

	if resp == nil {
		c.logger.Warn("planner suggestions are empty", "model", c.config.PlannerModel)
		return nil, false
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		c.logger.Warn("planner suggestions are empty", "model", c.config.PlannerModel)
		return nil, false
	}

	var s Suggestions
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		c.logger.Warn("planner suggestions are not valid JSON", "error", err)
		return nil, false
	}

	return &s, true
}

// generate выполняет запрос с таймаутом на попытку и одним повтором
func (c *Client) generate(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying generation", "model", model, "attempt", attempt+1, "error", lastErr)
		}

		resp, err := c.attempt(ctx, model, contents, config)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// Отмена вызывающей стороной не повторяется
		if ctx.Err() != nil {
			break
		}
	}

	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	return c.models.GenerateContent(ctx, model, contents, config)
}

// firstImage returns the first inline image of the response as a data URI
func firstImage(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil {
		return "", false
	}

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mime := part.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(part.InlineData.Data), true
		}
	}

	return "", false
}
