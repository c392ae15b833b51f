// Package tokage is a client for the Jikan REST API, exposing
// MyAnimeList anime, manga, character and person entries as typed Go
// objects. Fetching lives here; hydration lives in the entity package
// and can be used on its own with payloads obtained elsewhere.
package tokage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tokage-dev/tokage/entity"
	"github.com/tokage-dev/tokage/internal/httpclient"
)

// Client talks to a Jikan-compatible API server and hydrates its
// responses. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *httpclient.Client
	logger  *slog.Logger
}

// NewClient creates an API client. A nil cfg uses DefaultConfig; a nil
// logger uses slog.Default.
func NewClient(cfg *Config, logger *slog.Logger) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	hc := httpclient.New(httpclient.Config{
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		UserAgent:  cfg.UserAgent,
		Debug:      cfg.Debug,
		Logger:     logger,
	})

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    hc,
		logger:  logger,
	}
}

// GetAnime fetches and hydrates the anime with the given MAL ID.
func (c *Client) GetAnime(ctx context.Context, id int) (*entity.Anime, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/anime/%d", id))
	if err != nil {
		return nil, err
	}
	return entity.NewAnime(id, raw)
}

// GetManga fetches and hydrates the manga with the given MAL ID.
func (c *Client) GetManga(ctx context.Context, id int) (*entity.Manga, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/manga/%d", id))
	if err != nil {
		return nil, err
	}
	return entity.NewManga(id, raw)
}

// GetCharacter fetches and hydrates the character with the given MAL ID.
func (c *Client) GetCharacter(ctx context.Context, id int) (*entity.Character, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/character/%d", id))
	if err != nil {
		return nil, err
	}
	return entity.NewCharacter(id, raw)
}

// GetPerson fetches and hydrates the person with the given MAL ID.
func (c *Client) GetPerson(ctx context.Context, id int) (*entity.Person, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/person/%d", id))
	if err != nil {
		return nil, err
	}
	return entity.NewPerson(id, raw)
}

// get performs a GET request and decodes the body into a raw payload.
func (c *Client) get(ctx context.Context, endpoint string) (entity.Raw, error) {
	resp, err := c.http.Get(ctx, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("request failed for %s: %w", endpoint, err)
	}

	var raw entity.Raw
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse response for %s: %w", endpoint, err)
	}

	// Jikan reports some failures inside a 200 body.
	if apiErr, ok := raw["error"].(string); ok && apiErr != "" {
		return nil, fmt.Errorf("API error for %s: %s", endpoint, apiErr)
	}

	return raw, nil
}
