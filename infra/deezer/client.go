package deezer

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quiz-service/domain"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.deezer.com"

const DefaultAttempts = 5

var DefaultTopics = []string{
	"love", "romantic", "pop", "ballad", "acoustic",
	"rnb", "chill", "indie", "classic", "indonesia",
}

type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	Attempts          int
	Topics            []string
}

// Client picks random playable tracks from the Deezer search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	attempts   int
	topics     []string
	intN       func(n int) int
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRandom replaces the source of random indexes.
func WithRandom(intN func(n int) int) Option {
	return func(c *Client) { c.intN = intN }
}

func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Attempts <= 0 || cfg.Attempts > DefaultAttempts {
		cfg.Attempts = DefaultAttempts
	}
	if len(cfg.Topics) == 0 {
		cfg.Topics = DefaultTopics
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, cfg.Burst),
		attempts:   cfg.Attempts,
		topics:     cfg.Topics,
		intN:       rand.IntN,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Data  []searchTrack `json:"data"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type searchTrack struct {
	ID      json.Number `json:"id"`
	Title   string      `json:"title"`
	Preview string      `json:"preview"`
	Artist  struct {
		Name string `json:"name"`
	} `json:"artist"`
	Album struct {
		CoverMedium string `json:"cover_medium"`
	} `json:"album"`
}

// RandomTrack searches a random topic and returns a random candidate that has a
// preview. Each attempt draws a fresh topic; after the last attempt it gives up with
// ErrUpstreamUnavailable.
func (c *Client) RandomTrack(ctx context.Context) (*domain.Track, error) {
	for attempt := 1; attempt <= c.attempts; attempt++ {
		topic := c.topics[c.intN(len(c.topics))]

		candidates, err := c.search(ctx, topic)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, ctx.Err())
			}
			zap.L().Warn("deezer search failed",
				zap.String("topic", topic), zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		if len(candidates) == 0 {
			zap.L().Debug("deezer search returned no playable tracks",
				zap.String("topic", topic), zap.Int("attempt", attempt))
			continue
		}

		t := candidates[c.intN(len(candidates))]
		return &domain.Track{
			ID:         t.ID.String(),
			Title:      t.Title,
			Artist:     t.Artist.Name,
			PreviewURL: t.Preview,
			CoverURL:   t.Album.CoverMedium,
		}, nil
	}
	return nil, fmt.Errorf("%w: no playable track found after %d attempts", domain.ErrUpstreamUnavailable, c.attempts)
}

func (c *Client) search(ctx context.Context, query string) ([]searchTrack, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/search?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if body.Error != nil {
		return nil, fmt.Errorf("deezer error %s: %s", body.Error.Type, body.Error.Message)
	}

	playable := make([]searchTrack, 0, len(body.Data))
	for _, t := range body.Data {
		if t.Preview == "" || t.Title == "" {
			continue
		}
		playable = append(playable, t)
	}
	return playable, nil
}
