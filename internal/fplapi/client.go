package fplapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	defaultBaseURL   = "https://fantasy.premierleague.com/api"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

// Provider is the upstream data source consumed by the query layer.
// Implementations fetch a fresh snapshot per call; nothing is cached
// here, so concurrent callers are naturally isolated.
type Provider interface {
	BootstrapStatic(ctx context.Context) (*Bootstrap, error)
	Players(ctx context.Context) ([]Element, error)
	Teams(ctx context.Context) ([]Team, error)
	Gameweeks(ctx context.Context) ([]Event, error)
	Fixtures(ctx context.Context) ([]Fixture, error)
	PlayerSummary(ctx context.Context, playerID int) (*PlayerSummary, error)
}

// Client talks to the public FPL API over HTTP.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string

	log *zap.Logger
}

// NewClient builds a Client with sane defaults. Pass zap.NewNop()
// when no logging is wanted.
func NewClient(log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		HTTP:      &http.Client{Timeout: 20 * time.Second},
		BaseURL:   defaultBaseURL,
		UserAgent: defaultUserAgent,
		log:       log.Named("fplapi"),
	}
}

// get fetches endpoint (like "fixtures/") and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	url := c.BaseURL + "/" + endpoint
	c.log.Debug("fetching", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", endpoint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s", endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Newf("GET %s failed: %d", endpoint, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "parse %s", endpoint)
	}
	return nil
}

// BootstrapStatic fetches the season-wide snapshot.
func (c *Client) BootstrapStatic(ctx context.Context) (*Bootstrap, error) {
	var bs Bootstrap
	if err := c.get(ctx, "bootstrap-static/", &bs); err != nil {
		return nil, err
	}
	return &bs, nil
}

// Players returns the raw element list from bootstrap-static.
func (c *Client) Players(ctx context.Context) ([]Element, error) {
	bs, err := c.BootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	return bs.Elements, nil
}

// Teams returns the raw team list from bootstrap-static.
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	bs, err := c.BootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	return bs.Teams, nil
}

// Gameweeks returns the event list from bootstrap-static.
func (c *Client) Gameweeks(ctx context.Context) ([]Event, error) {
	bs, err := c.BootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	return bs.Events, nil
}

// Fixtures fetches all fixtures for the season.
func (c *Client) Fixtures(ctx context.Context) ([]Fixture, error) {
	var fixtures []Fixture
	if err := c.get(ctx, "fixtures/", &fixtures); err != nil {
		return nil, err
	}
	return fixtures, nil
}

// PlayerSummary fetches per-gameweek history and upcoming fixtures
// for one player.
func (c *Client) PlayerSummary(ctx context.Context, playerID int) (*PlayerSummary, error) {
	var summary PlayerSummary
	if err := c.get(ctx, "element-summary/"+strconv.Itoa(playerID)+"/", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
