package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cheaguirre/nexuscards/internal/logging"
)

// listResponse is the paged index returned by the catalog API.
type listResponse struct {
	Results []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

// detailResponse is the per-item payload. Only the fields the catalog
// needs are decoded.
type detailResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

// Client fetches the catalog and caches it in memory. A catalog is loaded
// once and reused until Reload is called (the administrator's
// catalog-reload operation).
type Client struct {
	baseURL  string
	pageSize int
	http     *http.Client
	log      logging.Logger

	mu    sync.Mutex
	items []Item
}

// NewClient returns a Client for the catalog API at baseURL requesting
// pageSize items per load.
func NewClient(baseURL string, pageSize int, log logging.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		pageSize: pageSize,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      log,
	}
}

// Items returns the cached catalog, loading it on first use.
func (c *Client) Items(ctx context.Context) ([]Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) > 0 {
		return c.items, nil
	}
	return c.loadLocked(ctx)
}

// Reload discards the cache and fetches the catalog again.
func (c *Client) Reload(ctx context.Context) ([]Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	return c.loadLocked(ctx)
}

func (c *Client) loadLocked(ctx context.Context) ([]Item, error) {
	c.log.Info(ctx, "loading catalog", "url", c.baseURL, "limit", c.pageSize)

	var list listResponse
	listURL := fmt.Sprintf("%s/pokemon?limit=%d&offset=0", c.baseURL, c.pageSize)
	if err := c.getJSON(ctx, listURL, &list); err != nil {
		return nil, fmt.Errorf("failed to fetch catalog index: %w", err)
	}

	items := make([]Item, 0, len(list.Results))
	for _, r := range list.Results {
		var detail detailResponse
		if err := c.getJSON(ctx, r.URL, &detail); err != nil {
			return nil, fmt.Errorf("failed to fetch item %q: %w", r.Name, err)
		}
		items = append(items, mapItem(&detail))
	}

	c.items = items
	c.log.Info(ctx, "catalog loaded", "items", len(items))
	return items, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %s: %s", resp.Status, string(b))
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// mapItem converts an API payload to a catalog Item. The rarity tier comes
// from the base attack stat; a missing attack stat counts as 50.
func mapItem(d *detailResponse) Item {
	types := make([]string, 0, len(d.Types))
	for _, t := range d.Types {
		types = append(types, t.Type.Name)
	}
	joined := strings.Join(types, ", ")

	attack := 50
	for _, s := range d.Stats {
		if s.Stat.Name == "attack" {
			attack = s.BaseStat
			break
		}
	}

	image := d.Sprites.Other.OfficialArtwork.FrontDefault
	if image == "" {
		image = d.Sprites.FrontDefault
	}

	return Item{
		ID:       d.ID,
		Name:     d.Name,
		Types:    joined,
		Rarity:   RarityFromBaseStat(attack),
		ImageURL: image,
		Text:     fmt.Sprintf("%s-type card with base attack %d.", joined, attack),
	}
}
