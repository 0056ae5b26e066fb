package openf1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"trackshift.klederson.com/internal/config"
	"trackshift.klederson.com/internal/log"
)

// Client fetches JSON resources from the OpenF1 REST API, going through the
// response cache when one is configured.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
}

// NewClient returns a client for baseURL. cache may be nil.
func NewClient(baseURL string, cache *Cache) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: config.HTTPTimeout},
		cache:   cache,
	}
}

func (c *Client) endpoint(resource string, query url.Values) string {
	u := fmt.Sprintf("%s/%s", c.baseURL, resource)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// get decodes the JSON array returned for resource into out.
func (c *Client) get(ctx context.Context, resource string, query url.Values, out any) error {
	u := c.endpoint(resource, query)

	body, err := c.fetch(ctx, u)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decoding %s", resource)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, u string) ([]byte, error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(u)
		if err != nil {
			log.Logger.Warn("cache read failed", zap.String("url", u), zap.Error(err))
		}
		if ok {
			log.Logger.Debug("cache hit", zap.String("url", u))
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", u)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", u)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("GET %s: %s", u, resp.Status)
	}
	log.Logger.Debug("fetched", zap.String("url", u), zap.Int("bytes", len(body)))

	if c.cache != nil {
		if err := c.cache.Put(u, body); err != nil {
			log.Logger.Warn("cache write failed", zap.String("url", u), zap.Error(err))
		}
	}
	return body, nil
}
