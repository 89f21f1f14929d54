package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/promo-admin/model"
)

// Client fetches the raw product feed.
type Client interface {
	Fetch(ctx context.Context) ([]byte, error)
}

type httpClient struct {
	url  string
	http *http.Client
}

func NewClient(url string, timeout time.Duration) Client {
	return &httpClient{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

// maxFeedBytes caps the feed body read into memory.
const maxFeedBytes = 8 << 20

// Fetch returns the raw JSON body after checking it decodes as a post list.
func (c *httpClient) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	if _, err := Decode(body); err != nil {
		return nil, err
	}
	return body, nil
}

// Decode parses a feed body into posts.
func Decode(body []byte) ([]model.FeedPost, error) {
	var posts []model.FeedPost
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("malformed feed: %w", err)
	}
	return posts, nil
}
