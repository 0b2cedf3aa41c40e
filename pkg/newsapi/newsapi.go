// Package newsapi is a minimal client for the NewsAPI "everything" endpoint.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://newsapi.org/v2"
	DefaultTimeout = 10 * time.Second
)

// Config holds NewsAPI client configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Article is a cleaned news article.
type Article struct {
	Headline  string    `json:"headline"`
	RawText   string    `json:"raw_text"`
	Published time.Time `json:"published"`
	URL       string    `json:"url,omitempty"`
}

type everythingResponse struct {
	Status   string       `json:"status"`
	Code     string       `json:"code,omitempty"`
	Message  string       `json:"message,omitempty"`
	Articles []rawArticle `json:"articles"`
}

type rawArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// Client talks to NewsAPI.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a client. An empty APIKey yields a client whose Enabled reports false.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{apiKey: cfg.APIKey, baseURL: cfg.BaseURL, client: cfg.HTTPClient}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Everything searches articles sorted by publish date, newest first.
func (c *Client) Everything(ctx context.Context, query, language string, pageSize int) ([]Article, error) {
	if !c.Enabled() {
		return nil, nil
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("sortBy", "publishedAt")
	q.Set("apiKey", c.apiKey)
	if language != "" {
		q.Set("language", language)
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/everything?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("newsapi: failed to read response: %w", err)
	}

	var parsed everythingResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("newsapi: status %d: failed to parse response: %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || parsed.Status == "error" {
		return nil, fmt.Errorf("newsapi: status %d: %s", resp.StatusCode, parsed.Message)
	}

	now := time.Now().UTC()
	articles := make([]Article, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		text := a.Content
		if text == "" {
			text = a.Description
		}
		published := now
		if t, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
			published = t.UTC()
		}
		articles = append(articles, Article{
			Headline:  a.Title,
			RawText:   text,
			Published: published,
			URL:       a.URL,
		})
	}
	return articles, nil
}
