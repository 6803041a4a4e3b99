// File: internal/openlibrary/client.go
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL 為 Open Library 公開 API 位址
const DefaultBaseURL = "https://openlibrary.org"

// Doc 為 search.json 回應中的一筆書目
type Doc struct {
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	ISBN             []string `json:"isbn"`
	Subject          []string `json:"subject"`
	FirstPublishYear *int     `json:"first_publish_year"`
}

// SearchResult 為 search.json 的回應內容
type SearchResult struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

// Client 呼叫 Open Library 搜尋 API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 建立 Open Library 客戶端；baseURL 為空時使用 DefaultBaseURL
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Search 以書名或作者查詢 Open Library
func (c *Client) Search(ctx context.Context, query, author string, limit int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	if author != "" {
		params.Set("author", author)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search.json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("openlibrary: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openlibrary: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openlibrary: unexpected status %d", resp.StatusCode)
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("openlibrary: %w", err)
	}
	return &result, nil
}
