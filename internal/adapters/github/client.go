// Package github implements the TrackerClient secondary port against the
// GitHub REST API. Only the two read endpoints reconciliation needs are
// covered; the bridge never mutates tracker state.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/example/bridgebot/internal/ports/secondary"
)

const defaultBaseURL = "https://api.github.com"

// Client is a thin GitHub REST client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a client authenticating with a personal access token.
// An empty token is allowed for public repositories (rate limits apply).
func NewClient(token string) *Client {
	return NewClientWithBaseURL(token, defaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom API base URL.
func NewClientWithBaseURL(token, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		token:      token,
	}
}

type issuePayload struct {
	Number  int64  `json:"number"`
	Title   string `json:"title"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
}

type searchPayload struct {
	Items []issuePayload `json:"items"`
}

// SearchIssues returns issues in owner/repo with the given lifecycle state.
func (c *Client) SearchIssues(ctx context.Context, owner, repo, state string) ([]secondary.IssueRecord, error) {
	query := fmt.Sprintf("repo:%s/%s is:issue is:%s in:title", owner, repo, state)
	endpoint := fmt.Sprintf("%s/search/issues?q=%s&per_page=100", c.baseURL, url.QueryEscape(query))

	var payload searchPayload
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("search issues %s/%s: %w", owner, repo, err)
	}

	records := make([]secondary.IssueRecord, len(payload.Items))
	for i, item := range payload.Items {
		records[i] = issueToRecord(item)
	}
	return records, nil
}

// GetIssue fetches the current state of a single issue.
func (c *Client) GetIssue(ctx context.Context, owner, repo string, number int64) (*secondary.IssueRecord, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/issues/%d", c.baseURL, owner, repo, number)

	var payload issuePayload
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	record := issueToRecord(payload)
	return &record, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return secondary.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("github api status %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func issueToRecord(p issuePayload) secondary.IssueRecord {
	return secondary.IssueRecord{
		Number: p.Number,
		Title:  p.Title,
		State:  p.State,
		URL:    p.HTMLURL,
	}
}

// Ensure Client implements the interface
var _ secondary.TrackerClient = (*Client)(nil)
