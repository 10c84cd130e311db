// Package discord implements the ChatClient secondary port against the
// Discord REST API (v10). Gateway events are out of scope; the sync
// engine only polls and edits over REST.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/example/bridgebot/internal/ports/secondary"
)

const defaultBaseURL = "https://discord.com/api/v10"

// Client is a thin Discord REST client authenticating as a bot.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a client using the given bot token.
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

type threadMetadataPayload struct {
	Locked   bool `json:"locked"`
	Archived bool `json:"archived"`
}

type channelPayload struct {
	ID             string                 `json:"id"`
	ParentID       string                 `json:"parent_id"`
	Name           string                 `json:"name"`
	ThreadMetadata *threadMetadataPayload `json:"thread_metadata"`
}

type activeThreadsPayload struct {
	Threads []channelPayload `json:"threads"`
}

type messagePayload struct {
	Author struct {
		Bot bool `json:"bot"`
	} `json:"author"`
	Content string `json:"content"`
	Embeds  []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"embeds"`
}

// ListActiveThreads returns all active threads in a guild.
func (c *Client) ListActiveThreads(ctx context.Context, guildID uint64) ([]secondary.ThreadRecord, error) {
	endpoint := fmt.Sprintf("%s/guilds/%d/threads/active", c.baseURL, guildID)

	var payload activeThreadsPayload
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &payload); err != nil {
		return nil, fmt.Errorf("list active threads in guild %d: %w", guildID, err)
	}

	records := make([]secondary.ThreadRecord, 0, len(payload.Threads))
	for _, thread := range payload.Threads {
		record, err := channelToRecord(thread)
		if err != nil {
			// A malformed id from the API excludes that thread only.
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// GetThread fetches a single thread channel.
func (c *Client) GetThread(ctx context.Context, threadID uint64) (*secondary.ThreadRecord, error) {
	endpoint := fmt.Sprintf("%s/channels/%d", c.baseURL, threadID)

	var payload channelPayload
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &payload); err != nil {
		return nil, err
	}
	record, err := channelToRecord(payload)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// EditThread updates thread metadata. Nil patch fields are omitted from
// the request and left unchanged.
func (c *Client) EditThread(ctx context.Context, threadID uint64, patch secondary.ThreadPatch) error {
	body := map[string]interface{}{}
	if patch.Locked != nil {
		body["locked"] = *patch.Locked
	}
	if patch.Archived != nil {
		body["archived"] = *patch.Archived
	}
	if len(body) == 0 {
		return nil
	}

	endpoint := fmt.Sprintf("%s/channels/%d", c.baseURL, threadID)
	if err := c.doJSON(ctx, http.MethodPatch, endpoint, body, nil); err != nil {
		return fmt.Errorf("edit thread %d: %w", threadID, err)
	}
	return nil
}

// SendMessage posts a plain-text message into a thread.
func (c *Client) SendMessage(ctx context.Context, threadID uint64, content string) error {
	endpoint := fmt.Sprintf("%s/channels/%d/messages", c.baseURL, threadID)
	body := map[string]interface{}{"content": content}
	if err := c.doJSON(ctx, http.MethodPost, endpoint, body, nil); err != nil {
		return fmt.Errorf("send message to thread %d: %w", threadID, err)
	}
	return nil
}

// ListMessages returns up to limit recent messages, newest first.
func (c *Client) ListMessages(ctx context.Context, threadID uint64, limit int) ([]secondary.MessageRecord, error) {
	endpoint := fmt.Sprintf("%s/channels/%d/messages?limit=%d", c.baseURL, threadID, limit)

	var payload []messagePayload
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &payload); err != nil {
		return nil, fmt.Errorf("list messages in thread %d: %w", threadID, err)
	}

	records := make([]secondary.MessageRecord, len(payload))
	for i, message := range payload {
		record := secondary.MessageRecord{
			AuthorIsBot: message.Author.Bot,
			Content:     message.Content,
			Embeds:      make([]secondary.EmbedRecord, len(message.Embeds)),
		}
		for j, embed := range message.Embeds {
			record.Embeds[j] = secondary.EmbedRecord{
				Title:       embed.Title,
				Description: embed.Description,
			}
		}
		records[i] = record
	}
	return records, nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return secondary.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("discord api status %d: %s", resp.StatusCode, string(responseBody))
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func channelToRecord(payload channelPayload) (secondary.ThreadRecord, error) {
	id, err := strconv.ParseUint(payload.ID, 10, 64)
	if err != nil {
		return secondary.ThreadRecord{}, fmt.Errorf("malformed channel id %q: %w", payload.ID, err)
	}
	record := secondary.ThreadRecord{ID: id, Name: payload.Name}
	if payload.ParentID != "" {
		record.ParentID, err = strconv.ParseUint(payload.ParentID, 10, 64)
		if err != nil {
			return secondary.ThreadRecord{}, fmt.Errorf("malformed parent id %q: %w", payload.ParentID, err)
		}
	}
	if payload.ThreadMetadata != nil {
		record.Locked = payload.ThreadMetadata.Locked
		record.Archived = payload.ThreadMetadata.Archived
	}
	return record, nil
}

// Ensure Client implements the interface
var _ secondary.ChatClient = (*Client)(nil)
