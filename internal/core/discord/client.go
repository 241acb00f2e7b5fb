package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

)

const (
	// DefaultBaseURL is the versioned REST root.
	DefaultBaseURL = "https://discord.com/api/v9"
	// DefaultFetchLimit is used when Fetch is called with limit <= 0.
	DefaultFetchLimit = 10
	// MaxAttachments is the most files one message may carry.
	MaxAttachments = 10

	maxResponseSize = 8 << 20
)

// Config holds configuration for creating a Client.
type Config struct {
	// Token is sent verbatim in the Authorization header. Bot tokens must
	// already carry their "Bot " prefix.
	Token string
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger receives request and failure logs. The zero value discards.
	Logger zerolog.Logger
}

// Client talks to a Discord channel and tracks the newest message it has
// returned.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        zerolog.Logger

	// cursor is the highest message ID returned by Fetch. Empty means absent.
	cursor      string
	cursorValue uint64

	open fileOpener
}

// New creates a Client. It fails with ErrMissingToken when cfg.Token is
// empty.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrMissingToken
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("discord: invalid base URL %q: %w", baseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      cfg.Token,
		httpClient: httpClient,
		log:        cfg.Logger,
		open:       openOSFile,
	}, nil
}

// Cursor returns the highest message ID returned so far and whether one is
// set.
func (c *Client) Cursor() (string, bool) {
	return c.cursor, c.cursor != ""
}

// Reset clears the cursor so the next Fetch returns the most recent messages
// regardless of what was returned before.
func (c *Client) Reset() {
	c.cursor = ""
	c.cursorValue = 0
}

// Fetch returns the non-bot messages in channelID that are newer than the
// cursor, oldest first. It requests at most limit messages; limit <= 0 uses
// DefaultFetchLimit.
//
// Every message newer than the cursor advances it, including bot messages
// that are not returned. On error the cursor is left untouched.
func (c *Client) Fetch(ctx context.Context, channelID string, limit int) ([]Message, error) {
	if _, err := ParseSnowflake(channelID); err != nil {
		return nil, fmt.Errorf("channel id: %w", err)
	}
	if limit <= 0 {
		limit = DefaultFetchLimit
	}

	query := url.Values{"limit": {strconv.Itoa(limit)}}
	body, err := c.do(ctx, http.MethodGet, messagesPath(channelID), "", nil, query)
	if err != nil {
		return nil, err
	}

	var raw []wireMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("discord: decode messages: %w", err)
	}

	// The API lists newest first.
	slices.Reverse(raw)

	ids := make([]uint64, len(raw))
	for i, m := range raw {
		id, err := ParseSnowflake(m.ID)
		if err != nil {
			return nil, fmt.Errorf("message id: %w", err)
		}
		ids[i] = id
	}

	var (
		messages []Message
		skipped  int
		bots     int
	)

	for i, m := range raw {
		if c.cursor != "" && ids[i] <= c.cursorValue {
			skipped++
			continue
		}

		c.cursor = m.ID
		c.cursorValue = ids[i]

		if m.Author.Bot {
			bots++
			continue
		}

		messages = append(messages, m.toMessage())
	}

	c.log.Debug().
		Str("channel_id", channelID).
		Int("received", len(raw)).
		Int("returned", len(messages)).
		Int("skipped", skipped).
		Int("bots", bots).
		Str("cursor", c.cursor).
		Msg("fetched messages")

	return messages, nil
}

// Send posts a message to channelID. Without attachments the body is JSON;
// with attachments it is multipart with a payload_json part and one part per
// file. More than MaxAttachments paths fail with ErrTooManyAttachments
// before any file is opened.
func (c *Client) Send(ctx context.Context, channelID string, opts SendOptions) (*SentMessage, error) {
	if _, err := ParseSnowflake(channelID); err != nil {
		return nil, fmt.Errorf("channel id: %w", err)
	}
	if len(opts.Attachments) > MaxAttachments {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyAttachments, len(opts.Attachments))
	}

	payload := createMessage{
		Content:      opts.Content,
		Nonce:        opts.Nonce,
		EnforceNonce: opts.Nonce != "",
	}

	if len(opts.Attachments) == 0 {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("discord: encode message: %w", err)
		}
		body, err := c.do(ctx, http.MethodPost, messagesPath(channelID), "application/json", bytes.NewReader(encoded), nil)
		if err != nil {
			return nil, err
		}
		return decodeSent(body)
	}

	sent, err := c.sendMultipart(ctx, channelID, payload, opts.Attachments)
	if err != nil {
		c.log.Error().
			Err(err).
			Str("channel_id", channelID).
			Int("attachments", len(opts.Attachments)).
			Msg("send with attachments failed")
		return nil, err
	}
	return sent, nil
}

func decodeSent(body []byte) (*SentMessage, error) {
	var sent SentMessage
	if err := json.Unmarshal(body, &sent); err != nil {
		return nil, fmt.Errorf("discord: decode created message: %w", err)
	}
	return &sent, nil
}

func messagesPath(channelID string) string {
	return "/channels/" + url.PathEscape(channelID) + "/messages"
}

// do performs a request and returns the body of a 2xx response. Any other
// status is returned as *APIError.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("discord: create request: %w", err)
	}

	request.Header.Set("Authorization", c.token)
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("discord request")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("discord: %s %s: %w", method, path, err)
	}
	defer response.Body.Close() //nolint:errcheck

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("discord: read response: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	apiErr := &APIError{}
	if jsonErr := json.Unmarshal(responseBody, apiErr); jsonErr != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(responseBody))
	}
	apiErr.StatusCode = response.StatusCode
	apiErr.Method = method
	apiErr.Path = path

	return nil, apiErr
}
