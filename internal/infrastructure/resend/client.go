package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

// Client sends transactional email through the Resend HTTP API.

type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

// NewClient creates a Resend client. from is the sender identity, e.g.
// "One Stop Microfluidics Shop <no-reply@example.com>".
func NewClient(apiKey, from string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingResendAPIKey
	}
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// NewClientFromEnv reads RESEND_API_KEY and RESEND_FROM.
func NewClientFromEnv() (*Client, error) {
	from := getenvDefault("RESEND_FROM", "One Stop Microfluidics Shop <no-reply@one-stop-microfluidics-shop.com>")
	return NewClient(os.Getenv("RESEND_API_KEY"), from)
}

// WithBaseURL overrides the API endpoint (tests).
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// SendEmail posts a plain-text email to POST /emails.
func (c *Client) SendEmail(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("encoding email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resend status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var parsed sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil && parsed.ID != "" {
		log.Printf("[email][resend] sent id=%s to=%s", parsed.ID, to)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
