package notion

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

	"osms-portal/internal/domain/entities"
	"osms-portal/internal/usecase/interfaces"
)

const (
	defaultBaseURL = "https://api.notion.com"
	notionVersion  = "2022-06-28"
	queryPageSize  = 100
)

var (
	ErrMissingNotionAPIKey      = errors.New("missing NOTION_API_KEY")
	ErrMissingRfqDatabaseID     = errors.New("missing NOTION_RFQ_DATABASE_ID")
	errNdaDatabaseNotConfigured = errors.New("nda database not configured")
)

// Client talks to the Notion API, the external registry mirroring RFQ and
// NDA data. The RFQ database is also the system of record for vendor unit
// prices, which staff fill in against the mirrored pages.

type Client struct {
	baseURL       string
	apiKey        string
	rfqDatabaseID string
	ndaDatabaseID string
	httpClient    *http.Client
}

var _ interfaces.IRegistryGateway = (*Client)(nil)

func NewClient(apiKey, rfqDatabaseID, ndaDatabaseID string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingNotionAPIKey
	}
	if strings.TrimSpace(rfqDatabaseID) == "" {
		return nil, ErrMissingRfqDatabaseID
	}
	return &Client{
		baseURL:       defaultBaseURL,
		apiKey:        apiKey,
		rfqDatabaseID: rfqDatabaseID,
		ndaDatabaseID: ndaDatabaseID,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// NewClientFromEnv reads NOTION_API_KEY, NOTION_RFQ_DATABASE_ID and the
// optional NOTION_NDA_DATABASE_ID.
func NewClientFromEnv() (*Client, error) {
	return NewClient(
		os.Getenv("NOTION_API_KEY"),
		os.Getenv("NOTION_RFQ_DATABASE_ID"),
		os.Getenv("NOTION_NDA_DATABASE_ID"),
	)
}

// WithBaseURL overrides the API endpoint (tests).
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

type queryResponse struct {
	Results    []page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

type page struct {
	Properties map[string]property `json:"properties"`
}

type property struct {
	Type     string     `json:"type"`
	Number   *float64   `json:"number"`
	RichText []richText `json:"rich_text"`
	Title    []richText `json:"title"`
	Email    *string    `json:"email"`
}

type richText struct {
	PlainText string `json:"plain_text"`
}

func (p property) plainText() string {
	parts := p.RichText
	if p.Type == "title" {
		parts = p.Title
	}
	var b strings.Builder
	for _, rt := range parts {
		b.WriteString(rt.PlainText)
	}
	return b.String()
}

// FetchVendorPrices pulls the complete rfq-id -> vendor unit price mapping
// from the RFQ database, following Notion's cursor pagination until
// has_more is false. Pages without an RFQ ID or a vendor price are skipped.
func (c *Client) FetchVendorPrices(ctx context.Context) (map[string]float64, error) {
	prices := make(map[string]float64)

	cursor := ""
	for {
		body := queryRequest{StartCursor: cursor, PageSize: queryPageSize}
		var parsed queryResponse
		path := fmt.Sprintf("/v1/databases/%s/query", c.rfqDatabaseID)
		if err := c.post(ctx, path, body, &parsed); err != nil {
			return nil, fmt.Errorf("querying rfq database: %w", err)
		}

		for _, pg := range parsed.Results {
			id := strings.TrimSpace(pg.Properties["RFQ ID"].plainText())
			priceProp, ok := pg.Properties["Vendor unit price"]
			if id == "" || !ok || priceProp.Number == nil {
				continue
			}
			prices[id] = *priceProp.Number
		}

		if !parsed.HasMore || parsed.NextCursor == "" {
			break
		}
		cursor = parsed.NextCursor
	}
	return prices, nil
}

// PublishRfq mirrors a newly submitted RFQ as a page in the RFQ database.
func (c *Client) PublishRfq(ctx context.Context, r entities.Rfq) error {
	props := map[string]any{
		"Name":   titleProp(orDefault(r.ProjectName, "Untitled microfluidics RFQ")),
		"RFQ ID": richTextProp(r.ID),
		"Contact email": map[string]any{
			"email": r.ContactEmail,
		},
		"Status": selectProp(r.Status.Label()),
	}
	if r.Company != "" {
		props["Company"] = richTextProp(r.Company)
	}
	if r.ContactName != "" {
		props["Contact name"] = richTextProp(r.ContactName)
	}
	if r.Country != "" {
		props["Country"] = richTextProp(r.Country)
	}
	if r.Quantity != entities.QuantityUnknown {
		props["Quantity"] = map[string]any{"number": r.Quantity}
	}
	if r.Material != "" {
		props["Material"] = richTextProp(r.Material)
	}
	if r.Stage != "" {
		props["Stage"] = richTextProp(r.Stage)
	}
	if r.Notes != "" {
		props["Notes"] = richTextProp(r.Notes)
	}

	return c.createPage(ctx, c.rfqDatabaseID, props)
}

// PublishNda mirrors an NDA acceptance into the NDA database. A missing
// database id is a configuration gap, not a hard failure; it is logged and
// reported as an error for the dispatch log only.
func (c *Client) PublishNda(ctx context.Context, n entities.Nda) error {
	if c.ndaDatabaseID == "" {
		log.Printf("[registry][notion] NOTION_NDA_DATABASE_ID not set, skipping nda publish")
		return errNdaDatabaseNotConfigured
	}

	props := map[string]any{
		"Name": titleProp(n.Name),
		"Email": map[string]any{
			"email": n.Email,
		},
		"Company": richTextProp(n.Company),
		"Version": richTextProp(n.AcceptedVersion),
		"Source":  richTextProp("OSM Portal"),
	}
	if n.SourceAddress != "" {
		props["IP"] = richTextProp(n.SourceAddress)
	}

	return c.createPage(ctx, c.ndaDatabaseID, props)
}

func (c *Client) createPage(ctx context.Context, databaseID string, properties map[string]any) error {
	body := map[string]any{
		"parent":     map[string]any{"database_id": databaseID},
		"properties": properties,
	}
	if err := c.post(ctx, "/v1/pages", body, nil); err != nil {
		return fmt.Errorf("creating page: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notion status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func titleProp(content string) map[string]any {
	return map[string]any{
		"title": []map[string]any{
			{"text": map[string]any{"content": content}},
		},
	}
}

func richTextProp(content string) map[string]any {
	return map[string]any{
		"rich_text": []map[string]any{
			{"text": map[string]any{"content": content}},
		},
	}
}

func selectProp(name string) map[string]any {
	return map[string]any{
		"select": map[string]any{"name": name},
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
