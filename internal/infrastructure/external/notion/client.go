package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/haiminhdev/meeting-relay/internal/domain/entities"
	"github.com/haiminhdev/meeting-relay/pkg/config"
)

const notionVersion = "2022-06-28"

// Property names of the target database. The database schema is owned by
// the Notion workspace, not by this service.
const (
	propEmail      = "Email"
	propStatus     = "Status"
	propTranscript = "Transcrição"
	propSummary    = "Resumo Completo"
)

// Client is a minimal client for the Notion API operations this service
// consumes: query a database by email, patch page properties.
type Client struct {
	token      string
	databaseID string
	baseURL    string
	client     *http.Client
}

// NewClient creates a Notion client from config
func NewClient(cfg *config.NotionConfig) *Client {
	return &Client{
		token:      cfg.Token,
		databaseID: cfg.DatabaseID,
		baseURL:    cfg.BaseURL,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

type queryRequest struct {
	Filter queryFilter `json:"filter"`
}

type queryFilter struct {
	Property string      `json:"property"`
	Email    emailEquals `json:"email"`
}

type emailEquals struct {
	Equals string `json:"equals"`
}

type queryResponse struct {
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

// FindRecordByEmail queries the configured database for pages whose Email
// property equals the given address. All matches are returned; cardinality
// is the caller's policy decision.
func (c *Client) FindRecordByEmail(ctx context.Context, email string) ([]entities.Record, error) {
	reqBody := queryRequest{
		Filter: queryFilter{
			Property: propEmail,
			Email:    emailEquals{Equals: email},
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, c.databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("notion query returned status %d: %s", resp.StatusCode, readBody(resp.Body))
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, err
	}

	records := make([]entities.Record, 0, len(qr.Results))
	for _, r := range qr.Results {
		records = append(records, entities.Record{PageID: r.ID, Email: email})
	}
	return records, nil
}

type updateRequest struct {
	Properties map[string]interface{} `json:"properties"`
}

// UpdateMeetingResult patches the page with the final status and the two
// rendered text fields. The two-call find-then-patch sequence has no
// transactional guarantee from Notion.
func (c *Client) UpdateMeetingResult(ctx context.Context, pageID, status, transcript, summary string) error {
	reqBody := updateRequest{
		Properties: map[string]interface{}{
			propStatus: map[string]interface{}{
				"status": map[string]string{"name": status},
			},
			propTranscript: map[string]interface{}{
				"rich_text": BuildRichText(transcript),
			},
			propSummary: map[string]interface{}{
				"rich_text": BuildRichText(summary),
			},
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/v1/pages/%s", c.baseURL, pageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notion update returned status %d: %s", resp.StatusCode, readBody(resp.Body))
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")
}

// readBody reads a bounded amount of the response body for error messages
func readBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}
	return string(b)
}
