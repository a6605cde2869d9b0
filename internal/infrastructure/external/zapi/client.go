package zapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/haiminhdev/meeting-relay/pkg/config"
)

// Client is a minimal Z-API client for sending WhatsApp text messages
type Client struct {
	instance    string
	token       string
	clientToken string
	baseURL     string
	client      *http.Client
}

// NewClient creates a Z-API client from config
func NewClient(cfg *config.ZAPIConfig) *Client {
	return &Client{
		instance:    cfg.Instance,
		token:       cfg.Token,
		clientToken: cfg.ClientToken,
		baseURL:     cfg.BaseURL,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

type sendTextRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendText sends one text message to one phone. Each call is independent;
// the caller decides what a failure means.
func (c *Client) SendText(ctx context.Context, phone, message string) error {
	b, err := json.Marshal(sendTextRequest{Phone: phone, Message: message})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/instances/%s/token/%s/send-text", c.baseURL, c.instance, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Client-Token", c.clientToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("z-api send-text returned status %d", resp.StatusCode)
	}
	return nil
}
