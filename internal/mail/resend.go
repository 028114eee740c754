package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultEndpoint is the Resend send-email API.
const DefaultEndpoint = "https://api.resend.com/emails"

// ErrNoAPIKey is returned by Send when no provider key is configured.
var ErrNoAPIKey = errors.New("mail api key is not set")

// maxErrorBody caps how much of a failed response is kept in the error.
const maxErrorBody = 2 << 10

// ResendClient delivers messages through the Resend HTTP API.
type ResendClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewResendClient creates a client. An empty apiKey is accepted here and
// reported on the first Send.
func NewResendClient(endpoint, apiKey string, timeout time.Duration) *ResendClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ResendClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

// Send posts msg to the provider. Any status >= 300 is an error.
func (c *ResendClient) Send(ctx context.Context, msg Message) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("message %q has no recipients", msg.Subject)
	}

	// Attachment content is []byte, which encoding/json writes as base64.
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("mail provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
