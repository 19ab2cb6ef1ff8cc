package notifications

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

	"warranty_intake/internal/usecase/interfaces"
)

var (
	ErrMissingEmailAPIKey      = errors.New("missing EMAIL_API_KEY")
	ErrMissingEmailFromAddress = errors.New("missing EMAIL_FROM_ADDRESS")
)

const defaultEndpoint = "https://api.resend.com/emails"

// Config carries the email provider settings.
//
// APIKey and FromAddress are required when sending is enabled; the wiring
// treats a constructor failure as "not configured" and the intake flow then
// reports the email step as skipped.
type Config struct {
	Enabled     bool
	Endpoint    string
	APIKey      string
	FromAddress string
	FromName    string
	ReplyTo     string
}

// ConfigFromEnv reads the recognized EMAIL_* variables.
func ConfigFromEnv() Config {
	return Config{
		Enabled:     isTruthy(os.Getenv("EMAIL_ENABLED")),
		Endpoint:    getenvDefault("EMAIL_ENDPOINT", defaultEndpoint),
		APIKey:      os.Getenv("EMAIL_API_KEY"),
		FromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
		FromName:    os.Getenv("EMAIL_FROM_NAME"),
		ReplyTo:     os.Getenv("EMAIL_REPLY_TO"),
	}
}

// ResendGateway sends transactional email through a Resend-compatible
// POST /emails endpoint.

type ResendGateway struct {
	cfg        Config
	httpClient *http.Client
}

var _ interfaces.INotificationGateway = (*ResendGateway)(nil)

func NewResendGateway(cfg Config) (*ResendGateway, error) {
	if cfg.APIKey == "" {
		log.Printf("[email][gateway] missing EMAIL_API_KEY")
		return nil, ErrMissingEmailAPIKey
	}
	if cfg.FromAddress == "" {
		log.Printf("[email][gateway] missing EMAIL_FROM_ADDRESS")
		return nil, ErrMissingEmailFromAddress
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	return &ResendGateway{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type sendResponse struct {
	ID string `json:"id"`
}

func (g *ResendGateway) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	from := g.cfg.FromAddress
	if g.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", g.cfg.FromName, g.cfg.FromAddress)
	}

	payload, err := json.Marshal(sendRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
		ReplyTo: g.cfg.ReplyTo,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err == nil && out.ID != "" {
		log.Printf("[email][gateway] send accepted provider_id=%s", out.ID)
	}
	return nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
