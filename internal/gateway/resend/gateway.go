package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"cryptoshop/internal/entities"
)

const maxErrorBodyBytes = 4 << 10

// Config - реквизиты доступа к почтовому API.
type Config struct {
	APIKey    string
	BaseURL   string
	FromEmail string
}

type Gateway struct {
	client httpClient
	cfg    Config
}

func New(client httpClient, cfg Config) *Gateway {
	return &Gateway{
		client: client,
		cfg:    cfg,
	}
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendEmail отправляет одно письмо. Ретраев нет: доставка писем best-effort,
// повтор решает вызывающая сторона.
func (g *Gateway) SendEmail(ctx context.Context, email entities.OrderStatusEmail) error {
	body, err := json.Marshal(sendEmailRequest{
		From:    g.cfg.FromEmail,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    renderHTML(email),
	})
	if err != nil {
		return fmt.Errorf("gateway resend, marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("gateway resend, build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		EmailSendDuration.WithLabelValues("transport_error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("gateway resend, send email: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	EmailSendDuration.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("gateway resend, send email: status %d: %s", resp.StatusCode, string(errBody))
	}

	return nil
}

func renderHTML(email entities.OrderStatusEmail) string {
	return fmt.Sprintf(
		`<h2>%s</h2><p>%s</p><p>Order ID: <code>%s</code></p><p>Total: $%s</p>`,
		html.EscapeString(email.Subject),
		html.EscapeString(email.Message),
		html.EscapeString(email.OrderID),
		email.OrderTotal.StringFixed(2),
	)
}
