package nowpayments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"cryptoshop/internal/entities"
	retrierconfig "cryptoshop/pkg/retrier"
	"cryptoshop/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "nowpayments"

	maxErrorBodyBytes = 4 << 10
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Config - реквизиты доступа к API процессора.
type Config struct {
	APIKey      string
	BaseURL     string
	CallbackURL string
}

// GatewayError - ответ процессора со статусом вне 2xx. Тело ответа хранится
// для логов и в Error() не попадает, чтобы не утекать клиентам через %w.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("nowpayments responded with status %d", e.StatusCode)
}

type Gateway struct {
	client  httpClient
	retrier retrier
	cfg     Config
}

func New(client httpClient, cfg Config) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		cfg:     cfg,
	}
}

// CreatePayment регистрирует платеж в процессоре. Сумма в запросе - всегда
// серверная сумма заказа в USD.
func (g *Gateway) CreatePayment(ctx context.Context, req entities.CreatePaymentRequest) (*entities.PaymentIntent, error) {
	body, err := json.Marshal(toCreatePaymentRequest(req, g.cfg.CallbackURL))
	if err != nil {
		return nil, fmt.Errorf("gateway nowpayments, marshal create payment: %w", err)
	}

	var resp paymentResponse

	err = g.executeWithMetrics(ctx, "CreatePayment", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, g.cfg.BaseURL+"/v1/payment", body, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway nowpayments, create payment for order %s: %w", req.OrderID, err)
	}

	return toPaymentIntent(&resp)
}

// PaymentStatus запрашивает текущее состояние платежа.
func (g *Gateway) PaymentStatus(ctx context.Context, paymentID string) (*entities.PaymentStatusCheck, error) {
	var resp paymentResponse

	err := g.executeWithMetrics(ctx, "PaymentStatus", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, g.cfg.BaseURL+"/v1/payment/"+paymentID, nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway nowpayments, payment status %s: %w", paymentID, err)
	}

	return toStatusCheck(&resp)
}

func (g *Gateway) doJSON(ctx context.Context, method, url string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-api-key", g.cfg.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &GatewayError{
			StatusCode: resp.StatusCode,
			Body:       string(errBody),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var gatewayErr *GatewayError
	if errors.As(err, &gatewayErr) {
		return gatewayErr.StatusCode == http.StatusTooManyRequests ||
			gatewayErr.StatusCode >= http.StatusInternalServerError
	}

	// транспортные ошибки (таймаут, обрыв) ретраим
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}

	var gatewayErr *GatewayError
	if errors.As(err, &gatewayErr) {
		return strconv.Itoa(gatewayErr.StatusCode)
	}
	return "transport_error"
}
