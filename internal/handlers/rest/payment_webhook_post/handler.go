package payment_webhook_post

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"

	"cryptoshop/internal/generated/dto"
	"cryptoshop/internal/service/payment"
	"cryptoshop/pkg/fixed_window"
	"cryptoshop/pkg/logger"
)

const signatureHeader = "x-nowpayments-sig"

// maxBodySize ограничивает размер webhook-а, чтобы не читать произвольно
// большие тела от внешнего источника.
const maxBodySize = 1 << 20

type Handler struct {
	log       handlerLogger
	service   Service
	publisher Publisher
	limiter   Limiter
}

func New(log handlerLogger, service Service, publisher Publisher, limiter Limiter) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		publisher: publisher,
		limiter:   limiter,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := h.limiter.Check(clientIP(r), fixed_window.Webhook)
	setRateLimitHeaders(w, limit)
	if !limit.Allowed {
		w.Header().Set("Retry-After", strconv.Itoa(limit.RetryAfter))
		h.respondError(w, http.StatusTooManyRequests,
			"Too many requests. Please try again later.", &limit.RetryAfter)
		return
	}

	rawBody, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("read webhook body")
		h.respondError(w, http.StatusBadRequest, "Invalid payload", nil)
		return
	}

	event, err := h.service.ProcessCallback(r.Context(), rawBody, r.Header.Get(signatureHeader))
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrNotConfigured):
			h.log.Error("webhook secret is not configured")
			h.respondError(w, http.StatusInternalServerError, "Webhook not configured", nil)
		case errors.Is(err, payment.ErrMissingSignature):
			h.respondError(w, http.StatusUnauthorized, "Missing signature", nil)
		case errors.Is(err, payment.ErrInvalidSignature):
			h.log.With(
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("webhook signature mismatch")
			h.respondError(w, http.StatusUnauthorized, "Invalid signature", nil)
		case errors.Is(err, payment.ErrInvalidPayload):
			h.respondError(w, http.StatusBadRequest, "Invalid payload", nil)
		case errors.Is(err, payment.ErrOrderNotFound):
			h.respondError(w, http.StatusNotFound, "Order not found", nil)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("process webhook failed")
			h.respondError(w, http.StatusInternalServerError, "Failed to process webhook", nil)
		}
		return
	}

	// Публикация события best-effort: статус уже записан, webhook подтверждаем
	// в любом случае, иначе NOWPayments будет ретраить примененный колбек.
	if event != nil {
		if err := h.publisher.PublishPaymentStatusChanged(r.Context(), *event); err != nil {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", event.OrderID),
			).Error("publish payment status changed event")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto.WebhookAckResponse{Success: true}); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string, retryAfter *int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:      message,
		RetryAfter: retryAfter,
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON error response")
	}
}

func setRateLimitHeaders(w http.ResponseWriter, limit fixed_window.Result) {
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(limit.ResetAt.UnixMilli(), 10))
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
