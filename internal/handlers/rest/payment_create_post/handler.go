package payment_create_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"cryptoshop/internal/generated/dto"
	"cryptoshop/internal/pkg/middlewares/auth"
	"cryptoshop/internal/service/payment"
	"cryptoshop/pkg/fixed_window"
	"cryptoshop/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	limiter Limiter
}

func New(log handlerLogger, service Service, limiter Limiter) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		limiter: limiter,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if userID == "" {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	limit := h.limiter.Check(userID, fixed_window.CreatePayment)
	setRateLimitHeaders(w, limit)
	if !limit.Allowed {
		w.Header().Set("Retry-After", strconv.Itoa(limit.RetryAfter))
		h.respondError(w, http.StatusTooManyRequests,
			"Too many requests. Please try again later.", &limit.RetryAfter)
		return
	}

	var createDTO dto.PaymentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	intent, err := h.service.CreatePayment(
		r.Context(),
		userID,
		createDTO.OrderID,
		decimal.NewFromFloat(createDTO.Amount),
		createDTO.Currency,
	)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidOrderID):
			h.respondError(w, http.StatusBadRequest, "Invalid order ID format", nil)
		case errors.Is(err, payment.ErrUnsupportedCurrency):
			h.respondError(w, http.StatusBadRequest,
				"Invalid or unsupported cryptocurrency. Supported: btc, eth, usdt, ltc, xmr", nil)
		case errors.Is(err, payment.ErrInvalidAmount):
			h.respondError(w, http.StatusBadRequest, "Invalid amount", nil)
		case errors.Is(err, payment.ErrAmountMismatch):
			h.respondError(w, http.StatusBadRequest, "Amount does not match order total", nil)
		case errors.Is(err, payment.ErrPaymentExists):
			h.respondError(w, http.StatusBadRequest, "Order already has a payment", nil)
		case errors.Is(err, payment.ErrNotAwaitingPayment):
			h.respondError(w, http.StatusBadRequest, "Order is not awaiting payment", nil)
		case errors.Is(err, payment.ErrForbidden):
			h.respondError(w, http.StatusForbidden, "Forbidden", nil)
		case errors.Is(err, payment.ErrOrderNotFound):
			h.respondError(w, http.StatusNotFound, "Order not found", nil)
		case errors.Is(err, payment.ErrUnauthorized):
			h.respondError(w, http.StatusUnauthorized, "Unauthorized", nil)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", createDTO.OrderID),
			).Error("create payment failed")
			h.respondError(w, http.StatusInternalServerError, "Failed to create payment", nil)
		}
		return
	}

	response := dto.PaymentCreateResponse{
		Success: true,
		Payment: dto.PaymentDetails{
			PaymentID:     intent.PaymentID,
			PayAddress:    intent.PayAddress,
			PayAmount:     intent.PayAmount.InexactFloat64(),
			PayCurrency:   intent.PayCurrency,
			PaymentStatus: intent.PaymentStatus.String(),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
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
