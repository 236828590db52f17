package payment_status_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

	limit := h.limiter.Check(userID, fixed_window.CheckStatus)
	setRateLimitHeaders(w, limit)
	if !limit.Allowed {
		w.Header().Set("Retry-After", strconv.Itoa(limit.RetryAfter))
		h.respondError(w, http.StatusTooManyRequests,
			"Too many requests. Please try again later.", &limit.RetryAfter)
		return
	}

	paymentID := r.URL.Query().Get("paymentId")
	if paymentID == "" {
		h.respondError(w, http.StatusBadRequest, "Missing paymentId parameter", nil)
		return
	}

	check, err := h.service.CheckStatus(r.Context(), userID, paymentID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidPaymentID):
			h.respondError(w, http.StatusBadRequest, "Missing paymentId parameter", nil)
		case errors.Is(err, payment.ErrForbidden):
			h.respondError(w, http.StatusForbidden, "Forbidden", nil)
		case errors.Is(err, payment.ErrOrderNotFound):
			h.respondError(w, http.StatusNotFound, "Payment not found", nil)
		case errors.Is(err, payment.ErrUnauthorized):
			h.respondError(w, http.StatusUnauthorized, "Unauthorized", nil)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("payment_id", paymentID),
			).Error("check payment status failed")
			h.respondError(w, http.StatusInternalServerError, "Failed to check payment status", nil)
		}
		return
	}

	response := dto.PaymentStatusResponse{
		Success:       true,
		PaymentStatus: check.PaymentStatus.String(),
		PayAmount:     check.PayAmount.InexactFloat64(),
		ActuallyPaid:  check.ActuallyPaid.InexactFloat64(),
		PayCurrency:   check.PayCurrency,
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
