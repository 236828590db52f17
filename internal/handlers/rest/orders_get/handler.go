package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cryptoshop/internal/entities"
	"cryptoshop/internal/generated/dto"
	"cryptoshop/internal/pkg/middlewares/auth"
	"cryptoshop/internal/service/order"
	"cryptoshop/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if userID == "" {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := r.URL.Query()

	var status *string
	if s := query.Get("status"); s != "" {
		status = &s
	}

	limit, err := parseUintParam(query.Get("limit"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid limit parameter")
		return
	}

	offset, err := parseUintParam(query.Get("offset"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid offset parameter")
		return
	}

	orders, err := h.service.ListOrders(r.Context(), userID, status, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			h.respondError(w, http.StatusBadRequest, "Invalid status filter")
		case errors.Is(err, order.ErrUnauthorized):
			h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list orders failed")
			h.respondError(w, http.StatusInternalServerError, "Failed to list orders")
		}
		return
	}

	response := dto.OrdersResponse{
		Success: true,
		Orders:  make([]dto.OrderSummary, 0, len(orders)),
	}
	for i := range orders {
		response.Orders = append(response.Orders, toOrderSummary(&orders[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderSummary(o *entities.Order) dto.OrderSummary {
	summary := dto.OrderSummary{
		ID:        o.ID,
		Status:    o.Status.String(),
		Total:     o.Total.InexactFloat64(),
		CreatedAt: o.CreatedAt,
	}
	if o.PaymentID != nil {
		summary.PaymentID = o.PaymentID
	}
	if o.PaymentStatus != nil {
		s := o.PaymentStatus.String()
		summary.PaymentStatus = &s
	}
	return summary
}

func parseUintParam(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error: message,
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON error response")
	}
}
