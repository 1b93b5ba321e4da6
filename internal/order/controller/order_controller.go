package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kintacos/internal/domain"
	"kintacos/internal/dto"
	apperrors "kintacos/internal/errors"
)

type OrderRepository interface {
	Create(ctx context.Context, data map[string]any) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context, filters dto.ListFilters) ([]*domain.Order, error)
	Update(ctx context.Context, id string, data map[string]any) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

// OrderController maps the REST surface onto the repository and translates
// typed errors into status codes. Unexpected failures are logged with their
// cause; the client only ever sees a generic message for those.
type OrderController struct {
	repo   OrderRepository
	logger *zap.Logger
}

func NewOrderController(repo OrderRepository, logger *zap.Logger) *OrderController {
	return &OrderController{
		repo:   repo,
		logger: logger,
	}
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "request body must be valid JSON", nil)
		return
	}

	created, err := c.repo.Create(r.Context(), data)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeError(w, http.StatusBadRequest, ve.Message, ve.Details)
			return
		}
		logger.Error("creating order", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "failed to create order", nil)
		return
	}

	logger.Info("order created", zap.String("orderId", created.ID))
	c.writeJSON(w, http.StatusCreated, dto.CreateOrderResponse{
		Message: "order created successfully",
		Order:   created,
	})
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	filters := dto.ListFilters{
		Status:         r.URL.Query().Get("status"),
		DeliveryOption: r.URL.Query().Get("deliveryOption"),
		StartDate:      r.URL.Query().Get("startDate"),
		EndDate:        r.URL.Query().Get("endDate"),
	}

	orders, err := c.repo.FindAll(r.Context(), filters)
	if err != nil {
		logger.Error("listing orders", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "failed to list orders", nil)
		return
	}

	if orders == nil {
		orders = []*domain.Order{}
	}
	c.writeJSON(w, http.StatusOK, orders)
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()
	id := chi.URLParam(r, "id")

	found, err := c.repo.FindByID(r.Context(), id)
	if err != nil {
		logger.Error("fetching order", zap.String("orderId", id), zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "failed to fetch order", nil)
		return
	}
	if found == nil {
		c.writeError(w, http.StatusNotFound, "order not found", nil)
		return
	}

	c.writeJSON(w, http.StatusOK, found)
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()
	id := chi.URLParam(r, "id")

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "request body must be valid JSON", nil)
		return
	}
	if req.Status == "" {
		c.writeError(w, http.StatusBadRequest, "status is required", nil)
		return
	}

	updated, err := c.repo.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		c.handleRepositoryError(w, logger, id, "updating order status", err)
		return
	}

	logger.Info("order status updated",
		zap.String("orderId", id),
		zap.String("status", req.Status),
	)
	c.writeJSON(w, http.StatusOK, updated)
}

func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()
	id := chi.URLParam(r, "id")

	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "request body must be valid JSON", nil)
		return
	}

	updated, err := c.repo.Update(r.Context(), id, data)
	if err != nil {
		c.handleRepositoryError(w, logger, id, "updating order", err)
		return
	}

	logger.Info("order updated", zap.String("orderId", id))
	c.writeJSON(w, http.StatusOK, updated)
}

func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()
	id := chi.URLParam(r, "id")

	if err := c.repo.Delete(r.Context(), id); err != nil {
		c.handleRepositoryError(w, logger, id, "deleting order", err)
		return
	}

	logger.Info("order deleted", zap.String("orderId", id))
	w.WriteHeader(http.StatusNoContent)
}

func (c *OrderController) handleRepositoryError(w http.ResponseWriter, logger *zap.Logger, id, action string, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, nfe.Message, nil)
		return
	}
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeError(w, http.StatusBadRequest, ve.Message, ve.Details)
		return
	}

	logger.Error(action, zap.String("orderId", id), zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "an unexpected error occurred", nil)
}

func (c *OrderController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func (c *OrderController) writeError(w http.ResponseWriter, status int, message string, details []apperrors.ValidationDetail) {
	c.writeJSON(w, status, dto.ErrorResponse{
		Error:   message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
