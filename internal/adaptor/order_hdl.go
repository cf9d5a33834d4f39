package adaptor

import (
	"encoding/json"
	"net/http"

	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// CreateOrder handles POST /createOrder
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create order")
		return
	}

	utils.ResponseSuccess(w, "Order created", order)
}

// UpdateOrder handles PUT /updateOrder/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	var req request.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.UpdateOrder(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update order")
		return
	}

	utils.ResponseCreated(w, "Order updated", order)
}

// CancelOrder handles DELETE /cancelOrder/{id}
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	if err := h.service.CancelOrder(r.Context(), id, caller); err != nil {
		handleServiceError(w, h.log, err, "cancel order")
		return
	}

	utils.ResponseSuccess(w, "Order cancelled", nil)
}

// ListOrders handles GET /listOrders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()

	req := request.ListOrdersRequest{
		Limit: utils.ParseInt(query.Get("limit"), 0),
		Page:  utils.ParseInt(query.Get("page"), 0),
	}

	if idParam := query.Get("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid order ID", nil)
			return
		}
		req.ID = &id
	}

	result, err := h.service.ListOrders(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved", result)
}
