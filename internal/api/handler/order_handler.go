package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pharmacy_store/internal/app/service"
	"pharmacy_store/internal/common"
)

const (
	msgOrderMissingFields = "Missing required fields in order data."
	msgOrderFailed        = "Failed to place the order. Please check the server logs."
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.placeOrder)            // POST /orders
	r.Get("/{userID}", h.listUserOrders) // GET /orders/{userId}
}

func (h *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req service.PlaceOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if _, err := h.orderService.PlaceOrder(r.Context(), req); err != nil {
		// details are only logged by the service
		if common.HTTPStatusFromError(err) == http.StatusBadRequest {
			common.RespondWithError(w, http.StatusBadRequest, msgOrderMissingFields)
			return
		}
		common.RespondWithError(w, http.StatusInternalServerError, msgOrderFailed)
		return
	}
	common.RespondWithMessage(w, http.StatusCreated, "Order placed successfully")
}

func (h *OrderHandler) listUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	orders, err := h.orderService.ListOrdersForUser(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, orders)
}
