package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rl1809/checkout/internal/core/domain"
	"github.com/rl1809/checkout/internal/core/service"
)

type HTTPHandler struct {
	checkout  *service.CheckoutService
	carts     *service.CartService
	orders    *service.OrderService
	inventory *service.InventoryService
}

func NewHTTPHandler(
	checkout *service.CheckoutService,
	carts *service.CartService,
	orders *service.OrderService,
	inventory *service.InventoryService,
) *HTTPHandler {
	return &HTTPHandler{
		checkout:  checkout,
		carts:     carts,
		orders:    orders,
		inventory: inventory,
	}
}

func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)

	mux.HandleFunc("GET /api/carts/{owner}", h.GetCart)
	mux.HandleFunc("POST /api/carts/{owner}/items", h.AddCartItem)
	mux.HandleFunc("PUT /api/carts/{owner}/items/{product}", h.UpdateCartItem)
	mux.HandleFunc("DELETE /api/carts/{owner}/items/{product}", h.RemoveCartItem)

	mux.HandleFunc("POST /api/checkout", h.Checkout)
	mux.HandleFunc("GET /api/owners/{owner}/orders", h.ListOrders)
	mux.HandleFunc("GET /api/orders/{id}", h.GetOrder)
	mux.HandleFunc("POST /api/orders/{id}/cancel", h.CancelOrder)
	mux.HandleFunc("PUT /api/orders/{id}/status", h.UpdateOrderStatus)
	mux.HandleFunc("POST /api/orders/{id}/payment", h.ProcessPayment)

	mux.HandleFunc("GET /api/inventory/low-stock", h.ListLowStock)
	mux.HandleFunc("GET /api/inventory/{product}", h.GetStock)
	mux.HandleFunc("POST /api/inventory/{product}/adjust", h.AdjustStock)
	mux.HandleFunc("PUT /api/inventory/{product}/threshold", h.SetThreshold)
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type checkoutRequest struct {
	RequestID     string         `json:"request_id"`
	OwnerID       string         `json:"owner_id"`
	Address       domain.Address `json:"address"`
	PaymentMethod string         `json:"payment_method"`
}

type cancelRequest struct {
	OwnerID string `json:"owner_id"`
	Admin   bool   `json:"admin"`
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.GetCart(r.Context(), r.PathValue("owner"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	cart, err := h.carts.AddItem(r.Context(), r.PathValue("owner"), req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	cart, err := h.carts.UpdateQuantity(r.Context(), r.PathValue("owner"), r.PathValue("product"), req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.RemoveItem(r.Context(), r.PathValue("owner"), r.PathValue("product"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.OwnerID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "owner_id is required"})
		return
	}
	order, err := h.checkout.CreateOrderFromCart(r.Context(), req.RequestID, req.OwnerID, req.Address, req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context(), r.PathValue("owner"))
	if err != nil {
		writeError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	order, err := h.checkout.CancelOrder(r.Context(), req.OwnerID, r.PathValue("id"), req.Admin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	order, err := h.checkout.UpdateOrderStatus(r.Context(), r.PathValue("id"), domain.OrderStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *HTTPHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Payload map[string]any `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	order, err := h.orders.ProcessPayment(r.Context(), r.PathValue("id"), req.Payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *HTTPHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	item, err := h.inventory.GetStock(r.Context(), r.PathValue("product"))
	if err != nil {
		writeError(w, err)
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no inventory record"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
		"reserved":   item.Reserved,
		"available":  item.Available,
		"status":     item.StockStatus(),
	})
}

func (h *HTTPHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventory.ListLowStock(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, map[string]any{
			"product_id": item.ProductID,
			"quantity":   item.Quantity,
			"threshold":  item.LowStockThreshold,
			"status":     item.StockStatus(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta     int    `json:"delta"`
		Reason    string `json:"reason"`
		Reference string `json:"reference"`
		Actor     string `json:"actor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	item, err := h.inventory.AdjustStock(r.Context(), r.PathValue("product"), req.Delta, req.Reason, req.Reference, req.Actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *HTTPHandler) SetThreshold(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Threshold int `json:"threshold"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := h.inventory.SetThreshold(r.Context(), r.PathValue("product"), req.Threshold); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps the error taxonomy onto HTTP statuses with enough structure
// for the client to render actionable feedback.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var cartErr *domain.CartValidationError
	var stateErr *domain.InvalidStateError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	case errors.As(err, &cartErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":      "cart validation failed",
			"violations": cartErr.Violations,
		})
	case errors.As(err, &stateErr):
		writeJSON(w, http.StatusConflict, map[string]string{"error": stateErr.Error()})
	case errors.Is(err, domain.ErrEmptyCart):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cart is empty"})
	case errors.Is(err, domain.ErrInsufficientStock):
		writeJSON(w, http.StatusGone, map[string]string{"error": "sold out"})
	case errors.Is(err, domain.ErrDuplicateRequest):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "duplicate request"})
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, domain.ErrProductNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNotOrderOwner):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
