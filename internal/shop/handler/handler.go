// Package handler exposes the shop manager over HTTP.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/abgdnv/toolshop/internal/platform/web"
	"github.com/abgdnv/toolshop/internal/shop/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// DecreaseRequest is the body of POST /api/v1/items/decrease.
type DecreaseRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Quantity *int   `json:"quantity" validate:"required,min=0"`
}

type Handler struct {
	service  service.ShopService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new Handler reporting through the given ShopService.
func NewHandler(service service.ShopService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the shop.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.ListItems)
			r.Get("/search", h.SearchItem)
			r.Get("/quantity", h.GetQuantity)
			r.Post("/decrease", h.DecreaseQuantity)
		})
		r.Get("/order", h.GetOrder)
		r.Get("/suppliers", h.ListSuppliers)
		r.Get("/customers", h.ListCustomers)
	})
	r.Get("/healthz", h.HealthCheck)
}

// ListItems describes every item in the inventory.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	mLogger.DebugContext(r.Context(), "Received request to list items")
	web.RespondResult(w, mLogger, h.service.ListAllItems())
}

// SearchItem looks an item up by the name query parameter, or by id when no name is given.
func (h *Handler) SearchItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	query := r.URL.Query()
	if name := query.Get("name"); name != "" {
		mLogger.DebugContext(r.Context(), "Received request to search item by name", "name", name)
		web.RespondResult(w, mLogger, h.service.SearchItemByName(name))
		return
	}
	if !query.Has("id") {
		web.RespondError(w, mLogger, http.StatusBadRequest, "name or id url parameter is required")
		return
	}
	id, ok := web.ParseValidateGte(r, w, mLogger, "id", 0)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to search item by id", "ID", id)
	web.RespondResult(w, mLogger, h.service.SearchItemByID(id))
}

// GetQuantity reports the current quantity of the named item.
func (h *Handler) GetQuantity(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	name, ok := web.RequireQuery(r, w, mLogger, "name")
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to get item quantity", "name", name)
	web.RespondResult(w, mLogger, h.service.GetItemQuantity(name))
}

// DecreaseQuantity removes stock of an item.
func (h *Handler) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req DecreaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		web.RespondValidation(w, mLogger, err)
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to decrease item quantity", "name", req.Name, "quantity", *req.Quantity)
	result := h.service.DecreaseItemQuantity(req.Name, *req.Quantity)
	mLogger.InfoContext(r.Context(), "Decrease processed", "name", req.Name, "result", result)
	web.RespondResult(w, mLogger, result)
}

// GetOrder describes the current restock order.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	mLogger.DebugContext(r.Context(), "Received request to get order")
	web.RespondResult(w, mLogger, h.service.GetOrder())
}

// ListSuppliers describes every supplier, or the one matching the optional name parameter.
func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	if name := r.URL.Query().Get("name"); name != "" {
		mLogger.DebugContext(r.Context(), "Received request to search supplier", "name", name)
		web.RespondResult(w, mLogger, h.service.SearchSupplierByName(name))
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to list suppliers")
	web.RespondResult(w, mLogger, h.service.ListAllSuppliers())
}

// ListCustomers describes every customer, or those matching the optional name or id parameter.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	query := r.URL.Query()
	if name := query.Get("name"); name != "" {
		mLogger.DebugContext(r.Context(), "Received request to search customers", "name", name)
		web.RespondResult(w, mLogger, h.service.SearchCustomerByName(name))
		return
	}
	if query.Has("id") {
		id, ok := web.ParseValidateGte(r, w, mLogger, "id", 0)
		if !ok {
			return
		}
		mLogger.DebugContext(r.Context(), "Received request to search customer by id", "ID", id)
		web.RespondResult(w, mLogger, h.service.SearchCustomerByID(id))
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to list customers")
	web.RespondResult(w, mLogger, h.service.ListAllCustomers())
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
// The context handler installed by bootstrap does not repeat it.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
