// Package stubapi is a development stand-in for the marketplace backend. It
// serves the cart and order endpoints the client uses, backed by Postgres.
package stubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/foodnodes/internal/api"
	"github.com/nikolayk812/foodnodes/internal/apperrors"
	"github.com/nikolayk812/foodnodes/internal/domain"
	"github.com/nikolayk812/foodnodes/internal/port"
	"golang.org/x/sync/singleflight"
)

const (
	headerCorrelationID  = api.HeaderCorrelationID
	headerIdempotencyKey = api.HeaderIdempotencyKey

	maxBodyBytes = 1 << 20
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// addItemRequest is a cart line in the wire shape without an id; the
// repository issues one.
type addItemRequest struct {
	Quantity             int                `json:"quantity" validate:"gt=0"`
	CartDateRelationship []api.CartDate     `json:"cart_date_relationship" validate:"min=1,dive"`
	CartItemRelationship []api.CartItemLink `json:"cart_item_relationship" validate:"min=1,dive"`
}

func (req addItemRequest) toDomain() domain.CartLineItem {
	return api.CartDateItemLink{
		Quantity:             req.Quantity,
		CartDateRelationship: req.CartDateRelationship,
		CartItemRelationship: req.CartItemRelationship,
	}.ToDomain()
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

type Handler struct {
	repo   port.CartRepository
	logger *slog.Logger

	// order submissions by owner and idempotency key
	mu          sync.Mutex
	orders      map[string][]api.Order
	submissions singleflight.Group
}

func NewHandler(repo port.CartRepository, logger *slog.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
		orders: make(map[string][]api.Order),
	}
}

// GetCart handles GET /api/v1/cart
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, r, http.StatusOK)
}

// AddItem handles POST /api/v1/cart. The body is a single cart line in the
// wire shape the cart endpoint returns.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	item := req.toDomain()
	if !item.Date.Key().Valid() {
		writeError(w, r, apperrors.InvalidInput(fmt.Sprintf("date[%s] is not valid", item.Date.Raw)), h.logger)
		return
	}
	if err := domain.ValidateCurrency(item.Producer.Currency); err != nil {
		writeError(w, r, apperrors.InvalidInput(err.Error()), h.logger)
		return
	}

	if _, err := h.repo.AddItem(r.Context(), ownerIDFromContext(r.Context()), item); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	h.writeCart(w, r, http.StatusCreated)
}

// UpdateItem handles PUT /api/v1/cart/{id}
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateQuantityRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	updated, err := h.repo.UpdateQuantity(r.Context(), ownerIDFromContext(r.Context()), id, *req.Quantity)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	if !updated {
		writeError(w, r, apperrors.NotFound("cart line", id), h.logger)
		return
	}

	h.writeCart(w, r, http.StatusOK)
}

// RemoveItem handles DELETE /api/v1/cart/{id}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.repo.DeleteItem(r.Context(), ownerIDFromContext(r.Context()), id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	if !deleted {
		writeError(w, r, apperrors.NotFound("cart line", id), h.logger)
		return
	}

	h.writeCart(w, r, http.StatusOK)
}

// CreateOrder handles POST /api/v1/orders. A repeated Idempotency-Key gets
// the orders of the first submission.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerIDFromContext(r.Context())

	var (
		orders []api.Order
		err    error
	)
	if key := r.Header.Get(headerIdempotencyKey); key != "" {
		orders, err = h.createOrdersOnce(r.Context(), ownerID, key)
	} else {
		orders, err = h.createOrders(r.Context(), ownerID)
	}
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, orders)
}

// createOrdersOnce submits the cart at most once per owner and key. Concurrent
// submissions with the same key share one repository call.
func (h *Handler) createOrdersOnce(ctx context.Context, ownerID, key string) ([]api.Order, error) {
	cacheKey := ownerID + "/" + key

	v, err, _ := h.submissions.Do(cacheKey, func() (any, error) {
		h.mu.Lock()
		orders, ok := h.orders[cacheKey]
		h.mu.Unlock()
		if ok {
			return orders, nil
		}

		orders, err := h.createOrders(ctx, ownerID)
		if err != nil {
			return nil, err
		}

		h.mu.Lock()
		h.orders[cacheKey] = orders
		h.mu.Unlock()

		return orders, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]api.Order), nil
}

func (h *Handler) createOrders(ctx context.Context, ownerID string) ([]api.Order, error) {
	created, err := h.repo.CreateOrders(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "orders created",
		slog.String("owner_id", ownerID),
		slog.Int("orders", len(created)),
	)

	return ordersFromDomain(created), nil
}

// ListOrders handles GET /api/v1/orders
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.ListOrders(r.Context(), ownerIDFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, ordersFromDomain(orders))
}

func (h *Handler) writeCart(w http.ResponseWriter, r *http.Request, status int) {
	items, err := h.repo.GetCart(r.Context(), ownerIDFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	links := make([]api.CartDateItemLink, 0, len(items))
	for _, item := range items {
		links = append(links, api.FromDomain(item))
	}

	writeData(w, status, links)
}

func ordersFromDomain(orders []domain.Order) []api.Order {
	result := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, api.OrderFromDomain(o))
	}
	return result
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return apperrors.InvalidInput("invalid request body: " + err.Error())
	}

	if err := validate.Struct(dst); err != nil {
		return apperrors.InvalidInput(err.Error())
	}

	return nil
}
