// Package api is the client of the marketplace backend's cart and order
// endpoints. Responses are validated before they reach the domain.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nikolayk812/foodnodes/internal/apperrors"
	"github.com/nikolayk812/foodnodes/internal/domain"
	"github.com/nikolayk812/foodnodes/internal/logger"
)

const (
	HeaderCorrelationID  = "X-Correlation-ID"
	HeaderIdempotencyKey = "Idempotency-Key"

	cartPath   = "/api/v1/cart"
	ordersPath = "/api/v1/orders"
)

// Doer sends a request. *httpclient.Client satisfies it.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Client struct {
	doer    Doer
	baseURL *url.URL
	token   string
	logger  *slog.Logger
}

func New(baseURL, token string, doer Doer, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("baseURL[%s] is not absolute", baseURL)
	}

	return &Client{
		doer:    doer,
		baseURL: u,
		token:   token,
		logger:  logger,
	}, nil
}

// FetchCart returns the current cart lines of the authenticated user.
func (c *Client) FetchCart(ctx context.Context) ([]domain.CartLineItem, error) {
	links, err := call[[]CartDateItemLink](ctx, c, http.MethodGet, cartPath, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("api.FetchCart: %w", err)
	}

	return linesToDomain(links), nil
}

// UpdateCartItem sets the quantity of a line and returns the resulting cart.
func (c *Client) UpdateCartItem(ctx context.Context, id string, quantity int) ([]domain.CartLineItem, error) {
	if id == "" {
		return nil, fmt.Errorf("id is empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity[%d] is negative", quantity)
	}

	links, err := call[[]CartDateItemLink](ctx, c, http.MethodPut, cartPath+"/"+url.PathEscape(id), updateQuantityRequest{Quantity: quantity}, nil)
	if err != nil {
		return nil, fmt.Errorf("api.UpdateCartItem: %w", err)
	}

	return linesToDomain(links), nil
}

// RemoveCartItem deletes a line and returns the resulting cart.
func (c *Client) RemoveCartItem(ctx context.Context, id string) ([]domain.CartLineItem, error) {
	if id == "" {
		return nil, fmt.Errorf("id is empty")
	}

	links, err := call[[]CartDateItemLink](ctx, c, http.MethodDelete, cartPath+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("api.RemoveCartItem: %w", err)
	}

	return linesToDomain(links), nil
}

// CreateOrder turns the cart into orders, one per node and delivery date.
// Retries of the same call reuse one idempotency key.
func (c *Client) CreateOrder(ctx context.Context) ([]domain.Order, error) {
	headers := http.Header{}
	headers.Set(HeaderIdempotencyKey, uuid.NewString())

	orders, err := call[[]Order](ctx, c, http.MethodPost, ordersPath, struct{}{}, headers)
	if err != nil {
		return nil, fmt.Errorf("api.CreateOrder: %w", err)
	}

	return ordersToDomain(orders), nil
}

// FetchOrders returns the order history.
func (c *Client) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := call[[]Order](ctx, c, http.MethodGet, ordersPath, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("api.FetchOrders: %w", err)
	}

	return ordersToDomain(orders), nil
}

func call[T any](ctx context.Context, c *Client, method, path string, body any, headers http.Header) (T, error) {
	var zero T

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return zero, err
	}
	for k, v := range headers {
		req.Header[k] = v
	}

	correlationID := logger.CorrelationIDFromContext(ctx)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	req.Header.Set(HeaderCorrelationID, correlationID)

	resp, err := c.doer.Do(ctx, req)
	if err != nil {
		return zero, fmt.Errorf("doer.Do: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.WithContext(ctx, c.logger).DebugContext(ctx, "api call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("correlation_id", correlationID),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, parseError(resp)
	}

	return decode[T](resp.Body)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	u := c.baseURL.JoinPath(path)

	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

func decode[T any](r io.Reader) (T, error) {
	var (
		env  envelope[T]
		zero T
	)

	if err := json.NewDecoder(io.LimitReader(r, 8<<20)).Decode(&env); err != nil {
		return zero, fmt.Errorf("json.Decode: %w", err)
	}

	if err := validateData(env.Data); err != nil {
		return zero, err
	}

	return env.Data, nil
}

// validateData checks every record of a list response.
func validateData(data any) error {
	var records []any
	switch v := data.(type) {
	case []CartDateItemLink:
		for _, r := range v {
			records = append(records, r)
		}
	case []Order:
		for _, r := range v {
			records = append(records, r)
		}
	default:
		records = append(records, v)
	}

	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return apperrors.InvalidInput(fmt.Sprintf("record[%d]: %v", i, err))
		}
	}

	return nil
}

func parseError(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("status %d (failed to read body: %w)", resp.StatusCode, err)
	}

	var env envelope[json.RawMessage]
	if json.Unmarshal(data, &env) == nil && env.Error != nil {
		return apperrors.FromStatus(resp.StatusCode, env.Error.Code, env.Error.Message)
	}

	return apperrors.FromStatus(resp.StatusCode, "", strings.TrimSpace(string(data)))
}

func linesToDomain(links []CartDateItemLink) []domain.CartLineItem {
	items := make([]domain.CartLineItem, 0, len(links))
	for _, link := range links {
		items = append(items, link.ToDomain())
	}
	return items
}

func ordersToDomain(orders []Order) []domain.Order {
	result := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.ToDomain())
	}
	return result
}

// IsUnauthorized reports whether err means the token was rejected.
func IsUnauthorized(err error) bool {
	return errors.Is(err, apperrors.ErrUnauthorized)
}
