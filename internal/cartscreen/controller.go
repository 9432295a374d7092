// Package cartscreen is the view model of the cart screen: it decides when
// to fetch, drives cart mutations through the API and renders the state.
package cartscreen

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/nikolayk812/foodnodes/internal/cart"
	"github.com/nikolayk812/foodnodes/internal/domain"
	"github.com/nikolayk812/foodnodes/internal/state"
)

var (
	ErrItemBusy       = errors.New("cart item has an update in flight")
	ErrItemNotInCart  = errors.New("cart item is not in the cart")
	ErrOrderInFlight  = errors.New("order submission in flight")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrNotLoggedIn    = errors.New("user is not logged in")
	ErrControllerDone = errors.New("controller is closed")
)

// CartAPI is the subset of the backend client the screen needs.
type CartAPI interface {
	FetchCart(ctx context.Context) ([]domain.CartLineItem, error)
	UpdateCartItem(ctx context.Context, id string, quantity int) ([]domain.CartLineItem, error)
	RemoveCartItem(ctx context.Context, id string) ([]domain.CartLineItem, error)
	CreateOrder(ctx context.Context) ([]domain.Order, error)
}

// ShouldFetch reports whether the cart must be fetched: only for a logged in
// user, and only when it was never loaded or a refresh was requested.
func ShouldFetch(hasUser, cartIsLoaded, refreshRequested bool) bool {
	return hasUser && (!cartIsLoaded || refreshRequested)
}

// Controller runs at most one cart fetch at a time. Fetches are cancelled by
// Close, which also waits for them to return.
type Controller struct {
	store  *state.Store
	api    CartAPI
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	fetching    atomic.Bool
	unsubscribe func()
	mountOnce   sync.Once
}

func NewController(store *state.Store, api CartAPI, logger *slog.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())

	return &Controller{
		store:  store,
		api:    api,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Mount fetches if needed and re-evaluates the gate after every state change.
func (c *Controller) Mount() {
	c.mountOnce.Do(func() {
		c.unsubscribe = c.store.Subscribe(func(state.State) {
			c.Sync(false)
		})
		c.Sync(false)
	})
}

// Close cancels the in-flight fetch and waits for it.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	c.cancel()
	c.wg.Wait()
}

// Wait blocks until the in-flight fetch, if any, has been applied.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Sync starts a background fetch when the gate allows it and returns whether
// one was started. A failed fetch is only retried on an explicit refresh.
func (c *Controller) Sync(refresh bool) bool {
	if c.ctx.Err() != nil {
		return false
	}

	snapshot := c.store.Snapshot()
	if !ShouldFetch(snapshot.Auth.LoggedIn(), snapshot.Cart.Loaded, refresh) {
		return false
	}
	if snapshot.Cart.Status == state.StatusFetching {
		return false
	}
	if snapshot.Cart.Status == state.StatusFailed && !refresh {
		return false
	}
	if !c.fetching.CompareAndSwap(false, true) {
		return false
	}

	userID := snapshot.Auth.User.ID

	c.wg.Add(1)
	c.store.Dispatch(state.FetchStarted{Refresh: refresh})

	go c.fetch(userID)

	return true
}

func (c *Controller) fetch(userID string) {
	defer c.wg.Done()

	items, err := c.api.FetchCart(c.ctx)
	c.fetching.Store(false)

	switch {
	case c.ctx.Err() != nil:
		c.store.Dispatch(state.FetchCancelled{})
	case !c.sameUser(userID):
		c.logger.InfoContext(c.ctx, "discarding cart of previous user", slog.String("user_id", userID))
		c.Sync(false)
	case err != nil:
		c.logger.ErrorContext(c.ctx, "fetch cart",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.store.Dispatch(state.FetchFailed{Err: err})
	default:
		c.logger.DebugContext(c.ctx, "cart fetched",
			slog.String("user_id", userID),
			slog.Int("lines", len(items)),
		)
		c.store.Dispatch(state.FetchSucceeded{Items: items})
	}
}

// UpdateItem asks the backend for a new quantity. The line shows as loading
// until the server answers; the local quantity is never changed directly.
func (c *Controller) UpdateItem(ctx context.Context, id string, quantity int) error {
	return c.mutateItem(ctx, id, func(ctx context.Context) ([]domain.CartLineItem, error) {
		return c.api.UpdateCartItem(ctx, id, quantity)
	})
}

func (c *Controller) RemoveItem(ctx context.Context, id string) error {
	return c.mutateItem(ctx, id, func(ctx context.Context) ([]domain.CartLineItem, error) {
		return c.api.RemoveCartItem(ctx, id)
	})
}

func (c *Controller) mutateItem(ctx context.Context, id string, call func(context.Context) ([]domain.CartLineItem, error)) error {
	if c.ctx.Err() != nil {
		return ErrControllerDone
	}

	snapshot := c.store.Snapshot()
	if !snapshot.Auth.LoggedIn() {
		return ErrNotLoggedIn
	}
	if _, ok := cart.Find(snapshot.Cart.Items, id); !ok {
		return ErrItemNotInCart
	}
	if snapshot.Cart.IsUpdating(id) {
		return ErrItemBusy
	}

	c.store.Dispatch(state.ItemUpdating{ID: id})

	items, err := call(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "update cart item",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		c.store.Dispatch(state.ItemUpdateFailed{ID: id, Err: err})
		return err
	}

	c.store.Dispatch(state.ItemUpdated{ID: id, Items: items})
	return nil
}

// CreateOrder submits the cart. On success the cart is empty and an
// order_created alert is pending.
func (c *Controller) CreateOrder(ctx context.Context) ([]domain.Order, error) {
	if c.ctx.Err() != nil {
		return nil, ErrControllerDone
	}

	snapshot := c.store.Snapshot()
	switch {
	case !snapshot.Auth.LoggedIn():
		return nil, ErrNotLoggedIn
	case snapshot.Cart.Creating:
		return nil, ErrOrderInFlight
	case len(snapshot.Cart.Items) == 0:
		return nil, ErrEmptyCart
	}

	c.store.Dispatch(state.OrderCreating{})

	orders, err := c.api.CreateOrder(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "create order", slog.String("error", err.Error()))
		c.store.Dispatch(state.OrderFailed{Err: err})
		return nil, err
	}

	c.logger.InfoContext(ctx, "order created", slog.Int("orders", len(orders)))
	c.store.Dispatch(state.OrderCreated{Orders: orders})

	return orders, nil
}

func (c *Controller) sameUser(userID string) bool {
	user := c.store.Snapshot().Auth.User
	return user != nil && user.ID == userID
}
