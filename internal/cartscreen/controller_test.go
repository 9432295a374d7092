package cartscreen_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nikolayk812/foodnodes/internal/cartscreen"
	"github.com/nikolayk812/foodnodes/internal/domain"
	"github.com/nikolayk812/foodnodes/internal/logger"
	"github.com/nikolayk812/foodnodes/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- Mock API ---

type mockCartAPI struct {
	mock.Mock
}

func (m *mockCartAPI) FetchCart(ctx context.Context) ([]domain.CartLineItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.CartLineItem)
	return items, args.Error(1)
}

func (m *mockCartAPI) UpdateCartItem(ctx context.Context, id string, quantity int) ([]domain.CartLineItem, error) {
	args := m.Called(ctx, id, quantity)
	items, _ := args.Get(0).([]domain.CartLineItem)
	return items, args.Error(1)
}

func (m *mockCartAPI) RemoveCartItem(ctx context.Context, id string) ([]domain.CartLineItem, error) {
	args := m.Called(ctx, id)
	items, _ := args.Get(0).([]domain.CartLineItem)
	return items, args.Error(1)
}

func (m *mockCartAPI) CreateOrder(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

// --- Helpers ---

func loggedIn(userID string) state.State {
	return state.Reduce(state.State{Lang: "en"}, state.LoggedIn{User: domain.User{ID: userID}})
}

func newController(t *testing.T, initial state.State) (*cartscreen.Controller, *state.Store, *mockCartAPI) {
	t.Helper()

	store := state.NewStore(initial)
	api := new(mockCartAPI)
	c := cartscreen.NewController(store, api, logger.Discard())
	t.Cleanup(c.Close)

	return c, store, api
}

func sampleItems(ids ...string) []domain.CartLineItem {
	items := make([]domain.CartLineItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, domain.CartLineItem{
			ID:       id,
			Quantity: 1,
			Date:     domain.DeliveryDate{Date: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		})
	}
	return items
}

// --- Tests ---

func TestShouldFetch(t *testing.T) {
	tests := []struct {
		hasUser, loaded, refresh bool
		want                     bool
	}{
		{hasUser: false, loaded: false, refresh: false, want: false},
		{hasUser: false, loaded: false, refresh: true, want: false},
		{hasUser: false, loaded: true, refresh: true, want: false},
		{hasUser: true, loaded: false, refresh: false, want: true},
		{hasUser: true, loaded: true, refresh: false, want: false},
		{hasUser: true, loaded: true, refresh: true, want: true},
		{hasUser: true, loaded: false, refresh: true, want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cartscreen.ShouldFetch(tt.hasUser, tt.loaded, tt.refresh), "%+v", tt)
	}
}

func TestSync_FirstLoadAndRefresh(t *testing.T) {
	c, store, api := newController(t, loggedIn("u1"))
	api.On("FetchCart", mock.Anything).Return(sampleItems("a", "b"), nil)

	require.True(t, c.Sync(false))
	c.Wait()

	s := store.Snapshot()
	assert.Equal(t, state.StatusLoaded, s.Cart.Status)
	assert.True(t, s.Cart.Loaded)
	assert.Len(t, s.Cart.Items, 2)

	assert.False(t, c.Sync(false), "already loaded")

	require.True(t, c.Sync(true), "refresh overrides loaded")
	c.Wait()

	api.AssertNumberOfCalls(t, "FetchCart", 2)
}

func TestSync_NoUser(t *testing.T) {
	c, store, api := newController(t, state.State{})

	assert.False(t, c.Sync(false))
	assert.False(t, c.Sync(true))
	assert.Equal(t, state.StatusIdle, store.Snapshot().Cart.Status)

	api.AssertNotCalled(t, "FetchCart", mock.Anything)
}

func TestSync_AtMostOneInFlight(t *testing.T) {
	c, store, api := newController(t, loggedIn("u1"))

	release := make(chan time.Time)
	api.On("FetchCart", mock.Anything).WaitUntil(release).Return(sampleItems("a"), nil)

	require.True(t, c.Sync(false))
	assert.Equal(t, state.StatusFetching, store.Snapshot().Cart.Status)

	assert.False(t, c.Sync(false))
	assert.False(t, c.Sync(true))

	close(release)
	c.Wait()

	api.AssertNumberOfCalls(t, "FetchCart", 1)
	assert.Equal(t, state.StatusLoaded, store.Snapshot().Cart.Status)
}

func TestMount_FailureDoesNotLoop(t *testing.T) {
	c, store, api := newController(t, loggedIn("u1"))
	api.On("FetchCart", mock.Anything).Return(nil, errors.New("connection refused"))

	c.Mount()
	c.Wait()

	s := store.Snapshot()
	assert.Equal(t, state.StatusFailed, s.Cart.Status)
	assert.Empty(t, s.Cart.Items)
	require.NotNil(t, s.Alert)
	assert.Equal(t, []string{state.MsgFailedLoadingCart}, s.Alert.Messages)

	// unrelated state changes re-run the gate without refetching
	store.Dispatch(state.AlertReset{})
	store.Dispatch(state.LanguageChanged{Lang: "sv"})
	c.Wait()
	api.AssertNumberOfCalls(t, "FetchCart", 1)

	require.True(t, c.Sync(true), "explicit refresh retries")
	c.Wait()
	api.AssertNumberOfCalls(t, "FetchCart", 2)
}

func TestMount_FetchesOnLogin(t *testing.T) {
	c, store, api := newController(t, state.State{Lang: "en"})
	api.On("FetchCart", mock.Anything).Return(sampleItems("a"), nil)

	c.Mount()
	c.Mount()
	api.AssertNotCalled(t, "FetchCart", mock.Anything)

	store.Dispatch(state.LoggedIn{User: domain.User{ID: "u1"}})
	c.Wait()

	assert.True(t, store.Snapshot().Cart.Loaded)
	api.AssertNumberOfCalls(t, "FetchCart", 1)
}

func TestClose_CancelsFetch(t *testing.T) {
	store := state.NewStore(loggedIn("u1"))
	api := new(mockCartAPI)
	c := cartscreen.NewController(store, api, logger.Discard())

	api.On("FetchCart", mock.Anything).Run(func(args mock.Arguments) {
		<-args.Get(0).(context.Context).Done()
	}).Return(nil, context.Canceled)

	require.True(t, c.Sync(false))
	c.Close()

	s := store.Snapshot()
	assert.Equal(t, state.StatusIdle, s.Cart.Status)
	assert.Nil(t, s.Alert, "cancellation is not an error")
	assert.False(t, c.Sync(true), "closed controller never fetches")
}

func TestSync_DiscardsPreviousUsersCart(t *testing.T) {
	c, store, api := newController(t, loggedIn("u1"))

	release := make(chan time.Time)
	api.On("FetchCart", mock.Anything).WaitUntil(release).Return(sampleItems("from-u1"), nil).Once()
	api.On("FetchCart", mock.Anything).Return(sampleItems("from-u2"), nil).Once()

	require.True(t, c.Sync(false))

	store.Dispatch(state.LoggedIn{User: domain.User{ID: "u2"}})
	close(release)
	c.Wait()

	s := store.Snapshot()
	require.Len(t, s.Cart.Items, 1)
	assert.Equal(t, "from-u2", s.Cart.Items[0].ID)
	api.AssertNumberOfCalls(t, "FetchCart", 2)
}

func TestUpdateItem(t *testing.T) {
	initial := state.Reduce(loggedIn("u1"), state.FetchSucceeded{Items: sampleItems("a")})

	t.Run("replaces items with server result", func(t *testing.T) {
		c, store, api := newController(t, initial)

		updated := sampleItems("a")
		updated[0].Quantity = 4

		api.On("UpdateCartItem", mock.Anything, "a", 4).Run(func(mock.Arguments) {
			s := store.Snapshot()
			assert.True(t, s.Cart.IsUpdating("a"), "line shows loading")
			assert.Equal(t, 1, s.Cart.Items[0].Quantity, "no local mutation")
		}).Return(updated, nil)

		require.NoError(t, c.UpdateItem(t.Context(), "a", 4))

		s := store.Snapshot()
		assert.False(t, s.Cart.IsUpdating("a"))
		assert.Equal(t, 4, s.Cart.Items[0].Quantity)
	})

	t.Run("failure raises alert", func(t *testing.T) {
		c, store, api := newController(t, initial)
		api.On("UpdateCartItem", mock.Anything, "a", 2).Return(nil, errors.New("boom"))

		err := c.UpdateItem(t.Context(), "a", 2)
		require.EqualError(t, err, "boom")

		s := store.Snapshot()
		assert.False(t, s.Cart.IsUpdating("a"))
		assert.Equal(t, 1, s.Cart.Items[0].Quantity)
		require.NotNil(t, s.Alert)
		assert.Equal(t, []string{state.MsgErrorUpdatingCart}, s.Alert.Messages)
	})

	t.Run("busy line is rejected", func(t *testing.T) {
		busy := state.Reduce(initial, state.ItemUpdating{ID: "a"})
		c, _, api := newController(t, busy)

		require.ErrorIs(t, c.UpdateItem(t.Context(), "a", 2), cartscreen.ErrItemBusy)
		api.AssertNotCalled(t, "UpdateCartItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not logged in", func(t *testing.T) {
		c, _, _ := newController(t, state.State{})
		require.ErrorIs(t, c.UpdateItem(t.Context(), "a", 2), cartscreen.ErrNotLoggedIn)
	})

	t.Run("line not in cart", func(t *testing.T) {
		c, store, api := newController(t, initial)

		require.ErrorIs(t, c.UpdateItem(t.Context(), "zz", 2), cartscreen.ErrItemNotInCart)
		assert.False(t, store.Snapshot().Cart.IsUpdating("zz"))
		api.AssertNotCalled(t, "UpdateCartItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRemoveItem(t *testing.T) {
	initial := state.Reduce(loggedIn("u1"), state.FetchSucceeded{Items: sampleItems("a", "b")})
	c, store, api := newController(t, initial)

	api.On("RemoveCartItem", mock.Anything, "a").Return(sampleItems("b"), nil)

	require.NoError(t, c.RemoveItem(t.Context(), "a"))

	s := store.Snapshot()
	require.Len(t, s.Cart.Items, 1)
	assert.Equal(t, "b", s.Cart.Items[0].ID)
}

func TestCreateOrder(t *testing.T) {
	initial := state.Reduce(loggedIn("u1"), state.FetchSucceeded{Items: sampleItems("a")})

	t.Run("success empties cart", func(t *testing.T) {
		c, store, api := newController(t, initial)
		api.On("CreateOrder", mock.Anything).Run(func(mock.Arguments) {
			assert.True(t, store.Snapshot().Cart.Creating)
		}).Return([]domain.Order{{ID: "o1"}}, nil)

		orders, err := c.CreateOrder(t.Context())
		require.NoError(t, err)
		assert.Len(t, orders, 1)

		s := store.Snapshot()
		assert.False(t, s.Cart.Creating)
		assert.Empty(t, s.Cart.Items)
		require.NotNil(t, s.Alert)
		assert.Equal(t, []string{state.MsgOrderCreated}, s.Alert.Messages)
	})

	t.Run("failure keeps cart", func(t *testing.T) {
		c, store, api := newController(t, initial)
		api.On("CreateOrder", mock.Anything).Return(nil, errors.New("boom"))

		_, err := c.CreateOrder(t.Context())
		require.Error(t, err)
		assert.Len(t, store.Snapshot().Cart.Items, 1)
	})

	t.Run("guards", func(t *testing.T) {
		c, _, _ := newController(t, loggedIn("u1"))
		_, err := c.CreateOrder(t.Context())
		require.ErrorIs(t, err, cartscreen.ErrEmptyCart)

		c, _, _ = newController(t, state.Reduce(initial, state.OrderCreating{}))
		_, err = c.CreateOrder(t.Context())
		require.ErrorIs(t, err, cartscreen.ErrOrderInFlight)

		c, _, _ = newController(t, state.State{})
		_, err = c.CreateOrder(t.Context())
		require.ErrorIs(t, err, cartscreen.ErrNotLoggedIn)

		c, _, _ = newController(t, initial)
		c.Close()
		_, err = c.CreateOrder(t.Context())
		require.ErrorIs(t, err, cartscreen.ErrControllerDone)
	})
}
