package state

import "github.com/nikolayk812/foodnodes/internal/domain"

// Alert message keys raised by transitions.
const (
	MsgFailedLoadingCart   = "failed_loading_cart"
	MsgErrorUpdatingCart   = "error_updating_cart"
	MsgFailedCreatingOrder = "failed_creating_order"
	MsgOrderCreated        = "order_created"
)

// Reduce returns the state after applying a. It never mutates s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case LoggedIn:
		user := a.User
		s.Auth = Auth{User: &user}
		s.Cart = Cart{}
	case LoggedOut:
		s.Auth = Auth{}
		s.Cart = Cart{}
	case AuthLoading:
		s.Auth.Loading = true
	case LanguageChanged:
		s.Lang = a.Lang

	case FetchStarted:
		s.Cart.Status = StatusFetching
		s.Cart.Refreshing = a.Refresh
	case FetchSucceeded:
		s.Cart.Status = StatusLoaded
		s.Cart.Items = a.Items
		s.Cart.Loaded = true
		s.Cart.Refreshing = false
	case FetchFailed:
		// stale lines are dropped rather than shown after a failed fetch
		s.Cart.Status = StatusFailed
		s.Cart.Items = nil
		s.Cart.Loaded = false
		s.Cart.Refreshing = false
		s.Alert = errorAlert(MsgFailedLoadingCart)
	case FetchCancelled:
		s.Cart.Refreshing = false
		if s.Cart.Loaded {
			s.Cart.Status = StatusLoaded
		} else {
			s.Cart.Status = StatusIdle
		}

	case ItemUpdating:
		s.Cart.Updating = withUpdating(s.Cart.Updating, a.ID, true)
	case ItemUpdated:
		s.Cart.Updating = withUpdating(s.Cart.Updating, a.ID, false)
		s.Cart.Items = a.Items
	case ItemUpdateFailed:
		s.Cart.Updating = withUpdating(s.Cart.Updating, a.ID, false)
		s.Alert = errorAlert(MsgErrorUpdatingCart)

	case OrderCreating:
		s.Cart.Creating = true
	case OrderCreated:
		s.Cart.Creating = false
		s.Cart.Items = nil
		s.Cart.Status = StatusLoaded
		s.Cart.Loaded = true
		alert := domain.NewAlert(domain.AlertSuccess, MsgOrderCreated)
		s.Alert = &alert
	case OrderFailed:
		s.Cart.Creating = false
		s.Alert = errorAlert(MsgFailedCreatingOrder)

	case AlertShown:
		alert := a.Alert
		s.Alert = &alert
	case AlertReset:
		s.Alert = nil
	}

	return s
}

func errorAlert(msg string) *domain.Alert {
	alert := domain.NewAlert(domain.AlertError, msg)
	return &alert
}

// withUpdating copies the set so earlier snapshots stay untouched.
func withUpdating(set map[string]bool, id string, on bool) map[string]bool {
	next := make(map[string]bool, len(set)+1)
	for k := range set {
		next[k] = true
	}

	if on {
		next[id] = true
	} else {
		delete(next, id)
	}

	return next
}
