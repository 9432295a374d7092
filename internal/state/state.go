// Package state is the application state snapshot and its pure transitions.
// Views receive a State value; every change goes through Reduce.
package state

import "github.com/nikolayk812/foodnodes/internal/domain"

type FetchStatus int

const (
	StatusIdle FetchStatus = iota
	StatusFetching
	StatusLoaded
	StatusFailed
)

func (s FetchStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusFetching:
		return "fetching"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type State struct {
	Lang  string
	Auth  Auth
	Cart  Cart
	Alert *domain.Alert
}

type Auth struct {
	User    *domain.User
	Loading bool
}

func (a Auth) LoggedIn() bool {
	return a.User != nil
}

// Cart is the cart screen state. Items are replaced wholesale by the server
// result of every fetch or mutation; they are never patched locally.
type Cart struct {
	Status FetchStatus
	Items  []domain.CartLineItem
	// Loaded is set once a fetch has succeeded for the current user.
	Loaded     bool
	Refreshing bool
	// Updating holds the ids of lines with a mutation in flight.
	Updating map[string]bool
	Creating bool
}

func (c Cart) IsUpdating(id string) bool {
	return c.Updating[id]
}

// Loading reports the initial fetch, as opposed to a pull-to-refresh.
func (c Cart) Loading() bool {
	return c.Status == StatusFetching && !c.Refreshing
}
