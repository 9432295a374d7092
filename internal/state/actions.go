package state

import "github.com/nikolayk812/foodnodes/internal/domain"

type Action interface {
	action()
}

type (
	LoggedIn struct {
		User domain.User
	}
	LoggedOut       struct{}
	AuthLoading     struct{}
	LanguageChanged struct {
		Lang string
	}

	FetchStarted struct {
		Refresh bool
	}
	FetchSucceeded struct {
		Items []domain.CartLineItem
	}
	FetchFailed struct {
		Err error
	}
	FetchCancelled struct{}

	ItemUpdating struct {
		ID string
	}
	ItemUpdated struct {
		ID    string
		Items []domain.CartLineItem
	}
	ItemUpdateFailed struct {
		ID  string
		Err error
	}

	OrderCreating struct{}
	OrderCreated  struct {
		Orders []domain.Order
	}
	OrderFailed struct {
		Err error
	}

	AlertShown struct {
		Alert domain.Alert
	}
	AlertReset struct{}
)

func (LoggedIn) action() {}
func (LoggedOut) action() {}
func (AuthLoading) action() {}
func (LanguageChanged) action() {}
func (FetchStarted) action() {}
func (FetchSucceeded) action() {}
func (FetchFailed) action() {}
func (FetchCancelled) action() {}
func (ItemUpdating) action() {}
func (ItemUpdated) action() {}
func (ItemUpdateFailed) action() {}
func (OrderCreating) action() {}
func (OrderCreated) action() {}
func (OrderFailed) action() {}
func (AlertShown) action() {}
func (AlertReset) action() {}
