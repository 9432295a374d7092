package port

import (
	"context"

	"github.com/nikolayk812/foodnodes/internal/domain"
)

// CartRepository stores the carts and orders of the API stub. Every method is
// scoped to the owner (the authenticated user id).
type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) ([]domain.CartLineItem, error)
	// AddItem adds a line or increases the quantity of the same selection and
	// returns the line id.
	AddItem(ctx context.Context, ownerID string, item domain.CartLineItem) (string, error)
	// UpdateQuantity sets a line quantity; zero removes the line.
	UpdateQuantity(ctx context.Context, ownerID, id string, quantity int) (bool, error)
	DeleteItem(ctx context.Context, ownerID, id string) (bool, error)
	// CreateOrders turns the cart into one order per node and delivery date
	// and empties it.
	CreateOrders(ctx context.Context, ownerID string) ([]domain.Order, error)
	ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error)
}
