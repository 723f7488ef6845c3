package cart

import (
	"context"

	"ecommerce-api/internal/domain"
)

// Repository persists carts and their line items.
type Repository interface {
	// GetOrCreateByUser returns the user's open cart, creating one atomically
	// if none exists.
	GetOrCreateByUser(ctx context.Context, userID int64) (*domain.Cart, error)
	// GetOrCreateBySession is GetOrCreateByUser keyed on an anonymous session id.
	GetOrCreateBySession(ctx context.Context, sessionID string) (*domain.Cart, error)
	// ListItems returns the cart's items joined with product name and price.
	ListItems(ctx context.Context, cartID int64) ([]domain.CartItemDetail, error)
	// UpsertItem inserts a (cart, product) row or replaces its quantity.
	UpsertItem(ctx context.Context, cartID, productID int64, quantity int) (*domain.CartItem, error)
	// DeleteItem removes the item matching both ids and returns its prior values.
	DeleteItem(ctx context.Context, cartID, itemID int64) (*domain.CartItem, error)
	// ClearItems removes every item from the cart.
	ClearItems(ctx context.Context, cartID int64) error
}
