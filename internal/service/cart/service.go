package cart

import (
	"context"

	"ecommerce-api/internal/domain"
)

type cartRepo interface {
	GetOrCreateByUser(ctx context.Context, userID int64) (*domain.Cart, error)
	GetOrCreateBySession(ctx context.Context, sessionID string) (*domain.Cart, error)
	ListItems(ctx context.Context, cartID int64) ([]domain.CartItemDetail, error)
	UpsertItem(ctx context.Context, cartID, productID int64, quantity int) (*domain.CartItem, error)
	DeleteItem(ctx context.Context, cartID, itemID int64) (*domain.CartItem, error)
	ClearItems(ctx context.Context, cartID int64) error
}

// Service resolves cart ownership and maintains cart line items.
type Service struct {
	repo cartRepo
}

func New(repo cartRepo) *Service {
	return &Service{repo: repo}
}

// Owner identifies who a cart belongs to. An authenticated user id takes
// precedence over an anonymous session id when both are set.
type Owner struct {
	UserID    *int64
	SessionID string
}

// Resolve returns the owner's open cart, creating one if none exists.
// Resolution is idempotent: two calls without intervening writes return the
// same cart.
func (s *Service) Resolve(ctx context.Context, owner Owner) (*domain.Cart, error) {
	switch {
	case owner.UserID != nil:
		return s.repo.GetOrCreateByUser(ctx, *owner.UserID)
	case owner.SessionID != "":
		return s.repo.GetOrCreateBySession(ctx, owner.SessionID)
	default:
		return nil, domain.ErrIdentityMissing
	}
}

// Items lists the cart's line items enriched with product name and price.
func (s *Service) Items(ctx context.Context, cartID int64) ([]domain.CartItemDetail, error) {
	return s.repo.ListItems(ctx, cartID)
}

// AddItem adds a product to the cart or replaces the existing row's quantity.
// Adding the same product twice keeps the last quantity, it never accumulates.
func (s *Service) AddItem(ctx context.Context, cartID, productID int64, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if productID <= 0 {
		return nil, domain.ErrNotFound
	}
	return s.repo.UpsertItem(ctx, cartID, productID, quantity)
}

// RemoveItem deletes an item, constrained to the given cart. Items belonging
// to another cart are reported as not found.
func (s *Service) RemoveItem(ctx context.Context, cartID, itemID int64) (*domain.CartItem, error) {
	return s.repo.DeleteItem(ctx, cartID, itemID)
}

// Clear removes every item from the cart. Clearing an empty cart is a no-op.
func (s *Service) Clear(ctx context.Context, cartID int64) error {
	return s.repo.ClearItems(ctx, cartID)
}
