package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart belongs to exactly one owner: a registered user or an anonymous
// session. At most one open (not checked out) cart exists per owner.
type Cart struct {
	ID         int64     `json:"id"`
	UserID     *int64    `json:"user_id,omitempty"`
	SessionID  *string   `json:"-"`
	CheckedOut bool      `json:"checked_out"`
	CreatedAt  time.Time `json:"created_at"`
}

// CartItem is a single (product, quantity) row. Unique per (cart, product).
type CartItem struct {
	ID        int64     `json:"id"`
	CartID    int64     `json:"cart_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItemDetail is a cart item joined with its product's name and price.
type CartItemDetail struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}
