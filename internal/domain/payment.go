package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod stores a card on file. The CVV is write-only.
type PaymentMethod struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Name      string          `json:"name"`
	CardNum   string          `json:"card_num"`
	CVV       string          `json:"-"`
	ExpDate   string          `json:"exp_date"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
