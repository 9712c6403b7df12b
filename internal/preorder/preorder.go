package preorder

import (
	"time"

	"github.com/opheliasgarden/nursery-backend/internal/cart"
	"github.com/shopspring/decimal"
)

// CustomerDetails identifies who placed the pre-order.
type CustomerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

// PreOrder is a submitted, unpaid order intent. It exists only long enough to
// build and send the owner notification; it is never written to any store.
type PreOrder struct {
	Customer    CustomerDetails `json:"customer"`
	Items       []cart.LineItem `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Total       decimal.Decimal `json:"total"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

// Input is the submission payload after the HTTP layer has decoded the form.
type Input struct {
	CustomerName  string      `json:"customerName" validate:"required"`
	CustomerEmail string      `json:"customerEmail" validate:"required,email"`
	CustomerPhone string      `json:"customerPhone" validate:"required,min=7"`
	CustomerNotes string      `json:"customerNotes"`
	Items         []ItemInput `json:"items" validate:"dive"`
}

// ItemInput is one submitted line item.
type ItemInput struct {
	SKU      string  `json:"sku" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
}

// Confirmation is returned to the customer on success.
type Confirmation struct {
	CustomerName   string `json:"customerName"`
	FormattedTotal string `json:"formattedTotal"`
	ItemCount      int    `json:"itemCount"`
}
