package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a catalog entry plus a requested quantity.
type LineItem struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Cart holds line items in first-add order. SKUs are unique within a cart and
// no line item carries a quantity below 1.
type Cart struct {
	Items     []LineItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Product is the quantity-less shape handed to AddItem.
type Product struct {
	SKU   string          `json:"sku"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// NewCart returns an empty cart stamped with the current time.
func NewCart() Cart {
	return Cart{UpdatedAt: time.Now().UTC()}
}

// AddItem returns a new cart with the product added. An existing SKU gets its
// quantity bumped by one; otherwise the product is appended with quantity 1.
// The input cart is never mutated.
func AddItem(c Cart, p Product) Cart {
	items := make([]LineItem, 0, len(c.Items)+1)
	found := false
	for _, item := range c.Items {
		if item.SKU == p.SKU {
			item.Quantity++
			found = true
		}
		items = append(items, item)
	}
	if !found {
		items = append(items, LineItem{
			SKU:      p.SKU,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: 1,
		})
	}
	return Cart{Items: items, UpdatedAt: time.Now().UTC()}
}

// RemoveItem returns a new cart without any line item matching the SKU. An
// absent SKU is a no-op on the item list; the timestamp refreshes either way.
func RemoveItem(c Cart, sku string) Cart {
	items := make([]LineItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.SKU != sku {
			items = append(items, item)
		}
	}
	return Cart{Items: items, UpdatedAt: time.Now().UTC()}
}

// UpdateQuantity returns a new cart with the matching line item set to the
// given quantity. A quantity of zero or below removes the item entirely.
func UpdateQuantity(c Cart, sku string, quantity int) Cart {
	if quantity <= 0 {
		return RemoveItem(c, sku)
	}
	items := make([]LineItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.SKU == sku {
			item.Quantity = quantity
		}
		items = append(items, item)
	}
	return Cart{Items: items, UpdatedAt: time.Now().UTC()}
}

// ItemCount sums the quantities across all line items.
func ItemCount(c Cart) int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal sums price times quantity across all line items.
func Subtotal(c Cart) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}
