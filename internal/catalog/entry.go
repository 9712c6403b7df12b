package catalog

import (
	"fmt"

	"github.com/opheliasgarden/nursery-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Entry is one sellable dahlia variety. Entries are created at content-load
// time and never mutated afterwards.
type Entry struct {
	SKU         string               `json:"sku"`
	Name        string               `json:"name"`
	Price       decimal.Decimal      `json:"price"`
	Stock       enums.StockStatus    `json:"stock"`
	Category    enums.DahliaCategory `json:"category"`
	Colors      []string             `json:"colors"`
	BloomSize   string               `json:"bloom_size,omitempty"`
	Height      string               `json:"height,omitempty"`
	Image       string               `json:"image,omitempty"`
	Description string               `json:"description,omitempty"`
}

// Catalog holds the ordered, immutable set of varieties.
type Catalog struct {
	entries []Entry
	bySKU   map[string]int
}

// New builds a catalog from entries already validated by the caller, keeping
// their order. Duplicate SKUs are rejected.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{bySKU: make(map[string]int, len(entries))}
	for _, entry := range entries {
		if _, dup := c.bySKU[entry.SKU]; dup {
			return nil, fmt.Errorf("duplicate sku %s", entry.SKU)
		}
		c.bySKU[entry.SKU] = len(c.entries)
		c.entries = append(c.entries, entry)
	}
	return c, nil
}

// Entries returns the varieties in catalog order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Find returns the entry for a SKU, if present.
func (c *Catalog) Find(sku string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	idx, ok := c.bySKU[sku]
	if !ok {
		return Entry{}, false
	}
	return c.entries[idx], true
}

// Len returns the number of varieties.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
