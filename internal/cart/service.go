package cart

import (
	"context"

	"github.com/opheliasgarden/nursery-backend/internal/catalog"
	pkgerrors "github.com/opheliasgarden/nursery-backend/pkg/errors"
	"github.com/opheliasgarden/nursery-backend/pkg/pricing"
	"github.com/shopspring/decimal"
)

// Service exposes the token-keyed cart operations behind the HTTP surface.
// Two callers sharing a token race last-write-wins; the storefront accepts
// that the same way two browser tabs sharing local storage would.
type Service interface {
	Get(ctx context.Context, token string) (*View, error)
	Add(ctx context.Context, token, sku string) (*View, error)
	Remove(ctx context.Context, token, sku string) (*View, error)
	SetQuantity(ctx context.Context, token, sku string, quantity int) (*View, error)
	Clear(ctx context.Context, token string) error
}

// View is the cart as rendered to clients.
type View struct {
	Items             []LineItem      `json:"items"`
	ItemCount         int             `json:"item_count"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	FormattedSubtotal string          `json:"formatted_subtotal"`
	UpdatedAt         string          `json:"updated_at"`
}

type service struct {
	store Store
	cat   *catalog.Catalog
}

// NewService wires cart dependencies.
func NewService(store Store, cat *catalog.Catalog) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cart store required")
	}
	if cat == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog required")
	}
	return &service{store: store, cat: cat}, nil
}

func (s *service) Get(ctx context.Context, token string) (*View, error) {
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token required")
	}
	loaded, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return newView(loaded), nil
}

func (s *service) Add(ctx context.Context, token, sku string) (*View, error) {
	entry, ok := s.cat.Find(sku)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown variety sku").
			WithDetails(map[string]string{"sku": sku})
	}
	return s.mutate(ctx, token, func(c Cart) Cart {
		return AddItem(c, Product{SKU: entry.SKU, Name: entry.Name, Price: entry.Price})
	})
}

func (s *service) Remove(ctx context.Context, token, sku string) (*View, error) {
	return s.mutate(ctx, token, func(c Cart) Cart {
		return RemoveItem(c, sku)
	})
}

func (s *service) SetQuantity(ctx context.Context, token, sku string, quantity int) (*View, error) {
	return s.mutate(ctx, token, func(c Cart) Cart {
		return UpdateQuantity(c, sku, quantity)
	})
}

func (s *service) Clear(ctx context.Context, token string) error {
	if token == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart token required")
	}
	if err := s.store.Clear(ctx, token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) mutate(ctx context.Context, token string, op func(Cart) Cart) (*View, error) {
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token required")
	}
	loaded, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	next := op(loaded)
	if err := s.store.Save(ctx, token, next); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return newView(next), nil
}

func newView(c Cart) *View {
	subtotal := Subtotal(c)
	items := c.Items
	if items == nil {
		items = []LineItem{}
	}
	return &View{
		Items:             items,
		ItemCount:         ItemCount(c),
		Subtotal:          subtotal,
		FormattedSubtotal: pricing.FormatPrice(subtotal),
		UpdatedAt:         c.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}
