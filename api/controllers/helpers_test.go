package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opheliasgarden/nursery-backend/api/middleware"
	"github.com/opheliasgarden/nursery-backend/internal/cart"
	"github.com/opheliasgarden/nursery-backend/internal/catalog"
	"github.com/opheliasgarden/nursery-backend/internal/preorder"
	"github.com/opheliasgarden/nursery-backend/pkg/enums"
	"github.com/opheliasgarden/nursery-backend/pkg/logger"
	"github.com/opheliasgarden/nursery-backend/pkg/types"
	"github.com/shopspring/decimal"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: &bytes.Buffer{}})
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Entry{
		{
			SKU:      "DAH-JOW-001",
			Name:     "Jowey Linda",
			Price:    decimal.NewFromFloat(7),
			Stock:    enums.StockStatusSoldOut,
			Category: enums.DahliaCategoryBall,
			Colors:   []string{"orange"},
		},
		{
			SKU:      "DAH-BRA-002",
			Name:     "Bracken Rose",
			Price:    decimal.NewFromFloat(8),
			Stock:    enums.StockStatusSoldOut,
			Category: enums.DahliaCategoryDecorative,
			Colors:   []string{"pink", "rose"},
		},
		{
			SKU:      "DAH-CAL-003",
			Name:     "Café au Lait Mini",
			Price:    decimal.NewFromFloat(9),
			Stock:    enums.StockStatusSoldOut,
			Category: enums.DahliaCategoryDecorative,
			Colors:   []string{"cream", "pink", "rose"},
		},
		{
			SKU:      "DAH-SWE-004",
			Name:     "Sweet Nathalie",
			Price:    decimal.NewFromFloat(8.5),
			Stock:    enums.StockStatusAvailable,
			Category: enums.DahliaCategoryDecorative,
			Colors:   []string{"pink", "white"},
		},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

type fakeCartService struct {
	getFn         func(ctx context.Context, token string) (*cart.View, error)
	addFn         func(ctx context.Context, token, sku string) (*cart.View, error)
	removeFn      func(ctx context.Context, token, sku string) (*cart.View, error)
	setQuantityFn func(ctx context.Context, token, sku string, quantity int) (*cart.View, error)
	clearFn       func(ctx context.Context, token string) error
}

func (f *fakeCartService) Get(ctx context.Context, token string) (*cart.View, error) {
	return f.getFn(ctx, token)
}

func (f *fakeCartService) Add(ctx context.Context, token, sku string) (*cart.View, error) {
	return f.addFn(ctx, token, sku)
}

func (f *fakeCartService) Remove(ctx context.Context, token, sku string) (*cart.View, error) {
	return f.removeFn(ctx, token, sku)
}

func (f *fakeCartService) SetQuantity(ctx context.Context, token, sku string, quantity int) (*cart.View, error) {
	return f.setQuantityFn(ctx, token, sku, quantity)
}

func (f *fakeCartService) Clear(ctx context.Context, token string) error {
	return f.clearFn(ctx, token)
}

type fakePreorderService struct {
	submitFn func(ctx context.Context, input preorder.Input) (*preorder.Confirmation, error)
}

func (f *fakePreorderService) Submit(ctx context.Context, input preorder.Input) (*preorder.Confirmation, error) {
	return f.submitFn(ctx, input)
}

// withCartToken mounts the handler behind the cart-token middleware the way
// the router does, so handlers see a token in context.
func withCartToken(h http.Handler) http.Handler {
	return middleware.CartToken(nil, false)(h)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) types.APIError {
	t.Helper()
	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return envelope.Error
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
}
