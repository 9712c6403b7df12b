package payment

import (
	"context"
	"errors"

	"github.com/opheliasgarden/nursery-backend/pkg/config"
	pkgerrors "github.com/opheliasgarden/nursery-backend/pkg/errors"
)

// ErrNotImplemented marks payment capture as out of scope: pre-orders are
// settled offline after the owner confirms availability.
var ErrNotImplemented = errors.New("online payment is not implemented")

// CheckoutSession is the redirect target a future card-payment flow would
// hand to the storefront.
type CheckoutSession struct {
	ID  string
	URL string
}

// Provider is the card-payment capability slot. Only a stub exists today.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, amountCents int64, reference string) (*CheckoutSession, error)
	VerifyWebhookSignature(payload []byte, signature string) error
}

type stripeStub struct {
	secretKey     string
	webhookSecret string
}

// NewStripeStub holds Stripe credentials for the eventual checkout flow.
// Every operation fails with ErrNotImplemented.
func NewStripeStub(cfg config.StripeConfig) (Provider, error) {
	if cfg.SecretKey == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "stripe secret key required")
	}
	return &stripeStub{
		secretKey:     cfg.SecretKey,
		webhookSecret: cfg.WebhookSecret,
	}, nil
}

func (s *stripeStub) CreateCheckoutSession(context.Context, int64, string) (*CheckoutSession, error) {
	return nil, ErrNotImplemented
}

func (s *stripeStub) VerifyWebhookSignature([]byte, string) error {
	return ErrNotImplemented
}
