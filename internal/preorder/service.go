package preorder

import (
	"context"
	"time"

	"github.com/opheliasgarden/nursery-backend/internal/cart"
	pkgerrors "github.com/opheliasgarden/nursery-backend/pkg/errors"
	"github.com/opheliasgarden/nursery-backend/pkg/logger"
	"github.com/opheliasgarden/nursery-backend/pkg/metrics"
	"github.com/opheliasgarden/nursery-backend/pkg/pricing"
	"github.com/shopspring/decimal"
)

// Notifier sends the owner notification for a submitted pre-order. A nil
// error means the notification went out.
type Notifier interface {
	SendOrderNotification(ctx context.Context, order PreOrder) error
}

// Service accepts validated submissions and dispatches the notification.
type Service interface {
	Submit(ctx context.Context, input Input) (*Confirmation, error)
}

type service struct {
	notifier Notifier
	logg     *logger.Logger
	metrics  *metrics.PreOrderMetrics
}

// ServiceParams wires the submission dependencies. Notifier may be nil: the
// development fallback logs the order instead of emailing it.
type ServiceParams struct {
	Notifier Notifier
	Logger   *logger.Logger
	Metrics  *metrics.PreOrderMetrics
}

// NewService wires pre-order dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{
		notifier: params.Notifier,
		logg:     params.Logger,
		metrics:  params.Metrics,
	}, nil
}

// Submit runs the business check, computes totals, and dispatches the order
// notification. Schema validation happens at the HTTP layer before this is
// called; an empty item list is a business failure distinct from schema errors.
func (s *service) Submit(ctx context.Context, input Input) (*Confirmation, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveDuration(time.Since(start))
	}()

	if len(input.Items) == 0 {
		s.metrics.IncSubmission(metrics.OutcomeCartEmpty)
		return nil, pkgerrors.New(pkgerrors.CodeCartEmpty, "cart is empty")
	}

	items := make([]cart.LineItem, 0, len(input.Items))
	subtotal := decimal.Zero
	itemCount := 0
	for _, item := range input.Items {
		price := decimal.NewFromFloat(item.Price)
		items = append(items, cart.LineItem{
			SKU:      item.SKU,
			Name:     item.Name,
			Price:    price,
			Quantity: item.Quantity,
		})
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		itemCount += item.Quantity
	}

	order := PreOrder{
		Customer: CustomerDetails{
			Name:  input.CustomerName,
			Email: input.CustomerEmail,
			Phone: input.CustomerPhone,
			Notes: input.CustomerNotes,
		},
		Items:       items,
		Subtotal:    subtotal,
		Total:       subtotal,
		SubmittedAt: time.Now().UTC(),
	}

	if s.notifier != nil {
		if err := s.notifier.SendOrderNotification(ctx, order); err != nil {
			s.metrics.IncSubmission(metrics.OutcomeEmailFailed)
			s.metrics.IncEmailSend("failed")
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err,
				"failed to send order notification, please try again")
		}
		s.metrics.IncEmailSend("ok")
	} else {
		s.logFallback(ctx, order)
	}

	s.metrics.IncSubmission(metrics.OutcomeAccepted)
	return &Confirmation{
		CustomerName:   order.Customer.Name,
		FormattedTotal: pricing.FormatPrice(order.Total),
		ItemCount:      itemCount,
	}, nil
}

// logFallback is the development-only path when no email provider is
// configured: the order is written to the log so it is not lost.
func (s *service) logFallback(ctx context.Context, order PreOrder) {
	fields := map[string]any{
		"customer_name":  order.Customer.Name,
		"customer_email": order.Customer.Email,
		"customer_phone": order.Customer.Phone,
		"line_items":     len(order.Items),
		"total":          pricing.FormatPrice(order.Total),
	}
	if order.Customer.Notes != "" {
		fields["notes"] = order.Customer.Notes
	}
	ctx = s.logg.WithFields(ctx, fields)
	s.logg.Info(ctx, "preorder.received (no email provider configured)")
}
