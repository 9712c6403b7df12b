package email

import (
	"github.com/opheliasgarden/nursery-backend/internal/preorder"
	"github.com/opheliasgarden/nursery-backend/pkg/config"
	"github.com/opheliasgarden/nursery-backend/pkg/logger"
)

// NewProvider returns the configured notification sender, or nil when email
// is not set up. Callers treat a nil notifier as "log the order instead".
func NewProvider(cfg config.EmailConfig, logg *logger.Logger) (preorder.Notifier, error) {
	if !cfg.Configured() {
		return nil, nil
	}
	return NewResend(ResendParams{
		APIKey:  cfg.ResendAPIKey,
		From:    cfg.OrderFrom,
		To:      cfg.OrderTo,
		Timeout: cfg.SendTimeout,
		Logger:  logg,
	})
}
