package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/opheliasgarden/nursery-backend/api/responses"
	pkgerrors "github.com/opheliasgarden/nursery-backend/pkg/errors"
	"github.com/opheliasgarden/nursery-backend/pkg/logger"
)

// Pinger is the readiness view of the cart store.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// HealthReady fails when the cart store cannot be reached, so the platform
// stops routing traffic until Redis is back.
func HealthReady(store Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if store != nil {
			if err := store.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cart store unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
