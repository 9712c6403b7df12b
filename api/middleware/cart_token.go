package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/opheliasgarden/nursery-backend/pkg/logger"
)

const cartCookieName = "ophelia_cart"

type cartTokenKey struct{}

// CartToken identifies the anonymous visitor's cart. A first visit gets a
// fresh UUID cookie; later visits reuse it, so the cart survives page loads
// the same way browser storage would. Malformed cookies are replaced.
func CartToken(logg *logger.Logger, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if cookie, err := r.Cookie(cartCookieName); err == nil {
				if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				token = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cartCookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int((30 * 24 * time.Hour).Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), cartTokenKey{}, token)
			if logg != nil {
				ctx = logg.WithCartToken(ctx, token)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartTokenFromContext returns the visitor's cart token set by CartToken.
func CartTokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(cartTokenKey{}).(string); ok {
		return token
	}
	return ""
}
