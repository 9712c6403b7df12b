package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/opheliasgarden/nursery-backend/api/middleware"
	"github.com/opheliasgarden/nursery-backend/api/responses"
	"github.com/opheliasgarden/nursery-backend/api/validators"
	"github.com/opheliasgarden/nursery-backend/internal/cart"
	"github.com/opheliasgarden/nursery-backend/internal/preorder"
	pkgerrors "github.com/opheliasgarden/nursery-backend/pkg/errors"
	"github.com/opheliasgarden/nursery-backend/pkg/logger"
)

// SubmitPreOrder accepts the storefront checkout form. The body is form
// encoded with the cart snapshot as a JSON string in the items field, which
// is what the site's form submission produces. Field validation runs before
// the empty-cart business check, so a bad email is reported even when the
// cart is also empty. The visitor's cart is cleared only after the order is
// accepted.
func SubmitPreOrder(svc preorder.Service, carts cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseForm(); err != nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body"))
			return
		}

		input := preorder.Input{
			CustomerName:  strings.TrimSpace(r.PostFormValue("customerName")),
			CustomerEmail: strings.TrimSpace(r.PostFormValue("customerEmail")),
			CustomerPhone: strings.TrimSpace(r.PostFormValue("customerPhone")),
			CustomerNotes: strings.TrimSpace(r.PostFormValue("customerNotes")),
		}

		if rawItems := r.PostFormValue("items"); rawItems != "" {
			if err := json.Unmarshal([]byte(rawItems), &input.Items); err != nil {
				responses.WriteError(ctx, logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart data"))
				return
			}
		}

		if err := validators.ValidateStruct(&input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		confirmation, err := svc.Submit(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if token := middleware.CartTokenFromContext(ctx); token != "" {
			if err := carts.Clear(ctx, token); err != nil && logg != nil {
				logg.Warn(ctx, "cart clear after pre-order failed")
			}
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}
