package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/apierrors"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/logger"
	ordersdomain "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain"
)

// OwnerLookup resolves the owning user of a persisted item.
// Returns domain.ErrItemNotFound when no item exists for the ID; an empty
// owner with a nil error means the stored item has no user recorded.
type OwnerLookup interface {
	ItemOwner(ctx context.Context, itemID string) (string, error)
}

// Authentication enforces that both trusted identity headers are present.
// On success the Identity is injected into the request context; otherwise the
// request is rejected with 401 and no body detail.
//
// After this middleware, handlers can safely call auth.IdentityFromCtx(r.Context()).
func Authentication(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := IdentityFromRequest(r)
			if id.Type == "" {
				log.WarnContext(r.Context(), "request rejected: no identity type header")
				apierrors.Write(w, http.StatusUnauthorized)
				return
			}
			if id.ID == "" {
				log.WarnContext(r.Context(), "request rejected: no identity header")
				apierrors.Write(w, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// CheckAuthorisedRoles records whether the caller carries the fee-waiver
// permission in ERIC-Authorised-Roles. The flag is orthogonal to ownership
// and never blocks a request; downstream pricing may consult it.
func CheckAuthorisedRoles() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := IdentityFromCtx(r.Context())
			waived := err == nil && id.HasAuthorisedRole(FreeCertifiedCopiesPermission)
			next.ServeHTTP(w, r.WithContext(withFeeWaiver(r.Context(), waived)))
		})
	}
}

// AuthoriseItemAccess is the ownership/role decision gate. It must run after
// Authentication.
//
// Decision table:
//   - API-key caller: permitted only for GET requests when the internal user
//     role is present; everything else is 401.
//   - OAuth2 caller: POST is permitted unconditionally (no resource exists
//     yet to own). Any other method requires the item named by the {id} path
//     parameter to exist (404 otherwise), to have a recorded owner (401
//     otherwise — broken contract), and for that owner to equal the caller
//     (401 otherwise).
//   - Any other identity type: 401.
//
// Note the ownership path deliberately reports 404 before the caller's
// entitlement is known, trading a small existence leak for a friendlier API.
func AuthoriseItemAccess(owners OwnerLookup, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := IdentityFromCtx(r.Context())
			if err != nil {
				apierrors.Write(w, http.StatusUnauthorized)
				return
			}

			switch id.Type {
			case IdentityTypeAPIKey:
				if r.Method == http.MethodGet && id.HasInternalUserRole() {
					next.ServeHTTP(w, r)
					return
				}
				log.WarnContext(r.Context(), "api key caller not permitted",
					"method", r.Method, "internal_role", id.HasInternalUserRole())
				apierrors.Write(w, http.StatusUnauthorized)

			case IdentityTypeOAuth2:
				if r.Method == http.MethodPost {
					next.ServeHTTP(w, r)
					return
				}

				itemID := chi.URLParam(r, "id")
				owner, err := owners.ItemOwner(r.Context(), itemID)
				if err != nil {
					if errors.Is(err, ordersdomain.ErrItemNotFound) {
						apierrors.WriteStrings(w, http.StatusNotFound, err.Error())
						return
					}
					log.ErrorContext(r.Context(), "owner lookup failed", "item_id", itemID, "error", err)
					apierrors.Write(w, http.StatusInternalServerError)
					return
				}
				if owner == "" {
					log.ErrorContext(r.Context(), "item has no owner recorded; contract broken", "item_id", itemID)
					apierrors.Write(w, http.StatusUnauthorized)
					return
				}
				if owner != id.ID {
					log.WarnContext(r.Context(), "caller is not the item owner", "item_id", itemID)
					apierrors.Write(w, http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r)

			default:
				log.WarnContext(r.Context(), "unrecognized identity type", "identity_type", id.Type)
				apierrors.Write(w, http.StatusUnauthorized)
			}
		})
	}
}
