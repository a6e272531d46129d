package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const (
	identityKey  contextKey = "identity"
	feeWaiverKey contextKey = "fee_waiver"
)

// ErrIdentityNotFound is returned when no Identity exists in the request
// context. Handlers should return 401 when this error occurs.
var ErrIdentityNotFound = errors.New("identity not found in context")

// IdentityFromCtx extracts the authenticated caller identity from the request
// context. Returns ErrIdentityNotFound if the Authentication middleware has
// not run (unauthenticated request).
func IdentityFromCtx(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.Type == "" || id.ID == "" {
		return Identity{}, ErrIdentityNotFound
	}
	return id, nil
}

// WithIdentity returns a new context with the given Identity attached.
// Used by the Authentication middleware after reading the gateway headers.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FeeWaiverFromCtx reports whether the caller carries the fee-waiver
// permission. Defaults to false when the roles middleware has not run.
func FeeWaiverFromCtx(ctx context.Context) bool {
	waived, ok := ctx.Value(feeWaiverKey).(bool)
	return ok && waived
}

// withFeeWaiver returns a new context recording the caller's fee-waiver
// entitlement.
func withFeeWaiver(ctx context.Context, waived bool) context.Context {
	return context.WithValue(ctx, feeWaiverKey, waived)
}
