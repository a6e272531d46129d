// Package auth implements the identity and authorization pipeline for the
// certified copies API. Identity is established from trusted gateway headers
// (set by the fronting ERIC proxy), never from client credentials handled
// here. The pipeline is an explicit ordered chain of decision middlewares:
// Authentication (headers present) → item access authorization (role or
// ownership).
package auth

import (
	"net/http"
	"strings"
)

// Trusted caller-identity headers set by the fronting gateway.
const (
	HeaderIdentity           = "ERIC-Identity"
	HeaderIdentityType       = "ERIC-Identity-Type"
	HeaderAuthorisedKeyRoles = "ERIC-Authorised-Key-Roles"
	HeaderAuthorisedRoles    = "ERIC-Authorised-Roles"
)

// Recognized identity types.
const (
	IdentityTypeOAuth2 = "oauth2"
	IdentityTypeAPIKey = "key"
)

// InternalUserRole is the key-role value granting internal application
// privileges to API-key callers.
const InternalUserRole = "*"

// FreeCertifiedCopiesPermission is the authorised-role value that grants a
// fee waiver elsewhere in the platform. It is orthogonal to item ownership;
// the current pricing policy applies no discount either way.
const FreeCertifiedCopiesPermission = "/admin/free-certified-copies"

// Identity is the authenticated caller, as asserted by the gateway headers.
type Identity struct {
	// ID is the caller identity value: a user ID for oauth2 callers, an
	// application key identifier for key callers.
	ID string
	// Type is the identity type tag: "oauth2", "key", or anything else the
	// gateway forwarded (treated as unrecognized).
	Type string
	// KeyRoles are the space-separated roles from ERIC-Authorised-Key-Roles.
	// Only meaningful for key callers.
	KeyRoles []string
	// AuthorisedRoles are the space-separated roles from ERIC-Authorised-Roles.
	AuthorisedRoles []string
}

// IdentityFromRequest reads the caller identity from the trusted headers.
func IdentityFromRequest(r *http.Request) Identity {
	return Identity{
		ID:              r.Header.Get(HeaderIdentity),
		Type:            r.Header.Get(HeaderIdentityType),
		KeyRoles:        strings.Fields(r.Header.Get(HeaderAuthorisedKeyRoles)),
		AuthorisedRoles: strings.Fields(r.Header.Get(HeaderAuthorisedRoles)),
	}
}

// HasInternalUserRole reports whether an API-key caller carries the internal
// user role.
func (id Identity) HasInternalUserRole() bool {
	for _, role := range id.KeyRoles {
		if role == InternalUserRole {
			return true
		}
	}
	return false
}

// HasAuthorisedRole reports whether the caller carries the given role in
// ERIC-Authorised-Roles.
func (id Identity) HasAuthorisedRole(role string) bool {
	for _, r := range id.AuthorisedRoles {
		if r == role {
			return true
		}
	}
	return false
}
