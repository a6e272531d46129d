package auth

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestIdentityFromCtx_roundTrip(t *testing.T) {
	id := Identity{ID: "user-1", Type: IdentityTypeOAuth2}
	ctx := WithIdentity(context.Background(), id)

	got, err := IdentityFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "user-1" || got.Type != IdentityTypeOAuth2 {
		t.Errorf("got %+v", got)
	}
}

func TestIdentityFromCtx_absent(t *testing.T) {
	if _, err := IdentityFromCtx(context.Background()); err == nil {
		t.Fatal("expected error for context without identity")
	}
}

func TestFeeWaiverFromCtx_defaultsFalse(t *testing.T) {
	if FeeWaiverFromCtx(context.Background()) {
		t.Error("expected false when roles middleware has not run")
	}
}

func TestIdentityFromRequest_parsesRoles(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderIdentity, "app-1")
	req.Header.Set(HeaderIdentityType, IdentityTypeAPIKey)
	req.Header.Set(HeaderAuthorisedKeyRoles, "* other-role")
	req.Header.Set(HeaderAuthorisedRoles, FreeCertifiedCopiesPermission)

	id := IdentityFromRequest(req)
	if !id.HasInternalUserRole() {
		t.Error("expected internal user role")
	}
	if !id.HasAuthorisedRole(FreeCertifiedCopiesPermission) {
		t.Error("expected fee waiver permission")
	}
	if id.HasAuthorisedRole("/admin/other") {
		t.Error("unexpected role match")
	}
}
