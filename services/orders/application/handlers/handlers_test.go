package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/auth"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/config"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/logger"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/application/handlers"
	appsvcs "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/application/services"
	ordersdomain "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/models"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/repositories"
)

const basePath = "/orderable/certified-copies"

type memRepo struct {
	items map[string]*models.Item
}

func (r *memRepo) Save(_ context.Context, item *models.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*models.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, ordersdomain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *memRepo) Update(_ context.Context, item *models.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return ordersdomain.ErrItemNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memRepo) ItemOwner(_ context.Context, id string) (string, error) {
	item, ok := r.items[id]
	if !ok {
		return "", ordersdomain.ErrItemNotFound
	}
	return item.UserID, nil
}

type memGateway struct{}

func (memGateway) CompanyProfile(_ context.Context, companyNumber string) (*repositories.CompanyProfile, error) {
	if companyNumber == "99999999" {
		return nil, ordersdomain.ErrCompanyNotFound
	}
	return &repositories.CompanyProfile{CompanyName: "Example Ltd", CompanyNumber: companyNumber}, nil
}

func (memGateway) FilingHistory(_ context.Context, _, _ string) (*repositories.FilingHistory, error) {
	return &repositories.FilingHistory{Date: "2010-02-12", Description: "change-person-director-company", Type: "CH01"}, nil
}

type memDescriptions struct{}

func (memDescriptions) CertifiedCopyDescription(companyNumber string) (string, map[string]string) {
	desc := fmt.Sprintf("certified copy for company %s", companyNumber)
	return desc, map[string]string{"company_number": companyNumber, "certified-copy-description": desc}
}

// newTestRouter mirrors the production route registration with in-memory
// infrastructure behind the services.
func newTestRouter() (*chi.Mux, *memRepo) {
	log := logger.New(&config.Config{LogLevel: "error"})
	repo := &memRepo{items: map[string]*models.Item{}}

	item := appsvcs.NewItemService(appsvcs.ItemServiceDeps{
		Repo:         repo,
		Companies:    memGateway{},
		Descriptions: memDescriptions{},
		Costs: models.CostTable{
			Standard:                 15,
			StandardNewIncorporation: 30,
			SameDay:                  50,
			SameDayNewIncorporation:  100,
		},
		BasePath: basePath,
		Logger:   log,
	})
	svcs := &appsvcs.Services{Item: item, Owners: repo}

	r := chi.NewRouter()
	r.Route(basePath, func(r chi.Router) {
		r.Use(auth.Authentication(log))
		r.Use(auth.CheckAuthorisedRoles())
		r.Use(auth.AuthoriseItemAccess(svcs.Owners, log))

		r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
		r.Patch("/{id}", handlers.NewPatchItemHandler(svcs).Execute)
	})
	return r, repo
}

func oauthRequest(method, target, body, user string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set(auth.HeaderIdentity, user)
	req.Header.Set(auth.HeaderIdentityType, auth.IdentityTypeOAuth2)
	return req
}

func createBody() string {
	return `{
		"company_number": "00000000",
		"item_options": {
			"filing_history_documents": [{"filing_history_id": "MzAwOTM2"}]
		},
		"quantity": 5
	}`
}

func TestPostItem_created(t *testing.T) {
	r, _ := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPost, basePath+"/", createBody(), "user-1"))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	for _, want := range []string{
		`"company_number":"00000000"`,
		`"postal_delivery":true`,
		`"quantity":5`,
		`"kind":"item#certified-copy"`,
		`"user_id":"user-1"`,
		`"total_item_cost":"15"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("response missing %s: %s", want, body)
		}
	}
}

func TestPostItem_validationErrors(t *testing.T) {
	r, _ := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPost, basePath+"/", `{}`, "user-1"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp struct {
		Status int      `json:"status"`
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{
		"company_number: must not be null",
		"item_options: must not be null",
		"quantity: must not be null",
	}
	if len(resp.Errors) != len(want) {
		t.Fatalf("errors: got %v", resp.Errors)
	}
	for i, wantErr := range want {
		if resp.Errors[i] != wantErr {
			t.Errorf("error %d: got %q, want %q", i, resp.Errors[i], wantErr)
		}
	}
}

func TestPostItem_malformedBody(t *testing.T) {
	r, _ := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPost, basePath+"/", `{"company_number":`, "user-1"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPostItem_unknownCompany(t *testing.T) {
	r, _ := newTestRouter()
	body := strings.Replace(createBody(), "00000000", "99999999", 1)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPost, basePath+"/", body, "user-1"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetItem_ownItem(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPost, basePath+"/", createBody(), "user-1"))
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", w.Code)
	}
	var created models.Item
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodGet, basePath+"/"+created.ID, "", "user-1"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got models.Item
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("id: got %q", got.ID)
	}
}

func TestGetItem_otherUsersItemUnauthorized(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPost, basePath+"/", createBody(), "user-1"))
	var created models.Item
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodGet, basePath+"/"+created.ID, "", "user-2"))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestGetItem_missingItem(t *testing.T) {
	r, _ := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodGet, basePath+"/CCD-000000-000000", "", "user-1"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetItem_apiKeyWithInternalRole(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPost, basePath+"/", createBody(), "user-1"))
	var created models.Item
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	req := httptest.NewRequest(http.MethodGet, basePath+"/"+created.ID, http.NoBody)
	req.Header.Set(auth.HeaderIdentity, "app-key-1")
	req.Header.Set(auth.HeaderIdentityType, auth.IdentityTypeAPIKey)
	req.Header.Set(auth.HeaderAuthorisedKeyRoles, "*")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPatchItem_success(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPost, basePath+"/", createBody(), "user-1"))
	var created models.Item
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPatch, basePath+"/"+created.ID,
		`{"quantity": 2, "item_options": {"delivery_timescale": "same-day"}}`, "user-1"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var patched models.Item
	if err := json.Unmarshal(w.Body.Bytes(), &patched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if patched.Quantity != 2 {
		t.Errorf("quantity: got %d", patched.Quantity)
	}
	if patched.TotalItemCost != "50" {
		t.Errorf("total: got %q", patched.TotalItemCost)
	}
	if patched.Etag == created.Etag {
		t.Error("etag should rotate")
	}
}

func TestPatchItem_zeroQuantity(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPost, basePath+"/", createBody(), "user-1"))
	var created models.Item
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPatch, basePath+"/"+created.ID, `{"quantity": 0}`, "user-1"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp struct {
		Errors []map[string]any `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("errors: got %v", resp.Errors)
	}
	e := resp.Errors[0]
	if e["error"] != "quantity-error" || e["location"] != "quantity" {
		t.Errorf("unexpected error detail: %v", e)
	}
	if e["message"] != "quantity: must be greater than or equal to 1" {
		t.Errorf("message: got %v", e["message"])
	}
}

func TestPatchItem_unknownField(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPost, basePath+"/", createBody(), "user-1"))
	var created models.Item
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPatch, basePath+"/"+created.ID, `{"etag": "tamper"}`, "user-1"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "json-processing-error") {
		t.Errorf("expected json-processing-error: %s", w.Body.String())
	}
}

func TestPatchItem_missingItem(t *testing.T) {
	r, _ := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, oauthRequest(http.MethodPatch, basePath+"/CCD-000000-000000", `{"quantity": 2}`, "user-1"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPostItem_noIdentityHeaders(t *testing.T) {
	r, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, basePath+"/", strings.NewReader(createBody()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
