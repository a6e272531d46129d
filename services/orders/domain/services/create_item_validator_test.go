package services_test

import (
	"testing"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/models"
	domainsvcs "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/services"
)

func validCreateRequest() *models.CreateItemRequest {
	return &models.CreateItemRequest{
		CompanyNumber: "00006400",
		ItemOptions: &models.ItemOptionsRequest{
			FilingHistoryDocuments: []models.FilingHistoryDocumentRequest{
				{FilingHistoryID: "MzAwOTM2"},
			},
		},
		Quantity: 1,
	}
}

func TestValidateCreateItem_valid(t *testing.T) {
	if errs := domainsvcs.ValidateCreateItem(validCreateRequest()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateCreateItem_emptyRequest(t *testing.T) {
	errs := domainsvcs.ValidateCreateItem(&models.CreateItemRequest{})
	want := []string{
		"company_number: must not be null",
		"item_options: must not be null",
		"quantity: must not be null",
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %d: %v", len(want), len(errs), errs)
	}
	for i, w := range want {
		if errs[i] != w {
			t.Errorf("error %d: got %q, want %q", i, errs[i], w)
		}
	}
}

func TestValidateCreateItem_noFilingDocuments(t *testing.T) {
	req := validCreateRequest()
	req.ItemOptions.FilingHistoryDocuments = []models.FilingHistoryDocumentRequest{}
	errs := domainsvcs.ValidateCreateItem(req)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0] != "item_options.filing_history_documents: must not be empty" {
		t.Errorf("got %q", errs[0])
	}
}

func TestValidateCreateItem_missingFilingHistoryID(t *testing.T) {
	req := validCreateRequest()
	req.ItemOptions.FilingHistoryDocuments = []models.FilingHistoryDocumentRequest{{}}
	errs := domainsvcs.ValidateCreateItem(req)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0] != "item_options.filing_history_documents[0].filing_history_id: must not be null" {
		t.Errorf("got %q", errs[0])
	}
}

func TestValidateCreateItem_zeroQuantity(t *testing.T) {
	req := validCreateRequest()
	req.Quantity = 0
	errs := domainsvcs.ValidateCreateItem(req)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0] != "quantity: must not be null" {
		t.Errorf("got %q", errs[0])
	}
}

func TestValidateCreateItem_negativeQuantity(t *testing.T) {
	req := validCreateRequest()
	req.Quantity = -2
	errs := domainsvcs.ValidateCreateItem(req)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0] != "quantity: must be greater than or equal to 1" {
		t.Errorf("got %q", errs[0])
	}
}

func TestValidateCreateItem_invalidEnums(t *testing.T) {
	req := validCreateRequest()
	req.ItemOptions.DeliveryMethod = "courier"
	req.ItemOptions.DeliveryTimescale = "overnight"
	errs := domainsvcs.ValidateCreateItem(req)
	want := []string{
		"item_options.delivery_method: must be one of [postal collection]",
		"item_options.delivery_timescale: must be one of [standard same-day]",
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), errs)
	}
	for i, w := range want {
		if errs[i] != w {
			t.Errorf("error %d: got %q, want %q", i, errs[i], w)
		}
	}
}

func TestValidateCreateItem_collectionRequiresContactNames(t *testing.T) {
	req := validCreateRequest()
	req.ItemOptions.DeliveryMethod = "collection"
	req.ItemOptions.Forename = "  "
	req.ItemOptions.Surname = ""
	errs := domainsvcs.ValidateCreateItem(req)
	want := []string{
		"forename: must not be blank when delivery method is collection",
		"surname: must not be blank when delivery method is collection",
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), errs)
	}
	for i, w := range want {
		if errs[i] != w {
			t.Errorf("error %d: got %q, want %q", i, errs[i], w)
		}
	}
}

func TestValidateCreateItem_collectionWithNamesValid(t *testing.T) {
	req := validCreateRequest()
	req.ItemOptions.DeliveryMethod = "collection"
	req.ItemOptions.Forename = "Jane"
	req.ItemOptions.Surname = "Doe"
	if errs := domainsvcs.ValidateCreateItem(req); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

// Collection location is not required for collection delivery; only the
// contact name rule applies.
func TestValidateCreateItem_collectionWithoutLocationValid(t *testing.T) {
	req := validCreateRequest()
	req.ItemOptions.DeliveryMethod = "collection"
	req.ItemOptions.Forename = "Jane"
	req.ItemOptions.Surname = "Doe"
	req.ItemOptions.CollectionLocation = ""
	if errs := domainsvcs.ValidateCreateItem(req); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateCreateItem_invalidCollectionLocation(t *testing.T) {
	req := validCreateRequest()
	req.ItemOptions.CollectionLocation = "manchester"
	errs := domainsvcs.ValidateCreateItem(req)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0] != "item_options.collection_location: must be one of [belfast cardiff edinburgh london]" {
		t.Errorf("got %q", errs[0])
	}
}
