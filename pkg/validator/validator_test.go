package validator_test

import (
	"testing"

	pkgvalidator "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/validator"
)

type nestedDoc struct {
	DocID string `json:"doc_id" validate:"required"`
}

type sampleStruct struct {
	CompanyNumber string      `json:"company_number" validate:"required"`
	Quantity      int         `json:"quantity" validate:"required,gte=1"`
	Timescale     string      `json:"delivery_timescale" validate:"omitempty,oneof=standard same-day"`
	Docs          []nestedDoc `json:"docs" validate:"required,gt=0,dive"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		CompanyNumber: "00006400",
		Quantity:      1,
		Docs:          []nestedDoc{{DocID: "MzAwOTM2"}},
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestViolations_requiredMessage(t *testing.T) {
	s := sampleStruct{Quantity: 1, Docs: []nestedDoc{{DocID: "x"}}}
	vs := pkgvalidator.Violations(pkgvalidator.Validate(&s))
	if len(vs) != 1 {
		t.Fatalf("expected 1 violation, got %d: %+v", len(vs), vs)
	}
	if vs[0].Path != "company_number" {
		t.Errorf("path: got %q, want %q", vs[0].Path, "company_number")
	}
	if vs[0].Message != "must not be null" {
		t.Errorf("message: got %q, want %q", vs[0].Message, "must not be null")
	}
}

func TestViolations_gteMessage(t *testing.T) {
	s := sampleStruct{CompanyNumber: "00006400", Quantity: -1, Docs: []nestedDoc{{DocID: "x"}}}
	vs := pkgvalidator.Violations(pkgvalidator.Validate(&s))
	if len(vs) != 1 {
		t.Fatalf("expected 1 violation, got %d: %+v", len(vs), vs)
	}
	if vs[0].Message != "must be greater than or equal to 1" {
		t.Errorf("message: got %q", vs[0].Message)
	}
}

func TestViolations_emptySliceMessage(t *testing.T) {
	s := sampleStruct{CompanyNumber: "00006400", Quantity: 1, Docs: []nestedDoc{}}
	vs := pkgvalidator.Violations(pkgvalidator.Validate(&s))
	if len(vs) != 1 {
		t.Fatalf("expected 1 violation, got %d: %+v", len(vs), vs)
	}
	if vs[0].Message != "must not be empty" {
		t.Errorf("message: got %q, want %q", vs[0].Message, "must not be empty")
	}
}

func TestViolations_oneofMessage(t *testing.T) {
	s := sampleStruct{CompanyNumber: "00006400", Quantity: 1, Timescale: "overnight", Docs: []nestedDoc{{DocID: "x"}}}
	vs := pkgvalidator.Violations(pkgvalidator.Validate(&s))
	if len(vs) != 1 {
		t.Fatalf("expected 1 violation, got %d: %+v", len(vs), vs)
	}
	if vs[0].Message != "must be one of [standard same-day]" {
		t.Errorf("message: got %q", vs[0].Message)
	}
}

func TestViolations_nestedPath(t *testing.T) {
	s := sampleStruct{CompanyNumber: "00006400", Quantity: 1, Docs: []nestedDoc{{DocID: ""}}}
	vs := pkgvalidator.Violations(pkgvalidator.Validate(&s))
	if len(vs) != 1 {
		t.Fatalf("expected 1 violation, got %d: %+v", len(vs), vs)
	}
	if vs[0].Path != "docs[0].doc_id" {
		t.Errorf("path: got %q, want %q", vs[0].Path, "docs[0].doc_id")
	}
	if vs[0].Field != "doc_id" {
		t.Errorf("field: got %q, want %q", vs[0].Field, "doc_id")
	}
}

func TestViolations_declarationOrder(t *testing.T) {
	s := sampleStruct{}
	vs := pkgvalidator.Violations(pkgvalidator.Validate(&s))
	if len(vs) != 3 {
		t.Fatalf("expected 3 violations, got %d: %+v", len(vs), vs)
	}
	want := []string{"company_number", "quantity", "docs"}
	for i, w := range want {
		if vs[i].Path != w {
			t.Errorf("violation %d: got path %q, want %q", i, vs[i].Path, w)
		}
	}
}

func TestSortedViolations_sortsByPath(t *testing.T) {
	type shape struct {
		Zed   string `json:"zed" validate:"required"`
		Alpha string `json:"alpha" validate:"required"`
	}
	vs := pkgvalidator.SortedViolations(pkgvalidator.Validate(&shape{}))
	if len(vs) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(vs))
	}
	if vs[0].Path != "alpha" || vs[1].Path != "zed" {
		t.Errorf("unexpected order: %q, %q", vs[0].Path, vs[1].Path)
	}
}

func TestViolations_nilError(t *testing.T) {
	if vs := pkgvalidator.Violations(nil); vs != nil {
		t.Errorf("expected nil, got %+v", vs)
	}
}
