package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/apierrors"
	pkgvalidator "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/validator"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/models"
)

// ValidateItemPatch deserializes a merge-patch document into the restricted
// patchable-fields shape and runs its constraints. Returns the deserialized
// patch on success, or the structured errors to report.
//
// Unlike the create validator, an empty patch document is valid: absent
// fields mean "leave unchanged". A document that is malformed JSON or names
// any field outside the patchable shape yields a single fixed
// json-processing-error mapped to the object as a whole. Constraint
// violations are sorted by field path for determinism.
func ValidateItemPatch(body []byte) (*models.ItemPatch, []apierrors.APIError) {
	var p models.ItemPatch
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, []apierrors.APIError{apierrors.NewJSONProcessingError()}
	}

	err := pkgvalidator.Validate(&p)
	if err == nil {
		return &p, nil
	}

	violations := pkgvalidator.SortedViolations(err)
	apiErrs := make([]apierrors.APIError, 0, len(violations))
	for _, v := range violations {
		apiErrs = append(apiErrs, apierrors.NewValidationError(
			strings.ReplaceAll(v.Field, "_", "-")+"-error",
			v.Path,
			v.Field+": "+v.Message,
		))
	}
	return nil, apiErrs
}
