// Package services contains stateless domain services for the orders bounded
// context: the create and patch request validators. They enforce business
// rules over the request shapes and have no dependencies beyond the domain
// layer and the shared validator wrapper.
package services

import (
	"strings"

	pkgvalidator "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/validator"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/models"
)

// blankContactNameMessage is the fixed message for missing contact names on
// collection-delivery orders.
const blankContactNameMessage = "must not be blank when delivery method is collection"

// ValidateCreateItem checks a create request and returns the field errors as
// plain strings, "<field path>: <message>", in field declaration order.
// An empty slice means the request is valid. Never panics or errors.
//
// Rules beyond the struct-tag constraints: when delivery method is
// collection, forename and surname must be non-blank. Collection location is
// not required for collection delivery.
func ValidateCreateItem(req *models.CreateItemRequest) []string {
	var errs []string

	if err := pkgvalidator.Validate(req); err != nil {
		for _, v := range pkgvalidator.Violations(err) {
			errs = append(errs, v.Path+": "+v.Message)
		}
	}

	opts := req.ItemOptions
	if opts == nil {
		// Absent options raise no nested errors; the top-level required
		// violation is already reported above.
		return errs
	}

	if opts.DeliveryMethod == string(models.DeliveryMethodCollection) {
		if strings.TrimSpace(opts.Forename) == "" {
			errs = append(errs, "forename: "+blankContactNameMessage)
		}
		if strings.TrimSpace(opts.Surname) == "" {
			errs = append(errs, "surname: "+blankContactNameMessage)
		}
	}

	return errs
}
