// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/apierrors"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/patch"
	ordersdomain "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain"
)

// WriteError maps err to an HTTP status code and writes the standard
// {"status": ..., "errors": [...]} payload. Uses errors.Is() so wrapped
// sentinel errors are matched correctly. Defaults to 500 Internal Server
// Error for unrecognized errors. Unauthorised errors carry no detail beyond
// the status.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusUnauthorized {
		apierrors.Write(w, status)
		return
	}
	apierrors.WriteStrings(w, status, err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ordersdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, ordersdomain.ErrUnauthorised):
		return http.StatusUnauthorized // 401
	case errors.Is(err, ordersdomain.ErrCompanyNotFound),
		errors.Is(err, ordersdomain.ErrFilingHistoryNotFound):
		return http.StatusBadRequest // 400, caller supplied an unknown reference
	case errors.Is(err, ordersdomain.ErrItemAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, ordersdomain.ErrUpstreamUnavailable),
		errors.Is(err, patch.ErrApplication):
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
