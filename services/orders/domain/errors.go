package domain

import "errors"

// Sentinel errors for the orders domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested certified copy item does not exist.
	ErrItemNotFound = errors.New("certified copy item not found")

	// ErrItemAlreadyExists indicates an item with the same ID is already persisted.
	ErrItemAlreadyExists = errors.New("certified copy item already exists")

	// ErrUnauthorised indicates the caller's identity is missing, unrecognized,
	// or insufficient for the requested item.
	ErrUnauthorised = errors.New("unauthorised")

	// ErrCompanyNotFound indicates the upstream company profile lookup found no
	// company for the supplied number. Caller-correctable.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrFilingHistoryNotFound indicates the upstream filing history lookup found
	// no filing for a supplied filing history ID. Caller-correctable.
	ErrFilingHistoryNotFound = errors.New("filing history document not found")

	// ErrUpstreamUnavailable indicates a fault contacting an upstream collaborator
	// (5xx, connection failure, or a malformed response). Not caller-correctable.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrInvalidArgument indicates a required cost calculation input was absent.
	ErrInvalidArgument = errors.New("invalid argument")
)
