package repositories

import "context"

// CompanyProfile is the slice of the upstream company profile this service
// needs for enrichment.
type CompanyProfile struct {
	CompanyName   string
	CompanyNumber string
}

// FilingHistory is the slice of an upstream filing history entry used to
// populate a FilingHistoryDocument.
type FilingHistory struct {
	Date        string
	Description string
	Type        string
}

// CompaniesGateway fetches company and filing metadata from the upstream
// Companies House API. Calls are synchronous with no retries; failures map
// to the domain error taxonomy (ErrCompanyNotFound, ErrFilingHistoryNotFound,
// ErrUpstreamUnavailable).
type CompaniesGateway interface {
	CompanyProfile(ctx context.Context, companyNumber string) (*CompanyProfile, error)
	FilingHistory(ctx context.Context, companyNumber, filingHistoryID string) (*FilingHistory, error)
}

// DescriptionProvider renders the templated item description and its
// description values for a company number.
type DescriptionProvider interface {
	CertifiedCopyDescription(companyNumber string) (string, map[string]string)
}
