package companiesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/config"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/logger"
	ordersdomain "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/repositories"
)

// Client talks to the public Companies House API to resolve company profiles
// and filing history entries. It authenticates with an API key as the basic
// auth username, which is how that API expects keys to be presented.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     logger.Logger
}

var _ repositories.CompaniesGateway = (*Client)(nil)

// NewClient builds a Client from config. Outbound calls are traced via
// otelhttp and capped at 10 seconds.
func NewClient(cfg *config.Config, log logger.Logger) *Client {
	return &Client{
		baseURL: cfg.APIURL,
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log,
	}
}

type companyProfileResponse struct {
	CompanyName   string `json:"company_name"`
	CompanyNumber string `json:"company_number"`
}

type filingHistoryResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// CompanyProfile fetches the profile for a company number. A 404 from the
// upstream maps to ErrCompanyNotFound; any other failure maps to
// ErrUpstreamUnavailable.
func (c *Client) CompanyProfile(ctx context.Context, companyNumber string) (*repositories.CompanyProfile, error) {
	var body companyProfileResponse
	path := fmt.Sprintf("/company/%s", url.PathEscape(companyNumber))
	if err := c.get(ctx, path, ordersdomain.ErrCompanyNotFound, &body); err != nil {
		return nil, err
	}
	return &repositories.CompanyProfile{
		CompanyName:   body.CompanyName,
		CompanyNumber: body.CompanyNumber,
	}, nil
}

// FilingHistory fetches a single filing history entry. A 404 maps to
// ErrFilingHistoryNotFound; any other failure maps to ErrUpstreamUnavailable.
func (c *Client) FilingHistory(ctx context.Context, companyNumber, filingHistoryID string) (*repositories.FilingHistory, error) {
	var body filingHistoryResponse
	path := fmt.Sprintf("/company/%s/filing-history/%s",
		url.PathEscape(companyNumber), url.PathEscape(filingHistoryID))
	if err := c.get(ctx, path, ordersdomain.ErrFilingHistoryNotFound, &body); err != nil {
		return nil, err
	}
	return &repositories.FilingHistory{
		Date:        body.Date,
		Description: body.Description,
		Type:        body.Type,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, notFound error, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ordersdomain.ErrUpstreamUnavailable, err)
	}
	req.SetBasicAuth(c.apiKey, "")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "companies api request failed", "path", path, "error", err)
		return fmt.Errorf("%w: %v", ordersdomain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return notFound
	case resp.StatusCode != http.StatusOK:
		c.log.ErrorContext(ctx, "companies api returned unexpected status", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ordersdomain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ordersdomain.ErrUpstreamUnavailable, err)
	}
	return nil
}
