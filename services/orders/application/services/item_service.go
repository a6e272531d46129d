package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/logger"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/patch"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/models"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/repositories"
)

// ItemStore is the cache surface the item service needs. Satisfied by
// *cache.ItemCache; narrowed here so tests can fake it.
type ItemStore interface {
	Get(ctx context.Context, itemID string) (*models.Item, error)
	Set(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, itemID string) error
}

// ItemServiceDeps carries the collaborators of an ItemService.
type ItemServiceDeps struct {
	Repo         repositories.ItemRepository
	Cache        ItemStore
	Companies    repositories.CompaniesGateway
	Descriptions repositories.DescriptionProvider
	Costs        models.CostTable
	BasePath     string
	Logger       logger.Logger
}

// ItemService implements the item lifecycle: create with upstream enrichment,
// cached reads, and merge-patch updates. Requests are pre-validated by the
// handlers; the service assumes shape-valid input and owns enrichment,
// derivation, and persistence.
type ItemService struct {
	repo         repositories.ItemRepository
	cache        ItemStore
	companies    repositories.CompaniesGateway
	descriptions repositories.DescriptionProvider
	costs        models.CostTable
	basePath     string
	log          logger.Logger
}

// NewItemService constructs an ItemService. A nil Cache disables caching.
func NewItemService(deps ItemServiceDeps) *ItemService {
	return &ItemService{
		repo:         deps.Repo,
		cache:        deps.Cache,
		companies:    deps.Companies,
		descriptions: deps.Descriptions,
		costs:        deps.Costs,
		basePath:     deps.BasePath,
		log:          deps.Logger,
	}
}

// Create builds a full item from a validated create request, enriches it from
// the upstream company and filing history data, derives pricing and links,
// and persists it. Returns the item as persisted.
func (s *ItemService) Create(ctx context.Context, req *models.CreateItemRequest, userID string) (*models.Item, error) {
	profile, err := s.companies.CompanyProfile(ctx, req.CompanyNumber)
	if err != nil {
		return nil, err
	}

	opts := req.ItemOptions.Options()
	if err := s.enrichFilingDocuments(ctx, req.CompanyNumber, opts.FilingHistoryDocuments); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	description, descriptionValues := s.descriptions.CertifiedCopyDescription(profile.CompanyNumber)

	item := &models.Item{
		CompanyName:           profile.CompanyName,
		CompanyNumber:         profile.CompanyNumber,
		CreatedAt:             now,
		CustomerReference:     req.CustomerReference,
		Description:           description,
		DescriptionIdentifier: "certified-copy",
		DescriptionValues:     descriptionValues,
		Etag:                  models.NewEtag(),
		ID:                    models.NewItemID(),
		ItemOptions:           opts,
		Kind:                  models.Kind,
		PostageCost:           models.PostageCost,
		PostalDelivery:        opts.IsPostalDelivery(),
		Quantity:              req.Quantity,
		UpdatedAt:             now,
		UserID:                userID,
	}
	item.Links = models.Links{Self: s.basePath + "/" + item.ID}

	if err := s.deriveCosts(item); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item created",
		"item_id", item.ID,
		"company_number", item.CompanyNumber,
	)
	return item, nil
}

// GetByID returns an item, reading through the cache when one is configured.
// Cache misses fall back to the document store and warm the cache.
func (s *ItemService) GetByID(ctx context.Context, id string) (*models.Item, error) {
	if s.cache != nil {
		item, err := s.cache.Get(ctx, id)
		if err == nil {
			return item, nil
		}
		if err != redis.Nil {
			s.log.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, item); err != nil {
			s.log.WarnContext(ctx, "item cache warm failed", "item_id", id, "error", err)
		}
	}
	return item, nil
}

// Patch merges a pre-validated RFC 7396 patch document into the stored item,
// re-enriches and re-prices the result, and persists it whole. The cache entry
// is invalidated so the next read serves the updated document.
func (s *ItemService) Patch(ctx context.Context, id string, patchJSON []byte) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousCompany := item.CompanyNumber

	view := item.PatchableView()
	if err := patch.Apply(patchJSON, &view); err != nil {
		return nil, err
	}
	item.ApplyPatchable(view)

	if err := s.enrichFilingDocuments(ctx, item.CompanyNumber, item.ItemOptions.FilingHistoryDocuments); err != nil {
		return nil, err
	}

	// A changed company number refreshes the denormalized name and description.
	// Merging the number away entirely leaves the previous values in place.
	if item.CompanyNumber != "" && item.CompanyNumber != previousCompany {
		profile, err := s.companies.CompanyProfile(ctx, item.CompanyNumber)
		if err != nil {
			return nil, err
		}
		item.CompanyName = profile.CompanyName
		item.Description, item.DescriptionValues = s.descriptions.CertifiedCopyDescription(profile.CompanyNumber)
	}

	if err := s.deriveCosts(item); err != nil {
		return nil, err
	}

	item.UpdatedAt = time.Now().UTC()
	item.Etag = models.NewEtag()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, id); err != nil {
			s.log.WarnContext(ctx, "item cache invalidation failed", "item_id", id, "error", err)
		}
	}

	s.log.InfoContext(ctx, "item patched", "item_id", item.ID)
	return item, nil
}

// enrichFilingDocuments fills in date, description, and type for any document
// that has not been enriched yet. Documents that already carry a type were
// enriched on a previous pass and are left alone.
func (s *ItemService) enrichFilingDocuments(ctx context.Context, companyNumber string, docs []models.FilingHistoryDocument) error {
	for i := range docs {
		if docs[i].FilingHistoryType != "" {
			continue
		}
		filing, err := s.companies.FilingHistory(ctx, companyNumber, docs[i].FilingHistoryID)
		if err != nil {
			return err
		}
		docs[i].FilingHistoryDate = filing.Date
		docs[i].FilingHistoryDescription = filing.Description
		docs[i].FilingHistoryType = filing.Type
	}
	return nil
}

// deriveCosts recomputes the per-document costs, the item-level cost lines,
// and the total from the current delivery timescale and filing types. The
// item-level breakdown is priced from the first document's filing type.
func (s *ItemService) deriveCosts(item *models.Item) error {
	docs := item.ItemOptions.FilingHistoryDocuments
	timescale := item.ItemOptions.DeliveryTimescale

	for i := range docs {
		cost, err := models.CalculateCosts(timescale, docs[i].FilingHistoryType, s.costs)
		if err != nil {
			return fmt.Errorf("calculate filing document cost: %w", err)
		}
		docs[i].FilingHistoryCost = cost.CalculatedCost
	}

	if len(docs) == 0 {
		item.ItemCosts = nil
		item.TotalItemCost = models.PostageCost
		return nil
	}

	cost, err := models.CalculateCosts(timescale, docs[0].FilingHistoryType, s.costs)
	if err != nil {
		return fmt.Errorf("calculate item cost: %w", err)
	}
	item.ItemCosts = []models.ItemCost{cost}

	total, err := models.TotalItemCost(item.ItemCosts, item.PostageCost)
	if err != nil {
		return fmt.Errorf("total item cost: %w", err)
	}
	item.TotalItemCost = total
	return nil
}
