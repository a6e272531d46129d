package repositories

import (
	"context"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/models"
)

// ItemRepository is the persistence interface for the Item document.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Save persists a new Item. Returns ErrItemAlreadyExists if the ID is taken.
	Save(ctx context.Context, item *models.Item) error

	// GetByID retrieves an Item. Returns ErrItemNotFound if absent.
	GetByID(ctx context.Context, id string) (*models.Item, error)

	// Update replaces an existing Item document wholesale (last write wins;
	// no optimistic concurrency control). Returns ErrItemNotFound if absent.
	Update(ctx context.Context, item *models.Item) error

	// ItemOwner returns the owning user of an item without loading the whole
	// document. Returns ErrItemNotFound if absent; an empty owner with nil
	// error means no user was recorded at creation (broken contract).
	ItemOwner(ctx context.Context, id string) (string, error)
}
