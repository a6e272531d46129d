package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/database"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/events"
	ordersdomain "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain"
	domainevents "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/events"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/models"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Each item is stored as one JSONB document keyed by its ID; the owning user
// and timestamps are mirrored into columns for querying without unpacking
// the document.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. The bus is used to publish ItemCreatedEvents in the
// same transaction as the save (transactional outbox); pass nil to disable
// publishing.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save persists a new item and publishes an ItemCreatedEvent within the same
// transaction. Returns ErrItemAlreadyExists on primary key collision.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (id, user_id, data, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.UserID, data, item.CreatedAt, item.UpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ordersdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an item document by ID. Returns ErrItemNotFound if absent.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	var data []byte
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT data FROM items WHERE id = $1`, id,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ordersdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}

	var item models.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("unmarshal item %s: %w", id, err)
	}
	return &item, nil
}

// Update replaces an existing item document wholesale. Last write wins;
// there is no version check between load and save.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE items SET data = $2, updated_at = $3 WHERE id = $1`,
		item.ID, data, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item rows affected: %w", err)
	}
	if n == 0 {
		return ordersdomain.ErrItemNotFound
	}
	return nil
}

// ItemOwner returns the owning user column for an item. Returns
// ErrItemNotFound if absent.
func (r *ItemRepository) ItemOwner(ctx context.Context, id string) (string, error) {
	var owner string
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT user_id FROM items WHERE id = $1`, id,
	).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ordersdomain.ErrItemNotFound
		}
		return "", fmt.Errorf("query item owner: %w", err)
	}
	return owner, nil
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:       uuid.New(),
		Version:       1,
		ItemID:        item.ID,
		UserID:        item.UserID,
		CompanyNumber: item.CompanyNumber,
		OccurredAt:    item.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicItemCreated, msg)
}
