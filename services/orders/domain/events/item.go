package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicItemCreated is the Watermill topic published when a certified copy
// item is created.
const TopicItemCreated = "certified-copy-item.created"

// ItemCreatedEvent is published after a new item is persisted, within the
// same transaction. Consumers subscribe via
// EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID       uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version       int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID        string    `json:"item_id"`
	UserID        string    `json:"user_id"`
	CompanyNumber string    `json:"company_number"`
	OccurredAt    time.Time `json:"occurred_at"`
}
