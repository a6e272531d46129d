package models

import "time"

// Kind is the resource kind tag carried on every certified copy item.
const Kind = "item#certified-copy"

// DeliveryMethod selects how the certified copy reaches the customer.
type DeliveryMethod string

const (
	DeliveryMethodPostal     DeliveryMethod = "postal"
	DeliveryMethodCollection DeliveryMethod = "collection"
)

// DeliveryTimescale drives the pricing tier.
type DeliveryTimescale string

const (
	DeliveryTimescaleStandard DeliveryTimescale = "standard"
	DeliveryTimescaleSameDay  DeliveryTimescale = "same-day"
)

// CollectionLocation is the office a collection-delivery order is picked up from.
type CollectionLocation string

const (
	CollectionLocationBelfast   CollectionLocation = "belfast"
	CollectionLocationCardiff   CollectionLocation = "cardiff"
	CollectionLocationEdinburgh CollectionLocation = "edinburgh"
	CollectionLocationLondon    CollectionLocation = "london"
)

// FilingHistoryDocument references one historical company filing. The client
// supplies only the ID; date, description, type, and cost are populated
// server-side from the filing history lookup.
type FilingHistoryDocument struct {
	FilingHistoryCost        string `json:"filing_history_cost,omitempty"`
	FilingHistoryDate        string `json:"filing_history_date,omitempty"`
	FilingHistoryDescription string `json:"filing_history_description,omitempty"`
	FilingHistoryID          string `json:"filing_history_id"`
	FilingHistoryType        string `json:"filing_history_type,omitempty"`
}

// ItemOptions is the nested delivery/options value object on an Item.
type ItemOptions struct {
	CollectionLocation     CollectionLocation      `json:"collection_location,omitempty"`
	ContactNumber          string                  `json:"contact_number,omitempty"`
	DeliveryMethod         DeliveryMethod          `json:"delivery_method,omitempty"`
	DeliveryTimescale      DeliveryTimescale       `json:"delivery_timescale,omitempty"`
	FilingHistoryDocuments []FilingHistoryDocument `json:"filing_history_documents,omitempty"`
	Forename               string                  `json:"forename,omitempty"`
	Surname                string                  `json:"surname,omitempty"`
}

// Links holds the computed resource links for an item.
type Links struct {
	Self string `json:"self"`
}

// Item is one certified copy order line. It is built whole at creation and
// replaced whole on patch; the only in-place mutation path is the patch
// operation, which swaps in a new value before the single persist.
//
// Fields are declared in alphabetical json-key order so the serialized
// document lists keys alphabetically.
type Item struct {
	CompanyName           string            `json:"company_name"`
	CompanyNumber         string            `json:"company_number"`
	CreatedAt             time.Time         `json:"created_at"`
	CustomerReference     string            `json:"customer_reference,omitempty"`
	Description           string            `json:"description"`
	DescriptionIdentifier string            `json:"description_identifier"`
	DescriptionValues     map[string]string `json:"description_values"`
	Etag                  string            `json:"etag"`
	ID                    string            `json:"id"`
	ItemCosts             []ItemCost        `json:"item_costs"`
	ItemOptions           ItemOptions       `json:"item_options"`
	Kind                  string            `json:"kind"`
	Links                 Links             `json:"links"`
	PostageCost           string            `json:"postage_cost"`
	PostalDelivery        bool              `json:"postal_delivery"`
	Quantity              int               `json:"quantity"`
	TotalItemCost         string            `json:"total_item_cost"`
	UpdatedAt             time.Time         `json:"updated_at"`
	UserID                string            `json:"user_id"`
}

// IsPostalDelivery reports whether the item's delivery method is postal.
func (o ItemOptions) IsPostalDelivery() bool {
	return o.DeliveryMethod == DeliveryMethodPostal
}
