package models

// ItemPatch is the restricted patchable-fields shape a merge-patch document
// must deserialize into. Any top-level or nested field outside this shape is
// rejected as a json-processing-error before merging. All fields are
// pointers: absent means "leave unchanged" and is distinct from a zero value.
type ItemPatch struct {
	CompanyNumber     *string           `json:"company_number,omitempty"`
	CustomerReference *string           `json:"customer_reference,omitempty"`
	ItemOptions       *ItemOptionsPatch `json:"item_options,omitempty"`
	Quantity          *int              `json:"quantity,omitempty" validate:"omitempty,gte=1"`
}

// ItemOptionsPatch is the patchable nested options shape.
type ItemOptionsPatch struct {
	CollectionLocation     *string                        `json:"collection_location,omitempty" validate:"omitempty,oneof=belfast cardiff edinburgh london"`
	ContactNumber          *string                        `json:"contact_number,omitempty"`
	DeliveryMethod         *string                        `json:"delivery_method,omitempty" validate:"omitempty,oneof=postal collection"`
	DeliveryTimescale      *string                        `json:"delivery_timescale,omitempty" validate:"omitempty,oneof=standard same-day"`
	FilingHistoryDocuments []FilingHistoryDocumentRequest `json:"filing_history_documents,omitempty" validate:"omitempty,gt=0,dive"`
	Forename               *string                        `json:"forename,omitempty"`
	Surname                *string                        `json:"surname,omitempty"`
}

// PatchableItemData is the merge target: the subset of an Item a client may
// modify. The merge-patch engine serializes this view, merges the patch
// document into it, and the service writes the result back onto the Item.
type PatchableItemData struct {
	CompanyNumber     string       `json:"company_number,omitempty"`
	CustomerReference string       `json:"customer_reference,omitempty"`
	ItemOptions       *ItemOptions `json:"item_options,omitempty"`
	Quantity          int          `json:"quantity,omitempty"`
}

// PatchableView extracts the client-modifiable subset of an item.
func (i *Item) PatchableView() PatchableItemData {
	opts := i.ItemOptions
	return PatchableItemData{
		CompanyNumber:     i.CompanyNumber,
		CustomerReference: i.CustomerReference,
		ItemOptions:       &opts,
		Quantity:          i.Quantity,
	}
}

// ApplyPatchable writes a merged patchable view back onto the item. System
// fields (ID, owner, timestamps, derived values) are untouched; derived
// pricing fields are recomputed by the caller afterwards.
func (i *Item) ApplyPatchable(view PatchableItemData) {
	i.CompanyNumber = view.CompanyNumber
	i.CustomerReference = view.CustomerReference
	i.Quantity = view.Quantity
	if view.ItemOptions != nil {
		i.ItemOptions = *view.ItemOptions
	} else {
		i.ItemOptions = ItemOptions{}
	}
	i.PostalDelivery = i.ItemOptions.IsPostalDelivery()
}
