package models

// CreateItemRequest is the client-writable shape of POST {base}.
// Field declaration order is significant: create-path validation errors are
// reported in this order.
type CreateItemRequest struct {
	CompanyNumber     string              `json:"company_number" validate:"required"`
	CustomerReference string              `json:"customer_reference"`
	ItemOptions       *ItemOptionsRequest `json:"item_options" validate:"required"`
	Quantity          int                 `json:"quantity" validate:"required,gte=1"`
}

// ItemOptionsRequest is the client-writable item options shape. Delivery
// method and timescale default to postal/standard when omitted.
type ItemOptionsRequest struct {
	CollectionLocation     string                         `json:"collection_location" validate:"omitempty,oneof=belfast cardiff edinburgh london"`
	ContactNumber          string                         `json:"contact_number"`
	DeliveryMethod         string                         `json:"delivery_method" validate:"omitempty,oneof=postal collection"`
	DeliveryTimescale      string                         `json:"delivery_timescale" validate:"omitempty,oneof=standard same-day"`
	FilingHistoryDocuments []FilingHistoryDocumentRequest `json:"filing_history_documents" validate:"required,gt=0,dive"`
	Forename               string                         `json:"forename"`
	Surname                string                         `json:"surname"`
}

// FilingHistoryDocumentRequest carries the client-supplied filing reference;
// everything else on the document is populated server-side.
type FilingHistoryDocumentRequest struct {
	FilingHistoryID string `json:"filing_history_id" validate:"required"`
}

// Options converts the request options into domain ItemOptions, applying the
// postal/standard defaults.
func (r *ItemOptionsRequest) Options() ItemOptions {
	opts := ItemOptions{
		CollectionLocation: CollectionLocation(r.CollectionLocation),
		ContactNumber:      r.ContactNumber,
		DeliveryMethod:     DeliveryMethod(r.DeliveryMethod),
		DeliveryTimescale:  DeliveryTimescale(r.DeliveryTimescale),
		Forename:           r.Forename,
		Surname:            r.Surname,
	}
	if opts.DeliveryMethod == "" {
		opts.DeliveryMethod = DeliveryMethodPostal
	}
	if opts.DeliveryTimescale == "" {
		opts.DeliveryTimescale = DeliveryTimescaleStandard
	}
	for _, d := range r.FilingHistoryDocuments {
		opts.FilingHistoryDocuments = append(opts.FilingHistoryDocuments, FilingHistoryDocument{
			FilingHistoryID: d.FilingHistoryID,
		})
	}
	return opts
}
