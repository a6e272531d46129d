package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/apierrors"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/errhttp"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/httpx"
	appsvcs "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/application/services"
	domainsvcs "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/services"
)

// maxPatchBody caps a patch document at 64 KiB. Patch documents are small;
// the cap guards the raw body read.
const maxPatchBody = 64 << 10

// PatchItemHandler handles PATCH {base}/{id} requests carrying RFC 7396
// merge-patch documents.
type PatchItemHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given services.
func NewPatchItemHandler(svc *appsvcs.Services) *PatchItemHandler {
	return &PatchItemHandler{svc: svc}
}

// Execute applies a merge-patch document to a certified copy item.
//
//	@Summary		Update certified copy item
//	@Description	Applies an RFC 7396 merge-patch document to an existing item
//	@Tags			certified-copies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		models.ItemPatch	true	"Merge patch document"
//	@Success		200		{object}	models.Item
//	@Failure		400		{object}	apierrors.ErrorResponse
//	@Failure		401		{object}	apierrors.ErrorResponse
//	@Failure		404		{object}	apierrors.ErrorResponse
//	@Router			/orderable/certified-copies/{id} [patch]
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxPatchBody))
	if err != nil {
		apierrors.WriteAPIErrors(w, http.StatusBadRequest, apierrors.NewJSONProcessingError())
		return
	}

	if _, apiErrs := domainsvcs.ValidateItemPatch(body); len(apiErrs) > 0 {
		apierrors.WriteAPIErrors(w, http.StatusBadRequest, apiErrs...)
		return
	}

	item, err := h.svc.Item.Patch(r.Context(), id, body)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, item)
}
