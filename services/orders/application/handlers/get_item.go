package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/errhttp"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/httpx"
	appsvcs "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/application/services"
)

// GetItemHandler handles GET {base}/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute retrieves a certified copy item by ID.
//
//	@Summary		Get certified copy item
//	@Description	Retrieves a certified copy order item
//	@Tags			certified-copies
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	models.Item
//	@Failure		401	{object}	apierrors.ErrorResponse
//	@Failure		404	{object}	apierrors.ErrorResponse
//	@Router			/orderable/certified-copies/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, item)
}
