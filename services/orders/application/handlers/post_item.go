// Package handlers contains the HTTP handlers for the orders context. Each
// handler is a struct with an Execute method; validation failures are written
// directly, everything else is delegated to the item service and the shared
// error mapper.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/apierrors"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/auth"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/errhttp"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/pkg/httpx"
	appsvcs "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/application/services"
	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/models"
	domainsvcs "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/services"
)

// PostItemHandler handles POST {base} requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new certified copy item.
//
//	@Summary		Create certified copy item
//	@Description	Creates a certified copy order item for company filings
//	@Tags			certified-copies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	models.Item
//	@Failure		400		{object}	apierrors.ErrorResponse
//	@Failure		401		{object}	apierrors.ErrorResponse
//	@Router			/orderable/certified-copies [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteStrings(w, http.StatusBadRequest, "failed to read the request payload")
		return
	}

	if errs := domainsvcs.ValidateCreateItem(&req); len(errs) > 0 {
		apierrors.WriteStrings(w, http.StatusBadRequest, errs...)
		return
	}

	id, err := auth.IdentityFromCtx(r.Context())
	if err != nil {
		apierrors.Write(w, http.StatusUnauthorized)
		return
	}

	item, err := h.svc.Item.Create(r.Context(), &req, id.ID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, item)
}
