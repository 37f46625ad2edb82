package markrentpaid

import (
	"errors"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/rent"
	"ltapp/internal/core/services"
	service "ltapp/internal/core/services/mark_rent_paid"
	"ltapp/internal/http/handlers/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Charge response.RentCharge `json:"charge"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "chargeID")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid charge id", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{ChargeID: rent.ID(id)})
	if err != nil {
		switch {
		case errors.Is(err, rent.ErrChargeDoesNotExist):
			response.RenderNotFound(rw, err.Error())
		case errors.Is(err, rent.ErrChargeAlreadyPaid):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	charge := response.RentCharge{}
	charge.FromDomainType(result.Charge)
	response.Render(rw, Result{Charge: charge}, http.StatusOK)
}
