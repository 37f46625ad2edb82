package getrent

import (
	"errors"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/rent"
	"ltapp/internal/core/services"
	service "ltapp/internal/core/services/get_rent"
	"ltapp/internal/http/handlers/response"
	"net/http"

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
	tenantName := chi.URLParam(r, "tenantName")

	result, err := h.service.Run(r.Context(), service.Input{TenantName: tenantName})
	if err != nil {
		switch {
		case errors.Is(err, rent.ErrChargeDoesNotExist):
			response.RenderNotFound(rw, err.Error())
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	charge := response.RentCharge{}
	charge.FromDomainType(result.Charge)
	response.Render(rw, Result{Charge: charge}, http.StatusOK)
}
