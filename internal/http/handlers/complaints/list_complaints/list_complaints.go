package listcomplaints

import (
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/services"
	service "ltapp/internal/core/services/list_complaints"
	"ltapp/internal/http/handlers/response"
	"net/http"
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
	Complaints []response.Complaint `json:"complaints"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	complaints := make([]response.Complaint, len(result.Complaints))
	for ix, item := range result.Complaints {
		complaints[ix].FromDomainType(item)
	}
	response.Render(rw, Result{Complaints: complaints}, http.StatusOK)
}
