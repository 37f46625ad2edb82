package resolvecomplaint

import (
	"errors"
	"ltapp/internal/core/domain/complaint"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/services"
	service "ltapp/internal/core/services/resolve_complaint"
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
	Complaint response.Complaint `json:"complaint"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "complaintID")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid complaint id", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{ComplaintID: complaint.ID(id)})
	if err != nil {
		switch {
		case errors.Is(err, complaint.ErrComplaintDoesNotExist):
			response.RenderNotFound(rw, err.Error())
		case errors.Is(err, complaint.ErrComplaintAlreadyResolved):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	resolved := response.Complaint{}
	resolved.FromDomainType(result.Complaint)
	response.Render(rw, Result{Complaint: resolved}, http.StatusOK)
}
