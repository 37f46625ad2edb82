package cancelallreminders

import (
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/services"
	service "ltapp/internal/core/services/cancel_all_reminders"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if _, err := h.service.Run(r.Context(), service.Input{}); err != nil {
		response.RenderInternalError(rw)
		return
	}
	rw.WriteHeader(http.StatusAccepted)
}
