package cancelreminder

import (
	"errors"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/services"
	service "ltapp/internal/core/services/cancel_reminder"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	entityID := chi.URLParam(r, "entityID")

	_, err := h.service.Run(r.Context(), service.Input{EntityID: reminder.EntityID(entityID)})
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrEntityIDNotSet):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	rw.WriteHeader(http.StatusAccepted)
}
