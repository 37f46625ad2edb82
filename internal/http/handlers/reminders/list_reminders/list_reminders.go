package listreminders

import (
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/services"
	service "ltapp/internal/core/services/list_reminders"
	"ltapp/internal/http/handlers/response"
	"net/http"
	"sort"
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

type Reminder struct {
	EntityID string `json:"entity_id"`
	At       string `json:"at"`
}

type Result struct {
	Reminders []Reminder `json:"reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	reminders := make([]Reminder, 0, len(result.Reminders))
	for entityID, at := range result.Reminders {
		reminders = append(reminders, Reminder{EntityID: string(entityID), At: at.String()})
	}
	sort.Slice(reminders, func(i, j int) bool { return reminders[i].EntityID < reminders[j].EntityID })
	response.Render(rw, Result{Reminders: reminders}, http.StatusOK)
}
