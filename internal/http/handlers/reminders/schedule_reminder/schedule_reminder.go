package schedulereminder

import (
	"encoding/json"
	"errors"
	"io"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/services"
	service "ltapp/internal/core/services/schedule_reminder"
	"ltapp/internal/http/handlers/response"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	EntityID string `json:"entity_id"`
	Label    string `json:"label"`
	At       string `json:"at"`
}

func (i *Input) FromJSON(r io.Reader) error {
	decoder := json.NewDecoder(r)
	return decoder.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.EntityID, validation.Required, validation.Length(1, 128)),
		validation.Field(&i.Label, validation.Length(0, 256)),
		validation.Field(&i.At, validation.Required, validation.Length(5, 5)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	at, err := reminder.ParseTimeOfDay(input.At)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), service.Input{
		EntityID: reminder.EntityID(input.EntityID),
		Label:    input.Label,
		At:       at,
	})
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
