package logcomplaint

import (
	"encoding/json"
	"io"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/services"
	service "ltapp/internal/core/services/log_complaint"
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
	TenantName string `json:"tenant_name"`
	Message    string `json:"message"`
}

type Result struct {
	Complaint response.Complaint `json:"complaint"`
}

func (i *Input) FromJSON(r io.Reader) error {
	decoder := json.NewDecoder(r)
	return decoder.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.TenantName, validation.Required, validation.Length(1, 128)),
		validation.Field(&i.Message, validation.Required, validation.Length(1, 2048)),
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

	result, err := h.service.Run(r.Context(), service.Input{
		TenantName: input.TenantName,
		Message:    input.Message,
	})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	logged := response.Complaint{}
	logged.FromDomainType(result.Complaint)
	response.Render(rw, Result{Complaint: logged}, http.StatusCreated)
}
