package setrent

import (
	"encoding/json"
	"errors"
	"io"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/rent"
	"ltapp/internal/core/services"
	service "ltapp/internal/core/services/set_rent"
	"ltapp/internal/http/handlers/response"
	"net/http"
	"time"

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
	TenantName string    `json:"tenant_name"`
	Amount     int64     `json:"amount"`
	DueDate    time.Time `json:"due_date"`
}

type Result struct {
	Charge response.RentCharge `json:"charge"`
}

func (i *Input) FromJSON(r io.Reader) error {
	decoder := json.NewDecoder(r)
	return decoder.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.TenantName, validation.Required, validation.Length(1, 128)),
		validation.Field(&i.Amount, validation.Required),
		validation.Field(&i.DueDate, validation.Required),
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
		Amount:     input.Amount,
		DueDate:    input.DueDate.UTC(),
	})
	if err != nil {
		switch {
		case errors.Is(err, rent.ErrInvalidAmount):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		case errors.Is(err, rent.ErrChargeExists):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	charge := response.RentCharge{}
	charge.FromDomainType(result.Charge)
	response.Render(rw, Result{Charge: charge}, http.StatusCreated)
}
