package skipwaiting

import (
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/http/handlers/response"
	"net/http"
)

// Handler asks the worker to activate a parked cache generation without
// waiting for the next restart.
type Handler struct {
	commands message.CommandSender
}

func New(commands message.CommandSender) *Handler {
	if commands == nil {
		panic(e.NewNilArgumentError("commands"))
	}
	return &Handler{commands: commands}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if err := h.commands.Send(r.Context(), message.NewSkipWaiting()); err != nil {
		response.RenderInternalError(rw)
		return
	}
	rw.WriteHeader(http.StatusAccepted)
}
