package events

import (
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"net/http"

	"github.com/r3labs/sse/v2"
)

// Handler subscribes the browser to the worker event stream.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
	stream    string
}

func New(log logging.Logger, sseServer *sse.Server, stream string) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if stream == "" {
		panic("stream name must not be empty")
	}
	return &Handler{log: log, sseServer: sseServer, stream: stream}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	// The client does not pick a stream, everyone subscribes to the one
	// notification stream.
	query := r.URL.Query()
	query.Set("stream", h.stream)
	r.URL.RawQuery = query.Encode()

	h.log.Info(r.Context(), "Subscribed to worker events.", logging.Entry("stream", h.stream))
	h.sseServer.ServeHTTP(rw, r)
}
