package listnotifications

import (
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/notification"
	"ltapp/internal/http/handlers/response"
	"net/http"
)

// Handler returns the currently visible notifications so a reloaded
// page can repopulate its alarm controls.
type Handler struct {
	center notification.Center
}

func New(center notification.Center) *Handler {
	if center == nil {
		panic(e.NewNilArgumentError("center"))
	}
	return &Handler{center: center}
}

type Result struct {
	Notifications []response.Notification `json:"notifications"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	visible := h.center.List()
	notifications := make([]response.Notification, len(visible))
	for ix, item := range visible {
		notifications[ix].FromDomainType(item)
	}
	response.Render(rw, Result{Notifications: notifications}, http.StatusOK)
}
