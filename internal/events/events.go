package events

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/domain/notification"
	"ltapp/internal/rabbitmq/schema"

	"github.com/r3labs/sse/v2"
)

type readiness interface {
	SetReady(ctx context.Context)
}

type streamPublisher interface {
	Publish(id string, event *sse.Event)
}

// Handler reacts to worker events on the foreground side: it keeps the
// notification center current, unblocks the buffered command sender on
// READY and relays everything to the browser event stream.
type Handler struct {
	log       logging.Logger
	center    notification.Center
	readiness readiness
	sseServer streamPublisher
	stream    string
}

func New(
	log logging.Logger,
	center notification.Center,
	r readiness,
	sseServer streamPublisher,
	stream string,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if center == nil {
		panic(e.NewNilArgumentError("center"))
	}
	if r == nil {
		panic(e.NewNilArgumentError("readiness"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if stream == "" {
		panic("stream name must not be empty")
	}
	return &Handler{log: log, center: center, readiness: r, sseServer: sseServer, stream: stream}
}

func (h *Handler) HandleEvent(ctx context.Context, m message.Message) error {
	switch m.Kind {
	case message.KindReady:
		h.readiness.SetReady(ctx)
		h.log.Info(ctx, "Worker is ready, command buffer unblocked.")
	case message.KindShowNotification:
		h.center.Upsert(notification.Notification{
			Title:     m.ShowNotification.Title,
			Body:      m.ShowNotification.Body,
			Tag:       m.ShowNotification.Tag,
			Vibration: m.ShowNotification.Vibration,
		})
	case message.KindStopAlarm:
		h.center.Remove(m.StopAlarm.EntityID)
	case message.KindPlayAlarm, message.KindNewVersion:
	default:
		h.log.Warning(ctx, "Ignoring unexpected event.", logging.Entry("kind", m.Kind))
		return nil
	}
	return h.relay(ctx, m)
}

// relay forwards the event to the browser stream as-is, the page reacts
// to the same frames the worker emits.
func (h *Handler) relay(ctx context.Context, m message.Message) error {
	body, err := schema.Encode(m)
	if err != nil {
		return err
	}
	h.sseServer.Publish(h.stream, &sse.Event{
		Event: []byte(m.Kind),
		Data:  body,
	})
	return nil
}
