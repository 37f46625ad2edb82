package message

// Kind tags the closed set of frames exchanged between the foreground
// API and the background worker. Commands flow to the worker, events
// flow back.
type Kind string

const (
	// Commands.
	KindScheduleNotification   Kind = "SCHEDULE_NOTIFICATION"
	KindCancelNotification     Kind = "CANCEL_NOTIFICATION"
	KindCancelAllNotifications Kind = "CANCEL_ALL_NOTIFICATIONS"
	KindSkipWaiting            Kind = "SKIP_WAITING"

	// Events.
	KindReady            Kind = "READY"
	KindNewVersion       Kind = "NEW_VERSION"
	KindPlayAlarm        Kind = "PLAY_ALARM"
	KindShowNotification Kind = "SHOW_NOTIFICATION"
	KindStopAlarm        Kind = "STOP_ALARM"
)

type ScheduleNotification struct {
	EntityID string `json:"entityId"`
	Label    string `json:"label"`
	At       string `json:"at"`
}

type CancelNotification struct {
	EntityID string `json:"entityId"`
}

type NewVersion struct {
	CacheName string `json:"cacheName"`
}

type PlayAlarm struct {
	EntityID string `json:"entityId"`
	Label    string `json:"label"`
}

type ShowNotification struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Tag       string `json:"tag"`
	Vibration []int  `json:"vibration,omitempty"`
}

type StopAlarm struct {
	EntityID string `json:"entityId"`
}

// Message is a tagged variant: exactly one payload pointer matching
// Kind is set. SKIP_WAITING, CANCEL_ALL_NOTIFICATIONS and READY carry
// no payload.
type Message struct {
	Kind Kind

	ScheduleNotification *ScheduleNotification
	CancelNotification   *CancelNotification
	NewVersion           *NewVersion
	PlayAlarm            *PlayAlarm
	ShowNotification     *ShowNotification
	StopAlarm            *StopAlarm
}

func NewScheduleNotification(entityID string, label string, at string) Message {
	return Message{
		Kind:                 KindScheduleNotification,
		ScheduleNotification: &ScheduleNotification{EntityID: entityID, Label: label, At: at},
	}
}

func NewCancelNotification(entityID string) Message {
	return Message{Kind: KindCancelNotification, CancelNotification: &CancelNotification{EntityID: entityID}}
}

func NewCancelAllNotifications() Message {
	return Message{Kind: KindCancelAllNotifications}
}

func NewSkipWaiting() Message {
	return Message{Kind: KindSkipWaiting}
}

func NewReady() Message {
	return Message{Kind: KindReady}
}

func NewNewVersion(cacheName string) Message {
	return Message{Kind: KindNewVersion, NewVersion: &NewVersion{CacheName: cacheName}}
}

func NewPlayAlarm(entityID string, label string) Message {
	return Message{Kind: KindPlayAlarm, PlayAlarm: &PlayAlarm{EntityID: entityID, Label: label}}
}

func NewShowNotification(title string, body string, tag string, vibration []int) Message {
	return Message{
		Kind:             KindShowNotification,
		ShowNotification: &ShowNotification{Title: title, Body: body, Tag: tag, Vibration: vibration},
	}
}

func NewStopAlarm(entityID string) Message {
	return Message{Kind: KindStopAlarm, StopAlarm: &StopAlarm{EntityID: entityID}}
}

func (m Message) Validate() error {
	switch m.Kind {
	case KindScheduleNotification:
		if m.ScheduleNotification == nil {
			return ErrPayloadMissing
		}
	case KindCancelNotification:
		if m.CancelNotification == nil {
			return ErrPayloadMissing
		}
	case KindNewVersion:
		if m.NewVersion == nil {
			return ErrPayloadMissing
		}
	case KindPlayAlarm:
		if m.PlayAlarm == nil {
			return ErrPayloadMissing
		}
	case KindShowNotification:
		if m.ShowNotification == nil {
			return ErrPayloadMissing
		}
	case KindStopAlarm:
		if m.StopAlarm == nil {
			return ErrPayloadMissing
		}
	case KindCancelAllNotifications, KindSkipWaiting, KindReady:
	default:
		return ErrUnknownKind
	}
	return nil
}
