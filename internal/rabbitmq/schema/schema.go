package schema

import (
	"encoding/json"
	"ltapp/internal/core/domain/message"
)

// Envelope is the wire form of a message: a type tag plus the payload
// matching it, if the type carries one.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encode validates the message and marshals it into an envelope.
// Invalid frames never reach the wire.
func Encode(m message.Message) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var payload interface{}
	switch m.Kind {
	case message.KindScheduleNotification:
		payload = m.ScheduleNotification
	case message.KindCancelNotification:
		payload = m.CancelNotification
	case message.KindNewVersion:
		payload = m.NewVersion
	case message.KindPlayAlarm:
		payload = m.PlayAlarm
	case message.KindShowNotification:
		payload = m.ShowNotification
	case message.KindStopAlarm:
		payload = m.StopAlarm
	}

	envelope := Envelope{Type: string(m.Kind)}
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		envelope.Payload = encoded
	}
	return json.Marshal(envelope)
}

// Decode unmarshals an envelope and validates the result, rejecting
// unknown types and frames with a missing payload.
func Decode(data []byte) (message.Message, error) {
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return message.Message{}, err
	}

	m := message.Message{Kind: message.Kind(envelope.Type)}
	var payload interface{}
	switch m.Kind {
	case message.KindScheduleNotification:
		m.ScheduleNotification = &message.ScheduleNotification{}
		payload = m.ScheduleNotification
	case message.KindCancelNotification:
		m.CancelNotification = &message.CancelNotification{}
		payload = m.CancelNotification
	case message.KindNewVersion:
		m.NewVersion = &message.NewVersion{}
		payload = m.NewVersion
	case message.KindPlayAlarm:
		m.PlayAlarm = &message.PlayAlarm{}
		payload = m.PlayAlarm
	case message.KindShowNotification:
		m.ShowNotification = &message.ShowNotification{}
		payload = m.ShowNotification
	case message.KindStopAlarm:
		m.StopAlarm = &message.StopAlarm{}
		payload = m.StopAlarm
	}

	if payload != nil {
		if envelope.Payload == nil {
			return message.Message{}, message.ErrPayloadMissing
		}
		if err := json.Unmarshal(envelope.Payload, payload); err != nil {
			return message.Message{}, err
		}
	}

	if err := m.Validate(); err != nil {
		return message.Message{}, err
	}
	return m, nil
}
