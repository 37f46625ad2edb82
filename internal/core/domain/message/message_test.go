package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		id            string
		message       Message
		expectedError error
	}{
		{id: "1", message: NewScheduleNotification("c-1", "Leaking tap", "09:00")},
		{id: "2", message: NewCancelNotification("c-1")},
		{id: "3", message: NewCancelAllNotifications()},
		{id: "4", message: NewSkipWaiting()},
		{id: "5", message: NewReady()},
		{id: "6", message: NewNewVersion("ltapp-cache-123")},
		{id: "7", message: NewPlayAlarm("r-1", "Rent due")},
		{id: "8", message: NewShowNotification("Rent due", "Pay up", "r-1", []int{200, 100, 200})},
		{id: "9", message: NewStopAlarm("r-1")},
		{id: "10", message: Message{Kind: Kind("RELOAD")}, expectedError: ErrUnknownKind},
		{id: "11", message: Message{Kind: KindScheduleNotification}, expectedError: ErrPayloadMissing},
		{id: "12", message: Message{Kind: KindPlayAlarm}, expectedError: ErrPayloadMissing},
		{id: "13", message: Message{}, expectedError: ErrUnknownKind},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert := require.New(t)
			err := testcase.message.Validate()
			if testcase.expectedError == nil {
				assert.Nil(err)
			} else {
				assert.ErrorIs(err, testcase.expectedError)
			}
		})
	}
}
