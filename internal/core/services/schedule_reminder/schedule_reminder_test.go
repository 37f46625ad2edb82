package schedulereminder

import (
	"context"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/domain/reminder"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheduleSendsCommand(t *testing.T) {
	assert := require.New(t)
	commands := message.NewFakeCommandSender()
	service := New(logging.NewFakeLogger(), commands)
	at, _ := reminder.ParseTimeOfDay("09:00")

	_, err := service.Run(context.Background(), Input{EntityID: "c-1", Label: "Leaking tap", At: at})

	assert.Nil(err)
	assert.Len(commands.Sent, 1)
	assert.Equal(message.KindScheduleNotification, commands.Sent[0].Kind)
	assert.Equal("c-1", commands.Sent[0].ScheduleNotification.EntityID)
	assert.Equal("09:00", commands.Sent[0].ScheduleNotification.At)
}

func TestScheduleEmptyEntityID(t *testing.T) {
	assert := require.New(t)
	commands := message.NewFakeCommandSender()
	service := New(logging.NewFakeLogger(), commands)

	_, err := service.Run(context.Background(), Input{})

	assert.ErrorIs(err, reminder.ErrEntityIDNotSet)
	assert.Empty(commands.Sent)
}
