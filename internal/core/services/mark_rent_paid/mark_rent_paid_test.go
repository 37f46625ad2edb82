package markrentpaid

import (
	"context"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/domain/rent"
	"ltapp/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2023, 3, 15, 8, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger   *logging.FakeLogger
	charges  *rent.FakeRepository
	commands *message.FakeCommandSender
	service  services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.charges = rent.NewFakeRepository()
	suite.commands = message.NewFakeCommandSender()
	suite.service = New(
		suite.logger,
		suite.charges,
		suite.commands,
		func() time.Time { return Now },
	)
}

func TestMarkRentPaidService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestPaymentCancelsReminder() {
	created, err := s.charges.Create(
		context.Background(),
		rent.CreateInput{TenantName: "ada", Amount: 50000, DueDate: Now, CreatedAt: Now},
	)
	s.Require().Nil(err)

	result, err := s.service.Run(context.Background(), Input{ChargeID: created.ID})

	assert := s.Require()
	assert.Nil(err)
	assert.True(result.Charge.IsPaid())
	assert.Len(s.commands.Sent, 1)
	assert.Equal(message.KindCancelNotification, s.commands.Sent[0].Kind)
	assert.Equal(created.EntityID(), s.commands.Sent[0].CancelNotification.EntityID)
}

func (s *testSuite) TestPayingTwice() {
	created, err := s.charges.Create(
		context.Background(),
		rent.CreateInput{TenantName: "ada", Amount: 50000, DueDate: Now, CreatedAt: Now},
	)
	s.Require().Nil(err)

	_, err = s.service.Run(context.Background(), Input{ChargeID: created.ID})
	s.Require().Nil(err)
	_, err = s.service.Run(context.Background(), Input{ChargeID: created.ID})

	s.Require().ErrorIs(err, rent.ErrChargeAlreadyPaid)
}

func (s *testSuite) TestUnknownCharge() {
	_, err := s.service.Run(context.Background(), Input{ChargeID: 42})

	assert := s.Require()
	assert.ErrorIs(err, rent.ErrChargeDoesNotExist)
	assert.Empty(s.commands.Sent)
}
