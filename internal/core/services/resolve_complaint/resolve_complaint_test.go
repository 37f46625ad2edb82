package resolvecomplaint

import (
	"context"
	"ltapp/internal/core/domain/complaint"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2023, 3, 15, 8, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	complaints *complaint.FakeRepository
	commands   *message.FakeCommandSender
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.complaints = complaint.NewFakeRepository()
	suite.commands = message.NewFakeCommandSender()
	suite.service = New(
		suite.logger,
		suite.complaints,
		suite.commands,
		func() time.Time { return Now },
	)
}

func TestResolveComplaintService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestResolveCancelsReminder() {
	created, err := s.complaints.Create(
		context.Background(),
		complaint.CreateInput{TenantName: "ada", Message: "Leaking tap", CreatedAt: Now},
	)
	s.Require().Nil(err)

	result, err := s.service.Run(context.Background(), Input{ComplaintID: created.ID})

	assert := s.Require()
	assert.Nil(err)
	assert.True(result.Complaint.IsResolved())
	assert.Len(s.commands.Sent, 1)
	assert.Equal(message.KindCancelNotification, s.commands.Sent[0].Kind)
	assert.Equal(created.EntityID(), s.commands.Sent[0].CancelNotification.EntityID)
}

func (s *testSuite) TestResolveUnknownComplaint() {
	_, err := s.service.Run(context.Background(), Input{ComplaintID: 42})

	assert := s.Require()
	assert.ErrorIs(err, complaint.ErrComplaintDoesNotExist)
	assert.Empty(s.commands.Sent)
}

func (s *testSuite) TestResolveTwice() {
	created, err := s.complaints.Create(
		context.Background(),
		complaint.CreateInput{TenantName: "ada", Message: "Leaking tap", CreatedAt: Now},
	)
	s.Require().Nil(err)

	_, err = s.service.Run(context.Background(), Input{ComplaintID: created.ID})
	s.Require().Nil(err)
	_, err = s.service.Run(context.Background(), Input{ComplaintID: created.ID})

	s.Require().ErrorIs(err, complaint.ErrComplaintAlreadyResolved)
}
