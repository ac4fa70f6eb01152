package command

import (
	"errors"
	"testing"

	"github.com/jbeshir/reading-queue/internal/command/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAsJob(t *testing.T) {
	cmd := mocks.NewMockCommand[SendDigestRequest, Empty](t)
	cmd.EXPECT().Execute(mock.Anything, SendDigestRequest{UserID: "user-1"}).Return(Empty{}, nil).Once()
	cmd.EXPECT().Execute(mock.Anything, SendDigestRequest{UserID: "user-1"}).
		Return(Empty{}, errors.New("telegram down")).Once()

	job := AsJob[SendDigestRequest, Empty](cmd, SendDigestRequest{UserID: "user-1"})

	assert.NoError(t, job(testContext()))
	assert.EqualError(t, job(testContext()), "telegram down")
}
