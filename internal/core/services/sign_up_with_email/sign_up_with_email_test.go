package signupwithemail

import (
	c "authd/internal/core/domain/common"
	"authd/internal/core/domain/logging"
	"authd/internal/core/domain/user"
	"authd/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL        = c.Email("test@test.test")
	RAW_PASSWORD = user.RawPassword("test-password")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
		func() time.Time { return NOW },
	)
}

func TestSignUpWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), result.User.ID)
	assert.Equal(EMAIL, result.User.Email)
	assert.Equal(NOW, result.User.CreatedAt)
	assert.NotEqual(string(RAW_PASSWORD), string(result.User.PasswordHash))
	assert.False(result.User.PasswordResetTokenHash.IsPresent)
	assert.False(result.User.PasswordResetExpiresAt.IsPresent)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	ctx := context.Background()
	suite.UserRepository.Create(
		ctx,
		user.CreateUserInput{
			Email:        EMAIL,
			PasswordHash: user.PasswordHash("test"),
			CreatedAt:    NOW,
		},
	)

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrEmailAlreadyExists))
	assert.Len(suite.UserRepository.Users, 1)
}

func (suite *testSuite) TestRepositoryError() {
	suite.UserRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	suite.Require().NotNil(err)
}
