package loginwithemail

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
	)
}

func TestLogInWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser() user.User {
	passwordHash, err := suite.PasswordHasher.HashPassword(RAW_PASSWORD)
	suite.Require().Nil(err)
	u, err := suite.UserRepository.Create(
		context.Background(),
		user.CreateUserInput{Email: EMAIL, PasswordHash: passwordHash, CreatedAt: NOW},
	)
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestSuccess() {
	createdUser := suite.createUser()

	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(createdUser.ID, result.User.ID)
	assert.Equal(EMAIL, result.User.Email)
}

func (suite *testSuite) TestUserDoesNotExist() {
	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) TestInvalidPassword() {
	suite.createUser()

	_, err := suite.Service.Run(
		context.Background(),
		Input{Email: EMAIL, Password: user.RawPassword("wrong-password")},
	)

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrInvalidCredentials))
}
