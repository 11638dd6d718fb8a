package services

import (
	"context"
	"testing"

	"commerce-core/internal/domain"
	"commerce-core/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newUserServiceForTest() (*UserService, *mocks.MockUserRepository) {
	mockRepo := new(mocks.MockUserRepository)
	return NewUserService(mockRepo, zap.NewNop()), mockRepo
}

func TestUserService_Register(t *testing.T) {
	svc, mockRepo := newUserServiceForTest()

	mockRepo.On("FindByUsername", "buyer").Return(nil, nil)
	mockRepo.On("FindByEmail", "buyer@example.com").Return(nil, nil)
	mockRepo.On("Save", mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.User).ID = TestUserID
	})

	user, err := svc.Register(context.Background(), &domain.User{
		Username: "buyer",
		Email:    "buyer@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, TestUserID, user.ID)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	svc, mockRepo := newUserServiceForTest()
	mockRepo.On("FindByUsername", "buyer").Return(&domain.User{ID: 2, Username: "buyer"}, nil)

	_, err := svc.Register(context.Background(), &domain.User{Username: "buyer", Email: "other@example.com", Password: "x"})

	assert.ErrorIs(t, err, ErrUserExists)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, mockRepo := newUserServiceForTest()
	mockRepo.On("FindByUsername", "buyer").Return(nil, nil)
	mockRepo.On("FindByEmail", "buyer@example.com").Return(&domain.User{ID: 2, Email: "buyer@example.com"}, nil)

	_, err := svc.Register(context.Background(), &domain.User{Username: "buyer", Email: "buyer@example.com", Password: "x"})

	assert.ErrorIs(t, err, ErrUserExists)
}

func TestUserService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	tests := []struct {
		name          string
		stored        *domain.User
		password      string
		expectedError error
	}{
		{
			name:     "valid credentials",
			stored:   &domain.User{ID: TestUserID, Username: "buyer", Password: string(hashed)},
			password: "secret123",
		},
		{
			name:          "wrong password",
			stored:        &domain.User{ID: TestUserID, Username: "buyer", Password: string(hashed)},
			password:      "wrong",
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "unknown username",
			stored:        nil,
			password:      "secret123",
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newUserServiceForTest()
			mockRepo.On("FindByUsername", "buyer").Return(tt.stored, nil)

			user, token, err := svc.Login(context.Background(), "buyer", tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, TestUserID, user.ID)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestUserService_ValidateUser(t *testing.T) {
	svc, mockRepo := newUserServiceForTest()
	mockRepo.On("FindByID", TestUserID).Return(&domain.User{ID: TestUserID}, nil)
	mockRepo.On("FindByID", uint64(404)).Return(nil, nil)

	exists, err := svc.ValidateUser(context.Background(), TestUserID)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ValidateUser(context.Background(), 404)
	assert.NoError(t, err)
	assert.False(t, exists)
}
