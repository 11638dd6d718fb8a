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

func newTraderServiceForTest() (*TraderService, *mocks.MockTraderRepository) {
	mockRepo := new(mocks.MockTraderRepository)
	return NewTraderService(mockRepo, zap.NewNop()), mockRepo
}

func traderFixture() *domain.Trader {
	return &domain.Trader{
		Username:    "acme",
		Email:       "sales@acme.example",
		Password:    "secret123",
		Name:        "Acme Sales",
		PhoneNumber: "+1234567890",
		Company:     "Acme Corp",
	}
}

func TestTraderService_Register(t *testing.T) {
	svc, mockRepo := newTraderServiceForTest()

	mockRepo.On("FindByUsername", "acme").Return(nil, nil)
	mockRepo.On("FindByEmail", "sales@acme.example").Return(nil, nil)
	mockRepo.On("Save", mock.AnythingOfType("*domain.Trader")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Trader).ID = 3
	})

	trader, err := svc.Register(context.Background(), traderFixture())

	assert.NoError(t, err)
	assert.Equal(t, uint64(3), trader.ID)
	assert.NotEqual(t, "secret123", trader.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(trader.Password), []byte("secret123")))
}

func TestTraderService_Register_Duplicates(t *testing.T) {
	t.Run("username taken", func(t *testing.T) {
		svc, mockRepo := newTraderServiceForTest()
		mockRepo.On("FindByUsername", "acme").Return(&domain.Trader{ID: 9, Username: "acme"}, nil)

		_, err := svc.Register(context.Background(), traderFixture())

		assert.ErrorIs(t, err, ErrTraderExists)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		svc, mockRepo := newTraderServiceForTest()
		mockRepo.On("FindByUsername", "acme").Return(nil, nil)
		mockRepo.On("FindByEmail", "sales@acme.example").Return(&domain.Trader{ID: 9, Email: "sales@acme.example"}, nil)

		_, err := svc.Register(context.Background(), traderFixture())

		assert.ErrorIs(t, err, ErrTraderExists)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything)
	})
}

func TestTraderService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	tests := []struct {
		name          string
		stored        *domain.Trader
		password      string
		expectedError error
	}{
		{
			name:     "valid credentials",
			stored:   &domain.Trader{ID: 3, Username: "acme", Password: string(hashed)},
			password: "secret123",
		},
		{
			name:          "wrong password",
			stored:        &domain.Trader{ID: 3, Username: "acme", Password: string(hashed)},
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
			svc, mockRepo := newTraderServiceForTest()
			mockRepo.On("FindByUsername", "acme").Return(tt.stored, nil)

			trader, token, err := svc.Login(context.Background(), "acme", tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, trader)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint64(3), trader.ID)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestTraderService_GetTraderByID_AbsentIsNotAnError(t *testing.T) {
	svc, mockRepo := newTraderServiceForTest()
	mockRepo.On("FindByID", uint64(404)).Return(nil, nil)

	trader, err := svc.GetTraderByID(context.Background(), 404)

	assert.NoError(t, err)
	assert.Nil(t, trader)
}

func TestTraderService_DeleteTrader(t *testing.T) {
	svc, mockRepo := newTraderServiceForTest()
	mockRepo.On("FindByID", uint64(3)).Return(&domain.Trader{ID: 3}, nil)
	mockRepo.On("Delete", uint64(3)).Return(nil)

	err := svc.DeleteTrader(context.Background(), 3)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestTraderService_DeleteTrader_NotFound(t *testing.T) {
	svc, mockRepo := newTraderServiceForTest()
	mockRepo.On("FindByID", uint64(404)).Return(nil, nil)

	err := svc.DeleteTrader(context.Background(), 404)

	assert.ErrorIs(t, err, ErrTraderNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}
