package services

import (
	"context"
	"errors"
	"testing"

	"commerce-core/internal/domain"
	"commerce-core/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newOrderServiceForTest() (*OrderService, *mocks.MockOrderRepository, *mocks.MockUserClient, *mocks.MockTraderClient, *mocks.MockPublisher) {
	mockRepo := new(mocks.MockOrderRepository)
	mockUsers := new(mocks.MockUserClient)
	mockTrader := new(mocks.MockTraderClient)
	mockPub := new(mocks.MockPublisher)
	svc := NewOrderService(mockRepo, mockUsers, mockTrader, mockPub, zap.NewNop())
	return svc, mockRepo, mockUsers, mockTrader, mockPub
}

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockUserClient, *mocks.MockTraderClient, *mocks.MockPublisher)
		expectedError string
		check         func(*testing.T, *domain.Order)
	}{
		{
			name:     "successful order creation",
			quantity: 2,
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockUsers *mocks.MockUserClient, mockTrader *mocks.MockTraderClient, mockPub *mocks.MockPublisher) {
				mockUsers.On("ValidateUser", mock.Anything, TestUserID).Return(true, nil)
				mockTrader.On("GetProduct", mock.Anything, TestProductID).Return(CreateMockProduct(TestProductID, TestProductName, "19.99", 5), nil)
				mockTrader.On("CheckStock", mock.Anything, TestProductID, 2).Return(true, nil)
				mockRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
					order := args.Get(0).(*domain.Order)
					order.ID = TestOrderID
				})
				mockTrader.On("UpdateStock", mock.Anything, TestProductID, 2).Return(true, nil)
				mockRepo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
				mockPub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, TestOrderID, order.ID)
				assert.Equal(t, domain.OrderConfirmed, order.Status)
				assert.Equal(t, "39.98", order.TotalPrice.StringFixed(2))
			},
		},
		{
			name:     "unknown user",
			quantity: 1,
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockUsers *mocks.MockUserClient, mockTrader *mocks.MockTraderClient, mockPub *mocks.MockPublisher) {
				mockUsers.On("ValidateUser", mock.Anything, TestUserID).Return(false, nil)
			},
			expectedError: "user not found",
		},
		{
			name:     "unknown product",
			quantity: 1,
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockUsers *mocks.MockUserClient, mockTrader *mocks.MockTraderClient, mockPub *mocks.MockPublisher) {
				mockUsers.On("ValidateUser", mock.Anything, TestUserID).Return(true, nil)
				mockTrader.On("GetProduct", mock.Anything, TestProductID).Return(nil, nil)
			},
			expectedError: "product not found",
		},
		{
			name:     "insufficient stock",
			quantity: 3,
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockUsers *mocks.MockUserClient, mockTrader *mocks.MockTraderClient, mockPub *mocks.MockPublisher) {
				mockUsers.On("ValidateUser", mock.Anything, TestUserID).Return(true, nil)
				mockTrader.On("GetProduct", mock.Anything, TestProductID).Return(CreateMockProduct(TestProductID, TestProductName, "19.99", 2), nil)
				mockTrader.On("CheckStock", mock.Anything, TestProductID, 3).Return(false, nil)
			},
			expectedError: "insufficient stock for product Test Product. Requested: 3, Available: 2",
		},
		{
			name:     "save fails",
			quantity: 1,
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockUsers *mocks.MockUserClient, mockTrader *mocks.MockTraderClient, mockPub *mocks.MockPublisher) {
				mockUsers.On("ValidateUser", mock.Anything, TestUserID).Return(true, nil)
				mockTrader.On("GetProduct", mock.Anything, TestProductID).Return(CreateMockProduct(TestProductID, TestProductName, "19.99", 5), nil)
				mockTrader.On("CheckStock", mock.Anything, TestProductID, 1).Return(true, nil)
				mockRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(errors.New("database error"))
			},
			expectedError: "database error",
		},
		{
			name:     "stock decrement rejected leaves order pending",
			quantity: 2,
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockUsers *mocks.MockUserClient, mockTrader *mocks.MockTraderClient, mockPub *mocks.MockPublisher) {
				mockUsers.On("ValidateUser", mock.Anything, TestUserID).Return(true, nil)
				mockTrader.On("GetProduct", mock.Anything, TestProductID).Return(CreateMockProduct(TestProductID, TestProductName, "19.99", 5), nil)
				mockTrader.On("CheckStock", mock.Anything, TestProductID, 2).Return(true, nil)
				mockRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
					order := args.Get(0).(*domain.Order)
					order.ID = TestOrderID
					assert.Equal(t, domain.OrderPending, order.Status)
				})
				mockTrader.On("UpdateStock", mock.Anything, TestProductID, 2).Return(false, nil)
			},
			expectedError: "failed to update product stock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockUsers, mockTrader, mockPub := newOrderServiceForTest()
			tt.setupMocks(mockRepo, mockUsers, mockTrader, mockPub)

			order, err := svc.CreateOrder(context.Background(), TestUserID, TestProductID, tt.quantity)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				if tt.check != nil {
					tt.check(t, order)
				}
			}

			mockRepo.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
			mockTrader.AssertExpectations(t)
		})
	}
}

func TestOrderService_CreateOrder_InsufficientStockReportsFreshAvailability(t *testing.T) {
	svc, mockRepo, mockUsers, mockTrader, _ := newOrderServiceForTest()

	// First resolve sees 5 in stock, but the sufficiency check already ran
	// against 2; the failure message must report the fresh count, not the
	// stale one.
	mockUsers.On("ValidateUser", mock.Anything, TestUserID).Return(true, nil)
	mockTrader.On("GetProduct", mock.Anything, TestProductID).
		Return(CreateMockProduct(TestProductID, TestProductName, "19.99", 5), nil).Once()
	mockTrader.On("CheckStock", mock.Anything, TestProductID, 3).Return(false, nil)
	mockTrader.On("GetProduct", mock.Anything, TestProductID).
		Return(CreateMockProduct(TestProductID, TestProductName, "19.99", 2), nil).Once()

	_, err := svc.CreateOrder(context.Background(), TestUserID, TestProductID, 3)

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Requested: 3, Available: 2")
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestOrderService_CreateOrder_RejectsNonPositiveQuantity(t *testing.T) {
	svc, mockRepo, _, _, _ := newOrderServiceForTest()

	order, err := svc.CreateOrder(context.Background(), TestUserID, TestProductID, 0)

	assert.Error(t, err)
	assert.Nil(t, order)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestOrderService_CreateOrder_StockFailureSkipsConfirm(t *testing.T) {
	svc, mockRepo, mockUsers, mockTrader, _ := newOrderServiceForTest()

	mockUsers.On("ValidateUser", mock.Anything, TestUserID).Return(true, nil)
	mockTrader.On("GetProduct", mock.Anything, TestProductID).Return(CreateMockProduct(TestProductID, TestProductName, "10.00", 5), nil)
	mockTrader.On("CheckStock", mock.Anything, TestProductID, 1).Return(true, nil)
	mockRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil)
	mockTrader.On("UpdateStock", mock.Anything, TestProductID, 1).Return(false, errors.New("trader unavailable"))

	_, err := svc.CreateOrder(context.Background(), TestUserID, TestProductID, 1)

	assert.ErrorIs(t, err, ErrStockUpdateFailed)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestOrderService_GetOrderByID_AbsentIsNotAnError(t *testing.T) {
	svc, mockRepo, _, _, _ := newOrderServiceForTest()
	mockRepo.On("FindByID", uint64(404)).Return(nil, nil)

	order, err := svc.GetOrderByID(context.Background(), 404)

	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestOrderService_CancelOrder(t *testing.T) {
	tests := []struct {
		name          string
		initialStatus domain.OrderStatus
		expectedError string
	}{
		{name: "pending order cancels", initialStatus: domain.OrderPending},
		{name: "confirmed order cancels", initialStatus: domain.OrderConfirmed},
		{name: "paid order cancels", initialStatus: domain.OrderPaid},
		{name: "cancelled order stays cancelled", initialStatus: domain.OrderCancelled, expectedError: "invalid order status transition"},
		{name: "delivered order cannot cancel", initialStatus: domain.OrderDelivered, expectedError: "invalid order status transition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, _, _ := newOrderServiceForTest()
			mockRepo.On("FindByID", TestOrderID).Return(CreateMockOrder(TestOrderID, TestUserID, TestProductID, 1, "19.99", tt.initialStatus), nil)
			if tt.expectedError == "" {
				mockRepo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
			}

			order, err := svc.CancelOrder(context.Background(), TestOrderID)

			if tt.expectedError != "" {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				mockRepo.AssertNotCalled(t, "Update", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.OrderCancelled, order.Status)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_CancelOrder_NotFound(t *testing.T) {
	svc, mockRepo, _, _, _ := newOrderServiceForTest()
	mockRepo.On("FindByID", uint64(404)).Return(nil, nil)

	_, err := svc.CancelOrder(context.Background(), 404)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_UpdateOrderStatus_SkipsTransitionChecks(t *testing.T) {
	svc, mockRepo, _, _, _ := newOrderServiceForTest()
	mockRepo.On("FindByID", TestOrderID).Return(CreateMockOrder(TestOrderID, TestUserID, TestProductID, 1, "19.99", domain.OrderCancelled), nil)
	mockRepo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)

	order, err := svc.UpdateOrderStatus(context.Background(), TestOrderID, domain.OrderRefunded)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderRefunded, order.Status)
}

func TestOrderService_GetOrderStatus(t *testing.T) {
	svc, mockRepo, _, _, _ := newOrderServiceForTest()
	mockRepo.On("FindByID", TestOrderID).Return(CreateMockOrder(TestOrderID, TestUserID, TestProductID, 1, "19.99", domain.OrderPaid), nil)

	status, err := svc.GetOrderStatus(context.Background(), TestOrderID)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, status)
}
