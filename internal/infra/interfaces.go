package infra

import "context"

type UserClientInterface interface {
	ValidateUser(ctx context.Context, userID uint64) (bool, error)
}

type TraderClientInterface interface {
	GetProduct(ctx context.Context, productID uint64) (*ProductInfo, error)
	CheckStock(ctx context.Context, productID uint64, quantity int) (bool, error)
	UpdateStock(ctx context.Context, productID uint64, quantity int) (bool, error)
}

type OrderClientInterface interface {
	GetOrder(ctx context.Context, orderID uint64) (*OrderInfo, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status string) error
}

var _ UserClientInterface = (*UserClient)(nil)
var _ TraderClientInterface = (*TraderClient)(nil)
var _ OrderClientInterface = (*OrderClient)(nil)
