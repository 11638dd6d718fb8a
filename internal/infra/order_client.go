package infra

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// OrderInfo is the read model the payment service consumes; it never touches
// order storage directly.
type OrderInfo struct {
	ID         uint64          `json:"id"`
	UserID     uint64          `json:"userId"`
	ProductID  uint64          `json:"productId"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`
	OrderDate  time.Time       `json:"orderDate"`
}

type OrderClient struct {
	client *resty.Client
}

func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	return &OrderClient{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

func (c *OrderClient) GetOrder(ctx context.Context, orderID uint64) (*OrderInfo, error) {
	var o OrderInfo
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&o).
		Get(fmt.Sprintf("/orders/%d", orderID))
	if err != nil {
		return nil, fmt.Errorf("order service: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("order service returned status %d", resp.StatusCode())
	}
	return &o, nil
}

func (c *OrderClient) UpdateOrderStatus(ctx context.Context, orderID uint64, status string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("status", status).
		Put(fmt.Sprintf("/orders/%d/status", orderID))
	if err != nil {
		return fmt.Errorf("order service: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("order service returned status %d", resp.StatusCode())
	}
	return nil
}
