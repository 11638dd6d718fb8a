package infra

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

type ProductInfo struct {
	ID    uint64          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type TraderClient struct {
	client *resty.Client
}

func NewTraderClient(baseURL string, timeout time.Duration) *TraderClient {
	return &TraderClient{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

func (c *TraderClient) GetProduct(ctx context.Context, productID uint64) (*ProductInfo, error) {
	var p ProductInfo
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&p).
		Get(fmt.Sprintf("/products/%d", productID))
	if err != nil {
		return nil, fmt.Errorf("trader service: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("trader service returned status %d", resp.StatusCode())
	}
	return &p, nil
}

func (c *TraderClient) CheckStock(ctx context.Context, productID uint64, quantity int) (bool, error) {
	var hasStock bool
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("quantity", fmt.Sprintf("%d", quantity)).
		SetResult(&hasStock).
		Get(fmt.Sprintf("/products/%d/stock", productID))
	if err != nil {
		return false, fmt.Errorf("trader service: %w", err)
	}
	if resp.IsError() {
		return false, fmt.Errorf("trader service returned status %d", resp.StatusCode())
	}
	return hasStock, nil
}

// UpdateStock decrements the product's stock. The trader service answers 400
// when the product is missing or stock is short; that is a rejected decrement,
// not a transport failure.
func (c *TraderClient) UpdateStock(ctx context.Context, productID uint64, quantity int) (bool, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("quantity", fmt.Sprintf("%d", quantity)).
		Put(fmt.Sprintf("/products/%d/stock", productID))
	if err != nil {
		return false, fmt.Errorf("trader service: %w", err)
	}
	if resp.StatusCode() == http.StatusBadRequest {
		return false, nil
	}
	if resp.IsError() {
		return false, fmt.Errorf("trader service returned status %d", resp.StatusCode())
	}
	return true, nil
}
