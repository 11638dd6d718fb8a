package infra

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

type UserClient struct {
	client *resty.Client
}

func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

// ValidateUser asks the user service whether the user exists. A 404 is a
// plain "does not exist", not an error.
func (c *UserClient) ValidateUser(ctx context.Context, userID uint64) (bool, error) {
	var valid bool
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&valid).
		Get(fmt.Sprintf("/users/%d/validate", userID))
	if err != nil {
		return false, fmt.Errorf("user service: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if resp.IsError() {
		return false, fmt.Errorf("user service returned status %d", resp.StatusCode())
	}
	return valid, nil
}
