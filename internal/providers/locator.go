package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chronois/avrora/internal/domain"
)

// DefaultLocatorURL is the ip-api.com endpoint for the caller's address.
const DefaultLocatorURL = "http://ip-api.com/json/?fields=status,message,city,country"

// Locator resolves the current city from the public IP address.
type Locator struct {
	client *Client
	url    string
}

// NewLocator returns a locator. An empty url means ip-api.com.
func NewLocator(client *Client, url string) *Locator {
	if url == "" {
		url = DefaultLocatorURL
	}
	return &Locator{client: client, url: url}
}

type ipAPIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Locate implements domain.Locator.
func (l *Locator) Locate(ctx context.Context) (domain.Location, error) {
	body, err := l.client.get(ctx, l.url)
	if err != nil {
		return domain.Location{}, fmt.Errorf("locate: %w", err)
	}

	var resp ipAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Location{}, fmt.Errorf("locate: decode: %w", err)
	}
	if resp.Status != "success" {
		return domain.Location{}, fmt.Errorf("locate: %s", resp.Message)
	}
	if resp.City == "" {
		return domain.Location{}, errors.New("locate: no city in response")
	}

	return domain.Location{City: resp.City, Country: resp.Country}, nil
}

var _ domain.Locator = (*Locator)(nil)
