// Package rates fetches the USD to EUR conversion rate used to
// present TCGplayer prices in the shop currency.
package rates

import (
	"encoding/json"
	"fmt"
	"time"

	"tcgstore/httpclient"

	"github.com/go-resty/resty/v2"
)

// FallbackUSDToEUR is the approximate rate substituted when the rate
// API is unreachable. An approximate price beats a failed sync.
const FallbackUSDToEUR = 0.92

type Client struct {
	baseURL string
	client  *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  httpclient.New(10 * time.Second),
	}
}

type rateResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (c *Client) USDToEUR() (float64, error) {
	resp, err := c.client.R().Get(c.baseURL + "/latest/USD")
	if err != nil {
		return 0, err
	}
	if resp.IsError() {
		return 0, fmt.Errorf("rate API returned %d", resp.StatusCode())
	}

	var result rateResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return 0, err
	}

	rate, ok := result.Rates["EUR"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("rate API response missing EUR rate")
	}
	return rate, nil
}
