// Package tcgapi talks to the card marketplace API (pokemontcg.io v2
// shape) to search cards by name and fetch their TCGplayer price
// quotes.
package tcgapi

import (
	"encoding/json"
	"fmt"
	"time"

	"tcgstore/httpclient"
	"tcgstore/pricing"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	baseURL string
	apiKey  string
	client  *resty.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  httpclient.New(15 * time.Second),
	}
}

type cardData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TCGPlayer struct {
		URL    string                           `json:"url"`
		Prices map[string]*pricing.VariantQuote `json:"prices"`
	} `json:"tcgplayer"`
}

type searchResponse struct {
	Data []cardData `json:"data"`
}

type cardResponse struct {
	Data cardData `json:"data"`
}

func (c *Client) request() *resty.Request {
	req := c.client.R()
	if c.apiKey != "" {
		req.SetHeader("X-Api-Key", c.apiKey)
	}
	return req
}

// Search finds the best match for a card by name and set name.
// Returns (nil, nil) when nothing matches.
func (c *Client) Search(name, setName string) (*pricing.CardMatch, error) {
	resp, err := c.request().
		SetQueryParam("q", fmt.Sprintf("name:%q set.name:%q", name, setName)).
		SetQueryParam("pageSize", "1").
		Get(c.baseURL + "/cards")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("card search returned %d", resp.StatusCode())
	}

	var result searchResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return nil, nil
	}

	card := result.Data[0]
	return &pricing.CardMatch{
		ProductID: card.ID,
		Name:      card.Name,
		URL:       card.TCGPlayer.URL,
	}, nil
}

// Quote fetches the multi-variant price quote for one product.
func (c *Client) Quote(productID string) (*pricing.Quote, error) {
	resp, err := c.request().Get(c.baseURL + "/cards/" + productID)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("quote fetch for %s returned %d", productID, resp.StatusCode())
	}

	var result cardResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}

	return &pricing.Quote{
		URL:      result.Data.TCGPlayer.URL,
		Variants: result.Data.TCGPlayer.Prices,
	}, nil
}
