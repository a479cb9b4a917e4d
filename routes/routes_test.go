package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tcgstore/controllers"
	"tcgstore/models"
	"tcgstore/pricing"

	"github.com/gofiber/fiber/v2"
)

func fp(v float64) *float64 { return &v }

type stubStore struct {
	cards   map[uint64]*models.Card
	pricing map[uint64]*models.CardPricing
}

func (s *stubStore) Card(cardID uint64) (*models.Card, error) {
	return s.cards[cardID], nil
}

func (s *stubStore) Pricing(cardID uint64) (*models.CardPricing, error) {
	return s.pricing[cardID], nil
}

func (s *stubStore) SavePricing(p *models.CardPricing) error { return nil }

type stubMarket struct{}

func (stubMarket) Search(name, setName string) (*pricing.CardMatch, error) { return nil, nil }
func (stubMarket) Quote(productID string) (*pricing.Quote, error)          { return nil, nil }

type stubRates struct{}

func (stubRates) USDToEUR() (float64, error) { return 0.9, nil }

func newTestApp(store *stubStore) *fiber.App {
	controllers.Pricing = pricing.NewService(store, stubMarket{}, stubRates{})

	app := fiber.New()
	RegisterCardRoutes(app)
	RegisterPricingRoutes(app)
	RegisterAdminRoutes(app)
	RegisterOrderRoutes(app)
	return app
}

func TestDisplayPriceRouteIsPublic(t *testing.T) {
	store := &stubStore{
		cards: map[uint64]*models.Card{
			1: {ID: 1, Name: "Charizard", SetName: "Base Set", Language: "en"},
		},
		pricing: map[uint64]*models.CardPricing{
			1: {CardID: 1, TCGPriceUSD: fp(10), USDToEURRate: fp(0.9)},
		},
	}
	app := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/cards/1/price", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 without a token", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var display pricing.DisplayPrice
	if err := json.Unmarshal(body, &display); err != nil {
		t.Fatal(err)
	}
	if display.Source != "tcgplayer" {
		t.Errorf("Source = %q, want tcgplayer", display.Source)
	}
}

func TestDisplayPriceRouteMapsMissingPricingTo404(t *testing.T) {
	app := newTestApp(&stubStore{
		cards:   map[uint64]*models.Card{},
		pricing: map[uint64]*models.CardPricing{},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/cards/9/price", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		t.Fatal("display-price route must not require authentication")
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when no pricing exists", resp.StatusCode)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(&stubStore{
		cards:   map[uint64]*models.Card{},
		pricing: map[uint64]*models.CardPricing{},
	})

	requests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/cards"},
		{"POST", "/api/cards"},
		{"GET", "/api/cards/1"},
		{"PUT", "/api/cards/1"},
		{"DELETE", "/api/cards/1"},
		{"GET", "/api/cards/1/indicative"},
		{"POST", "/api/cards/1/sync"},
		{"PUT", "/api/cards/1/price/override"},
		{"POST", "/api/sync/batch"},
		{"GET", "/api/orders"},
		{"GET", "/api/admin/smtp"},
		{"GET", "/api/admin/users"},
	}

	for _, r := range requests {
		resp, err := app.Test(httptest.NewRequest(r.method, r.path, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401 without a token", r.method, r.path, resp.StatusCode)
		}
	}
}

func TestProtectedRoutesRejectGarbageToken(t *testing.T) {
	app := newTestApp(&stubStore{
		cards:   map[uint64]*models.Card{},
		pricing: map[uint64]*models.CardPricing{},
	})

	req := httptest.NewRequest("POST", "/api/cards/1/sync", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for a malformed token", resp.StatusCode)
	}
}
