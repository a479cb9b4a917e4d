package pricing

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"tcgstore/models"
)

// fakeStore keeps pricing rows in memory and mimics the upsert
// semantics of GormStore: on an existing card_id only market-derived
// fields are written.
type fakeStore struct {
	cards   map[uint64]*models.Card
	pricing map[uint64]*models.CardPricing
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cards:   make(map[uint64]*models.Card),
		pricing: make(map[uint64]*models.CardPricing),
	}
}

func (s *fakeStore) Card(cardID uint64) (*models.Card, error) {
	return s.cards[cardID], nil
}

func (s *fakeStore) Pricing(cardID uint64) (*models.CardPricing, error) {
	if p, ok := s.pricing[cardID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (s *fakeStore) SavePricing(p *models.CardPricing) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if existing, ok := s.pricing[p.CardID]; ok {
		existing.TCGPriceUSD = p.TCGPriceUSD
		existing.TCGProductURL = p.TCGProductURL
		existing.LastSyncedAt = p.LastSyncedAt
		existing.USDToEURRate = p.USDToEURRate
		existing.RateFetchedAt = p.RateFetchedAt
		existing.CardmarketURL = p.CardmarketURL
		return nil
	}
	cp := *p
	s.pricing[p.CardID] = &cp
	return nil
}

type fakeMarket struct {
	match     *CardMatch
	quote     *Quote
	searchErr error
	quoteErr  error
}

func (m *fakeMarket) Search(name, setName string) (*CardMatch, error) {
	return m.match, m.searchErr
}

func (m *fakeMarket) Quote(productID string) (*Quote, error) {
	return m.quote, m.quoteErr
}

type fakeRates struct {
	rate float64
	err  error
}

func (r *fakeRates) USDToEUR() (float64, error) { return r.rate, r.err }

func testCard(id uint64) *models.Card {
	return &models.Card{ID: id, Name: "Charizard", SetName: "Base Set", Language: "en"}
}

func marketWithPrice(usd float64) *fakeMarket {
	return &fakeMarket{
		match: &CardMatch{ProductID: "base1-4", Name: "Charizard", URL: "https://prices.example/base1-4"},
		quote: &Quote{
			URL:      "https://prices.example/base1-4",
			Variants: map[string]*VariantQuote{"holofoil": {Market: fp(usd)}},
		},
	}
}

func TestSyncCardPricingNotFound(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeMarket{}, &fakeRates{rate: 0.9})
	_, err := svc.SyncCardPricing(42)
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("err = %v, want ErrCardNotFound", err)
	}
}

func TestSyncCardPricingHappyPath(t *testing.T) {
	store := newFakeStore()
	store.cards[1] = testCard(1)
	svc := NewService(store, marketWithPrice(10.00), &fakeRates{rate: 0.9})

	row, err := svc.SyncCardPricing(1)
	if err != nil {
		t.Fatal(err)
	}
	if row.TCGPriceUSD == nil || *row.TCGPriceUSD != 10.00 {
		t.Errorf("TCGPriceUSD = %v, want 10.00", row.TCGPriceUSD)
	}
	if row.USDToEURRate == nil || *row.USDToEURRate != 0.9 {
		t.Errorf("USDToEURRate = %v, want 0.9", row.USDToEURRate)
	}
	if row.LastSyncedAt == nil || row.RateFetchedAt == nil {
		t.Error("sync timestamps not set")
	}
	if row.CardmarketURL == "" {
		t.Error("CardmarketURL not generated")
	}
	if row.UseCustomPrice || row.CustomPriceEUR != nil {
		t.Error("override fields should default to disabled on create")
	}
}

func TestSyncCardPricingRateFallback(t *testing.T) {
	store := newFakeStore()
	store.cards[1] = testCard(1)
	svc := NewService(store, marketWithPrice(10.00), &fakeRates{err: errors.New("rate API down")})

	row, err := svc.SyncCardPricing(1)
	if err != nil {
		t.Fatal(err)
	}
	if row.USDToEURRate == nil || *row.USDToEURRate != 0.92 {
		t.Errorf("USDToEURRate = %v, want fallback 0.92", row.USDToEURRate)
	}
}

func TestSyncCardPricingNoMatchIsNotAnError(t *testing.T) {
	store := newFakeStore()
	store.cards[1] = testCard(1)
	svc := NewService(store, &fakeMarket{}, &fakeRates{rate: 0.9})

	row, err := svc.SyncCardPricing(1)
	if err != nil {
		t.Fatal(err)
	}
	if row.TCGPriceUSD != nil {
		t.Errorf("TCGPriceUSD = %v, want nil without a match", row.TCGPriceUSD)
	}
	if row.CardmarketURL == "" {
		t.Error("CardmarketURL should be generated even without a match")
	}
}

func TestSyncCardPricingSearchErrorPropagates(t *testing.T) {
	store := newFakeStore()
	store.cards[1] = testCard(1)
	svc := NewService(store, &fakeMarket{searchErr: fmt.Errorf("marketplace down")}, &fakeRates{rate: 0.9})

	if _, err := svc.SyncCardPricing(1); err == nil {
		t.Fatal("expected search error to propagate")
	}
	if _, ok := store.pricing[1]; ok {
		t.Error("failed sync must not write a pricing row")
	}
}

func TestSyncPreservesOverride(t *testing.T) {
	store := newFakeStore()
	store.cards[1] = testCard(1)
	store.pricing[1] = &models.CardPricing{
		CardID:         1,
		UseCustomPrice: true,
		CustomPriceEUR: fp(25.99),
	}
	svc := NewService(store, marketWithPrice(10.00), &fakeRates{rate: 0.9})

	row, err := svc.SyncCardPricing(1)
	if err != nil {
		t.Fatal(err)
	}
	if !row.UseCustomPrice {
		t.Error("UseCustomPrice was reset by sync")
	}
	if row.CustomPriceEUR == nil || *row.CustomPriceEUR != 25.99 {
		t.Errorf("CustomPriceEUR = %v, want 25.99", row.CustomPriceEUR)
	}

	display, err := svc.GetCardDisplayPrice(1)
	if err != nil {
		t.Fatal(err)
	}
	if display.Source != "custom" {
		t.Errorf("Source = %q, want custom", display.Source)
	}
	if display.Price == nil || *display.Price != 25.99 {
		t.Errorf("Price = %v, want 25.99", display.Price)
	}
}

func TestSyncIdempotentOverrideFields(t *testing.T) {
	store := newFakeStore()
	store.cards[1] = testCard(1)
	svc := NewService(store, marketWithPrice(10.00), &fakeRates{rate: 0.9})

	first, err := svc.SyncCardPricing(1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.SyncCardPricing(1)
	if err != nil {
		t.Fatal(err)
	}
	if first.UseCustomPrice != second.UseCustomPrice {
		t.Error("UseCustomPrice changed between syncs")
	}
	if (first.CustomPriceEUR == nil) != (second.CustomPriceEUR == nil) {
		t.Error("CustomPriceEUR changed between syncs")
	}
}

func TestDisplayPriceRoundTrip(t *testing.T) {
	store := newFakeStore()
	store.cards[1] = testCard(1)
	svc := NewService(store, marketWithPrice(10.00), &fakeRates{rate: 0.9})

	if _, err := svc.SyncCardPricing(1); err != nil {
		t.Fatal(err)
	}

	display, err := svc.GetCardDisplayPrice(1)
	if err != nil {
		t.Fatal(err)
	}
	if display.Source != "tcgplayer" {
		t.Errorf("Source = %q, want tcgplayer", display.Source)
	}
	if display.Price == nil || math.Abs(*display.Price-10.00*0.9) > 1e-9 {
		t.Errorf("Price = %v, want %v", display.Price, 10.00*0.9)
	}
	if display.TCGPriceUSD == nil || *display.TCGPriceUSD != 10.00 {
		t.Errorf("TCGPriceUSD = %v, want 10.00", display.TCGPriceUSD)
	}
}

func TestGetIndicativePrice(t *testing.T) {
	store := newFakeStore()
	store.cards[1] = testCard(1)
	market := marketWithPrice(10.00)
	market.quote.Variants["normal"] = &VariantQuote{Mid: fp(6)}
	svc := NewService(store, market, &fakeRates{rate: 0.9})

	result, err := svc.GetIndicativePrice(1)
	if err != nil {
		t.Fatal(err)
	}
	if result.AllVariantAverage == nil || *result.AllVariantAverage != 8 {
		t.Errorf("AllVariantAverage = %v, want 8", result.AllVariantAverage)
	}
	if len(result.Sources) != 1 || result.Sources[0].Source != SourceTCGPlayer {
		t.Errorf("Sources = %+v", result.Sources)
	}
	// normal precedes holofoil in the enumerated order
	if result.Sources[0].Trend == nil || *result.Sources[0].Trend != 6 {
		t.Errorf("Trend = %v, want 6", result.Sources[0].Trend)
	}
	if math.Abs(result.Blended-6) > 1e-9 {
		t.Errorf("Blended = %v, want 6 (single source, trend wins)", result.Blended)
	}
}

func TestGetIndicativePriceNoMatch(t *testing.T) {
	store := newFakeStore()
	store.cards[1] = testCard(1)
	svc := NewService(store, &fakeMarket{}, &fakeRates{rate: 0.9})

	result, err := svc.GetIndicativePrice(1)
	if err != nil {
		t.Fatal(err)
	}
	if result.AllVariantAverage != nil || result.Blended != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}

func TestDisplayPriceNoRecord(t *testing.T) {
	store := newFakeStore()
	store.cards[1] = testCard(1)
	svc := NewService(store, &fakeMarket{}, &fakeRates{rate: 0.9})

	display, err := svc.GetCardDisplayPrice(1)
	if err != nil {
		t.Fatal(err)
	}
	if display != nil {
		t.Errorf("display = %+v, want nil without a pricing row", display)
	}
}

func TestDisplayPriceUnknownCard(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeMarket{}, &fakeRates{rate: 0.9})
	display, err := svc.GetCardDisplayPrice(99)
	if err != nil {
		t.Fatal(err)
	}
	if display != nil {
		t.Errorf("display = %+v, want nil for unknown card", display)
	}
}

func TestDisplayPriceSourceNoneKeepsLinkOut(t *testing.T) {
	store := newFakeStore()
	store.cards[1] = testCard(1)
	svc := NewService(store, &fakeMarket{}, &fakeRates{rate: 0.9})

	if _, err := svc.SyncCardPricing(1); err != nil {
		t.Fatal(err)
	}

	display, err := svc.GetCardDisplayPrice(1)
	if err != nil {
		t.Fatal(err)
	}
	if display.Source != "none" {
		t.Errorf("Source = %q, want none", display.Source)
	}
	if display.Price != nil {
		t.Errorf("Price = %v, want nil", display.Price)
	}
	if display.CardmarketURL == "" {
		t.Error("CardmarketURL should still be present")
	}
}

func TestDisplayPriceOverrideEnabledButUnsetFallsThrough(t *testing.T) {
	store := newFakeStore()
	store.cards[1] = testCard(1)
	store.pricing[1] = &models.CardPricing{
		CardID:         1,
		UseCustomPrice: true, // enabled but no price set
		TCGPriceUSD:    fp(10),
		USDToEURRate:   fp(0.9),
	}
	svc := NewService(store, &fakeMarket{}, &fakeRates{rate: 0.9})

	display, err := svc.GetCardDisplayPrice(1)
	if err != nil {
		t.Fatal(err)
	}
	if display.Source != "tcgplayer" {
		t.Errorf("Source = %q, want tcgplayer when override has no price", display.Source)
	}
}
