package pricing

import (
	"errors"
	"log"
	"time"

	"tcgstore/cardmarket"
	"tcgstore/models"
	"tcgstore/rates"
)

// ErrCardNotFound is returned by SyncCardPricing when the card id does
// not exist.
var ErrCardNotFound = errors.New("card not found")

// CardMatch is the best search hit for a card on the price
// marketplace.
type CardMatch struct {
	ProductID string
	Name      string
	URL       string
}

// Quote is one marketplace's full multi-variant quote for a product.
type Quote struct {
	URL      string
	Variants map[string]*VariantQuote
}

// MarketClient searches the price marketplace and fetches quotes.
// Search returns (nil, nil) when no product matches.
type MarketClient interface {
	Search(name, setName string) (*CardMatch, error)
	Quote(productID string) (*Quote, error)
}

// RateClient fetches the current USD to EUR conversion rate.
type RateClient interface {
	USDToEUR() (float64, error)
}

// Store is the persistence surface the pricing service needs. Card and
// Pricing return (nil, nil) when the row does not exist. SavePricing
// must upsert on card id and must only write market-derived columns on
// conflict, leaving the override columns untouched.
type Store interface {
	Card(cardID uint64) (*models.Card, error)
	Pricing(cardID uint64) (*models.CardPricing, error)
	SavePricing(p *models.CardPricing) error
}

// DisplayPrice is what a storefront page shows for one card.
type DisplayPrice struct {
	Price         *float64 `json:"price"`
	Currency      string   `json:"currency"`
	Source        string   `json:"source"`
	TCGPriceUSD   *float64 `json:"tcg_price_usd,omitempty"`
	CardmarketURL string   `json:"cardmarket_url,omitempty"`
}

type Service struct {
	store Store
	tcg   MarketClient
	rates RateClient
}

func NewService(store Store, tcg MarketClient, rateClient RateClient) *Service {
	return &Service{store: store, tcg: tcg, rates: rateClient}
}

// SyncCardPricing fetches the card's current marketplace price and
// upserts the pricing row. Market-derived fields are overwritten
// unconditionally; the owner's override fields are preserved (or
// default to disabled on first sync). A missing marketplace match is
// not an error; a failed rate fetch falls back to a fixed approximate
// rate. Everything else propagates to the caller.
func (s *Service) SyncCardPricing(cardID uint64) (*models.CardPricing, error) {
	card, err := s.store.Card(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	existing, err := s.store.Pricing(cardID)
	if err != nil {
		return nil, err
	}

	match, err := s.tcg.Search(card.Name, card.SetName)
	if err != nil {
		return nil, err
	}

	var priceUSD *float64
	var productURL string
	if match != nil {
		quote, err := s.tcg.Quote(match.ProductID)
		if err != nil {
			return nil, err
		}
		priceUSD = RepresentativePrice(quote.Variants)
		productURL = quote.URL
		if productURL == "" {
			productURL = match.URL
		}
	}

	rate, err := s.rates.USDToEUR()
	if err != nil {
		log.Printf("❌ Rate fetch failed, using fallback %.2f: %v", rates.FallbackUSDToEUR, err)
		rate = rates.FallbackUSDToEUR
	}

	now := time.Now()
	row := &models.CardPricing{
		CardID:        cardID,
		TCGPriceUSD:   priceUSD,
		TCGProductURL: productURL,
		LastSyncedAt:  &now,
		USDToEURRate:  &rate,
		RateFetchedAt: &now,
		CardmarketURL: cardmarket.SearchURL(card.Name, card.SetName, card.Language),
	}
	if existing != nil {
		row.UseCustomPrice = existing.UseCustomPrice
		row.CustomPriceEUR = existing.CustomPriceEUR
	}

	if err := s.store.SavePricing(row); err != nil {
		return nil, err
	}
	return row, nil
}

// IndicativePrice is a live, non-persisted blend of marketplace
// quotes. Explicitly not a transactable price.
type IndicativePrice struct {
	AllVariantAverage *float64      `json:"all_variant_average"`
	Blended           float64       `json:"blended"`
	Sources           []SourceQuote `json:"sources"`
}

// GetIndicativePrice fetches the card's current quote and reduces it
// to one indicative number per averaging path: the single-source
// all-variant mean and the weighted cross-source blend. Nothing is
// persisted.
func (s *Service) GetIndicativePrice(cardID uint64) (*IndicativePrice, error) {
	card, err := s.store.Card(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	match, err := s.tcg.Search(card.Name, card.SetName)
	if err != nil {
		return nil, err
	}

	result := &IndicativePrice{}
	if match != nil {
		quote, err := s.tcg.Quote(match.ProductID)
		if err != nil {
			return nil, err
		}
		result.AllVariantAverage = AllVariantAverage(quote.Variants)
		result.Sources = append(result.Sources, SourceQuote{
			Source:  SourceTCGPlayer,
			Trend:   RepresentativePrice(quote.Variants),
			Average: result.AllVariantAverage,
		})
	}
	result.Blended = Aggregate(result.Sources)
	return result, nil
}

// GetCardDisplayPrice derives the presented price from persisted state
// only. No network calls, no writes. Returns nil when the card or its
// pricing row does not exist.
func (s *Service) GetCardDisplayPrice(cardID uint64) (*DisplayPrice, error) {
	card, err := s.store.Card(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, nil
	}

	p, err := s.store.Pricing(cardID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if p.UseCustomPrice && p.CustomPriceEUR != nil {
		return &DisplayPrice{
			Price:         p.CustomPriceEUR,
			Currency:      "EUR",
			Source:        "custom",
			CardmarketURL: p.CardmarketURL,
		}, nil
	}

	if p.TCGPriceUSD != nil && p.USDToEURRate != nil {
		eur := *p.TCGPriceUSD * *p.USDToEURRate
		return &DisplayPrice{
			Price:         &eur,
			Currency:      "EUR",
			Source:        "tcgplayer",
			TCGPriceUSD:   p.TCGPriceUSD,
			CardmarketURL: p.CardmarketURL,
		}, nil
	}

	return &DisplayPrice{
		Price:         nil,
		Currency:      "EUR",
		Source:        "none",
		CardmarketURL: p.CardmarketURL,
	}, nil
}
