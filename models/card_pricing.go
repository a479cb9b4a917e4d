package models

import (
	"time"
)

// CardPricing is the per-card pricing record, one row per card.
// Market-derived fields are overwritten on every sync; the override
// fields (UseCustomPrice, CustomPriceEUR) belong to the shop owner and
// are never touched by a sync.
type CardPricing struct {
	ID     uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	CardID uint64 `json:"card_id" gorm:"uniqueIndex:idx_card_pricings_card_id;not null"`

	// Market-derived (sync-owned)
	TCGPriceUSD   *float64   `json:"tcg_price_usd"`
	TCGProductURL string     `json:"tcg_product_url"`
	LastSyncedAt  *time.Time `json:"last_synced_at"`
	USDToEURRate  *float64   `json:"usd_to_eur_rate"`
	RateFetchedAt *time.Time `json:"rate_fetched_at"`

	// Admin/owner-owned override
	UseCustomPrice bool     `json:"use_custom_price" gorm:"default:false"`
	CustomPriceEUR *float64 `json:"custom_price_eur"`

	// Search link only, no price is ever read from this marketplace.
	CardmarketURL string `json:"cardmarket_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
