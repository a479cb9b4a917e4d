package pricing

import (
	"errors"

	"tcgstore/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the database-backed Store used in production.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Card(cardID uint64) (*models.Card, error) {
	var card models.Card
	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (s *GormStore) Pricing(cardID uint64) (*models.CardPricing, error) {
	var p models.CardPricing
	if err := s.db.Where("card_id = ?", cardID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// SavePricing upserts on card_id. On conflict only the market-derived
// columns are updated, so a concurrent admin override write can never
// be clobbered by a sync. Single statement, no partial overwrite.
func (s *GormStore) SavePricing(p *models.CardPricing) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "card_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"tcg_price_usd",
			"tcg_product_url",
			"last_synced_at",
			"usd_to_eur_rate",
			"rate_fetched_at",
			"cardmarket_url",
			"updated_at",
		}),
	}).Create(p).Error
}
