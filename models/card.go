package models

import (
	"time"

	"gorm.io/gorm"
)

// Card is a single Pokemon card listed on a user's storefront.
type Card struct {
	ID             uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID         uint64         `json:"user_id" gorm:"index;not null"`
	User           User           `json:"-" gorm:"foreignKey:UserID"`
	Name           string         `json:"name" gorm:"type:varchar(128);not null"`
	SetName        string         `json:"set_name" gorm:"type:varchar(128);not null"`
	CardNumber     string         `json:"card_number"`
	Rarity         string         `json:"rarity"`
	Condition      string         `json:"condition"`
	Language       string         `json:"language" gorm:"type:varchar(8);default:'en'"`
	ImageURL       string         `json:"image_url"`
	ListedForSale  bool           `json:"listed_for_sale" gorm:"default:false"`
	AskingPriceEUR *float64       `json:"asking_price_eur"`
	Pricing        *CardPricing   `json:"pricing,omitempty" gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
