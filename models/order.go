package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// Order is a purchase offer made against a listed card. Payment itself
// happens outside the system; the seller moves the order through its
// statuses by hand.
type Order struct {
	ID         uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	Reference  string         `json:"reference" gorm:"type:varchar(36);uniqueIndex:idx_orders_reference;not null"`
	CardID     uint64         `json:"card_id" gorm:"index;not null"`
	Card       Card           `json:"card" gorm:"foreignKey:CardID"`
	SellerID   uint64         `json:"seller_id" gorm:"index;not null"`
	BuyerName  string         `json:"buyer_name" gorm:"not null"`
	BuyerEmail string         `json:"buyer_email" gorm:"not null"`
	Message    string         `json:"message"`
	AmountEUR  float64        `json:"amount_eur"`
	Status     string         `json:"status" gorm:"type:varchar(16);default:'pending'"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return true
	}
	return false
}
