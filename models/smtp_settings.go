package models

import (
	"time"
)

// SMTPSettings holds the outgoing-mail configuration managed from the
// admin panel. A single row is used; Password is stored AES-GCM
// encrypted and never serialized.
type SMTPSettings struct {
	ID          uint64    `json:"id" gorm:"primaryKey"`
	Host        string    `json:"host"`
	Port        int       `json:"port" gorm:"default:587"`
	Username    string    `json:"username"`
	Password    string    `json:"-" gorm:"column:password_enc"`
	FromAddress string    `json:"from_address"`
	UseTLS      bool      `json:"use_tls" gorm:"default:true"`
	UpdatedAt   time.Time `json:"updated_at"`
}
