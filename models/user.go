package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is a marketplace account. Every user gets a public storefront
// addressed by its slug.
type User struct {
	ID        uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string         `json:"username" gorm:"type:varchar(64);uniqueIndex:idx_users_username;not null"`
	Email     string         `json:"email" gorm:"type:varchar(255);not null"`
	Password  string         `json:"-" gorm:"not null"`
	ShopName  string         `json:"shop_name"`
	ShopSlug  string         `json:"shop_slug" gorm:"type:varchar(64);uniqueIndex:idx_users_shop_slug;not null"`
	Bio       string         `json:"bio"`
	IsAdmin   bool           `json:"is_admin" gorm:"default:false"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	Cards     []Card         `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type UserResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	ShopName string `json:"shop_name"`
	ShopSlug string `json:"shop_slug"`
	Bio      string `json:"bio"`
	IsActive bool   `json:"is_active"`
}

func (u *User) HashPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		ShopName: u.ShopName,
		ShopSlug: u.ShopSlug,
		Bio:      u.Bio,
		IsActive: u.IsActive,
	}
}
