package database

import (
	"fmt"
	"log"
	"time"

	"tcgstore/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the global database handle used by controllers and stores.
var DB *gorm.DB

func ConnectDatabase(dsn string) {
	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("❌ Failed to get underlying sql.DB:", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	fmt.Println("✅ Database connected successfully!")

	err = DB.AutoMigrate(
		&models.User{},
		&models.Card{},
		&models.CardPricing{},
		&models.Order{},
		&models.SMTPSettings{},
	)
	if err != nil {
		log.Fatalf("❌ Failed to migrate the database: %v\n", err)
	}
	fmt.Println("✅ Database migrated successfully!")
}
