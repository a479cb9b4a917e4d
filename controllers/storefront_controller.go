package controllers

import (
	"log"

	"tcgstore/cardmarket"
	"tcgstore/database"
	"tcgstore/models"
	"tcgstore/pricing"

	"github.com/gofiber/fiber/v2"
)

type StorefrontCard struct {
	Card  models.Card           `json:"card"`
	Price *pricing.DisplayPrice `json:"price"`
}

// GetStorefront is the public shop page for one user: profile plus
// every listed card with its display price. Prices come from persisted
// state only; nothing is fetched here.
func GetStorefront(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var user models.User
	if err := database.DB.Where("shop_slug = ?", slug).First(&user).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Shop not found"})
	}
	if !user.IsActive {
		return c.Status(404).JSON(fiber.Map{"error": "Shop not found"})
	}

	var cards []models.Card
	if err := database.DB.Where("user_id = ? AND listed_for_sale = ?", user.ID, true).
		Order("created_at DESC").Find(&cards).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch cards"})
	}

	listings := make([]StorefrontCard, 0, len(cards))
	for _, card := range cards {
		display, err := Pricing.GetCardDisplayPrice(card.ID)
		if err != nil {
			log.Printf("❌ Display price failed for card %d: %v", card.ID, err)
		}
		if display == nil {
			// Never synced: still show a link-out instead of nothing.
			display = &pricing.DisplayPrice{
				Currency:      "EUR",
				Source:        "none",
				CardmarketURL: cardmarket.SearchURL(card.Name, card.SetName, card.Language),
			}
		}
		listings = append(listings, StorefrontCard{Card: card, Price: display})
	}

	return c.JSON(fiber.Map{
		"shop":  user.ToResponse(),
		"cards": listings,
	})
}
