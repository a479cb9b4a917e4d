package controllers

import (
	"tcgstore/database"
	"tcgstore/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyCards lists the authenticated user's cards, with optional
// search and sale-state filters.
func GetMyCards(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint64)

	var cards []models.Card
	query := database.DB.Preload("Pricing").Where("user_id = ?", userID)

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if setName := c.Query("set"); setName != "" {
		query = query.Where("set_name = ?", setName)
	}
	switch c.Query("listed") {
	case "true":
		query = query.Where("listed_for_sale = ?", true)
	case "false":
		query = query.Where("listed_for_sale = ?", false)
	}

	if err := query.Order("created_at DESC").Find(&cards).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch cards"})
	}

	return c.JSON(cards)
}

func GetCard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint64)
	id := c.Params("id")

	var card models.Card
	if err := database.DB.Preload("Pricing").First(&card, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Card not found"})
	}
	if card.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Not your card"})
	}

	return c.JSON(card)
}

func CreateCard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint64)

	var card models.Card
	if err := c.BodyParser(&card); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input", "detail": err.Error()})
	}
	if card.Name == "" || card.SetName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name and set_name are required"})
	}

	card.ID = 0
	card.UserID = userID
	if card.Language == "" {
		card.Language = "en"
	}

	if err := database.DB.Create(&card).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create card"})
	}

	return c.Status(201).JSON(card)
}

func UpdateCard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint64)
	id := c.Params("id")

	var card models.Card
	if err := database.DB.First(&card, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Card not found"})
	}
	if card.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Not your card"})
	}

	var input models.Card
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}

	card.Name = input.Name
	card.SetName = input.SetName
	card.CardNumber = input.CardNumber
	card.Rarity = input.Rarity
	card.Condition = input.Condition
	if input.Language != "" {
		card.Language = input.Language
	}
	card.ImageURL = input.ImageURL
	card.ListedForSale = input.ListedForSale
	card.AskingPriceEUR = input.AskingPriceEUR

	if err := database.DB.Save(&card).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update card"})
	}

	return c.JSON(card)
}

func DeleteCard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint64)
	id := c.Params("id")

	var card models.Card
	if err := database.DB.First(&card, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Card not found"})
	}
	if card.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Not your card"})
	}

	tx := database.DB.Begin()

	// Pricing rows have no soft delete, remove explicitly.
	if err := tx.Where("card_id = ?", card.ID).Delete(&models.CardPricing{}).Error; err != nil {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete card pricing"})
	}
	if err := tx.Delete(&card).Error; err != nil {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete card"})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to commit transaction"})
	}

	return c.JSON(fiber.Map{"message": "Card deleted successfully"})
}
