package controllers

import (
	"errors"
	"log"
	"strconv"

	"tcgstore/database"
	"tcgstore/models"
	"tcgstore/pricing"

	"github.com/gofiber/fiber/v2"
)

// GetCardDisplayPrice returns the presented price for one card. Pure
// read over persisted state, safe on every page view.
func GetCardDisplayPrice(c *fiber.Ctx) error {
	cardID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid card id"})
	}

	display, err := Pricing.GetCardDisplayPrice(cardID)
	if err != nil {
		log.Printf("❌ Display price lookup failed for card %d: %v", cardID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve display price"})
	}
	if display == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No pricing available for this card"})
	}

	return c.JSON(display)
}

// SyncCardPricing triggers a marketplace sync for one card owned by
// the caller (admins may sync any card).
func SyncCardPricing(c *fiber.Ctx) error {
	cardID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid card id"})
	}

	if ok, resp := requireCardAccess(c, cardID); !ok {
		return resp
	}

	row, err := Pricing.SyncCardPricing(cardID)
	if err != nil {
		if errors.Is(err, pricing.ErrCardNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Card not found"})
		}
		log.Printf("❌ Sync failed for card %d: %v", cardID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Sync failed", "detail": err.Error()})
	}

	return c.JSON(row)
}

// GetIndicativePrice returns the live blended quote for one card.
// Nothing is persisted; this is a pricing aid for the shop owner.
func GetIndicativePrice(c *fiber.Ctx) error {
	cardID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid card id"})
	}

	if ok, resp := requireCardAccess(c, cardID); !ok {
		return resp
	}

	result, err := Pricing.GetIndicativePrice(cardID)
	if err != nil {
		if errors.Is(err, pricing.ErrCardNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Card not found"})
		}
		log.Printf("❌ Indicative price failed for card %d: %v", cardID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch indicative price"})
	}

	return c.JSON(result)
}

type OverrideRequest struct {
	UseCustomPrice bool     `json:"use_custom_price"`
	CustomPriceEUR *float64 `json:"custom_price_eur"`
}

// SetPriceOverride is the only writer of the override fields. It never
// touches the market-derived columns, mirroring how a sync never
// touches these.
func SetPriceOverride(c *fiber.Ctx) error {
	cardID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid card id"})
	}

	if ok, resp := requireCardAccess(c, cardID); !ok {
		return resp
	}

	var req OverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}
	if req.UseCustomPrice && (req.CustomPriceEUR == nil || *req.CustomPriceEUR <= 0) {
		return c.Status(400).JSON(fiber.Map{"error": "custom_price_eur must be positive when use_custom_price is set"})
	}

	var row models.CardPricing
	res := database.DB.Where("card_id = ?", cardID).First(&row)
	if res.Error != nil {
		// Lazily create the pricing row so an override can be set
		// before the first sync.
		row = models.CardPricing{CardID: cardID}
	}
	row.UseCustomPrice = req.UseCustomPrice
	row.CustomPriceEUR = req.CustomPriceEUR

	if err := database.DB.Save(&row).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save price override"})
	}

	return c.JSON(row)
}

// requireCardAccess checks the caller owns the card (admins pass). On
// denial the error response is already written; callers return resp.
func requireCardAccess(c *fiber.Ctx, cardID uint64) (ok bool, resp error) {
	userID := c.Locals("user_id").(uint64)
	isAdmin, _ := c.Locals("is_admin").(bool)

	var card models.Card
	if err := database.DB.First(&card, cardID).Error; err != nil {
		return false, c.Status(404).JSON(fiber.Map{"error": "Card not found"})
	}
	if card.UserID != userID && !isAdmin {
		return false, c.Status(403).JSON(fiber.Map{"error": "Not your card"})
	}
	return true, nil
}
