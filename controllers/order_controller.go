package controllers

import (
	"fmt"

	"tcgstore/database"
	"tcgstore/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OfferRequest struct {
	BuyerName  string `json:"buyer_name"`
	BuyerEmail string `json:"buyer_email"`
	Message    string `json:"message"`
}

// CreateOffer records a purchase offer against a listed card on a
// public storefront. The offer amount is the card's current display
// price (custom or asking price).
func CreateOffer(c *fiber.Ctx) error {
	slug := c.Params("slug")
	cardID := c.Params("id")

	var req OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}
	if req.BuyerName == "" || req.BuyerEmail == "" {
		return c.Status(400).JSON(fiber.Map{"error": "buyer_name and buyer_email are required"})
	}

	var seller models.User
	if err := database.DB.Where("shop_slug = ?", slug).First(&seller).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Shop not found"})
	}

	var card models.Card
	if err := database.DB.First(&card, cardID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Card not found"})
	}
	if card.UserID != seller.ID || !card.ListedForSale {
		return c.Status(404).JSON(fiber.Map{"error": "Card is not listed in this shop"})
	}

	amount := 0.0
	if card.AskingPriceEUR != nil {
		amount = *card.AskingPriceEUR
	} else if display, err := Pricing.GetCardDisplayPrice(card.ID); err == nil && display != nil && display.Price != nil {
		amount = *display.Price
	}

	order := models.Order{
		Reference:  uuid.NewString(),
		CardID:     card.ID,
		SellerID:   seller.ID,
		BuyerName:  req.BuyerName,
		BuyerEmail: req.BuyerEmail,
		Message:    req.Message,
		AmountEUR:  amount,
		Status:     models.OrderStatusPending,
	}
	if err := database.DB.Create(&order).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create order"})
	}

	// Best-effort seller notification, the order stands either way.
	notifySeller(&seller, &order, &card)

	return c.Status(201).JSON(order)
}

// GetOrders lists orders for the authenticated seller, newest first.
func GetOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint64)

	var orders []models.Order
	query := database.DB.Preload("Card").Where("seller_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch orders"})
	}

	return c.JSON(orders)
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus moves an order between pending/paid/shipped/
// cancelled. Only the seller may do this.
func UpdateOrderStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint64)
	id := c.Params("id")

	var order models.Order
	if err := database.DB.First(&order, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Order not found"})
	}
	if order.SellerID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Not your order"})
	}

	var req OrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}
	if !models.ValidOrderStatus(req.Status) {
		return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("Invalid status %q", req.Status)})
	}

	order.Status = req.Status
	if err := database.DB.Save(&order).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update order"})
	}

	return c.JSON(order)
}
