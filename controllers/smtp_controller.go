package controllers

import (
	"fmt"
	"log"

	"tcgstore/database"
	"tcgstore/mailer"
	"tcgstore/models"

	"github.com/gofiber/fiber/v2"
)

// GetSMTPSettings returns the configured SMTP settings (password is
// never serialized).
func GetSMTPSettings(c *fiber.Ctx) error {
	var settings models.SMTPSettings
	if err := database.DB.First(&settings).Error; err != nil {
		return c.JSON(models.SMTPSettings{Port: 587, UseTLS: true})
	}
	return c.JSON(settings)
}

type SMTPSettingsRequest struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	FromAddress string `json:"from_address"`
	UseTLS      bool   `json:"use_tls"`
}

// UpdateSMTPSettings upserts the single settings row. An empty
// password in the request keeps the stored one.
func UpdateSMTPSettings(c *fiber.Ctx) error {
	var req SMTPSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}
	if req.Host == "" || req.FromAddress == "" {
		return c.Status(400).JSON(fiber.Map{"error": "host and from_address are required"})
	}
	if req.Port == 0 {
		req.Port = 587
	}

	var settings models.SMTPSettings
	database.DB.First(&settings)

	settings.Host = req.Host
	settings.Port = req.Port
	settings.Username = req.Username
	settings.FromAddress = req.FromAddress
	settings.UseTLS = req.UseTLS

	if req.Password != "" {
		enc, err := mailer.EncryptSecret([]byte(Cfg.SecretsKey), req.Password)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to encrypt password"})
		}
		settings.Password = enc
	}

	if err := database.DB.Save(&settings).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save SMTP settings"})
	}

	return c.JSON(settings)
}

type TestMailRequest struct {
	To string `json:"to"`
}

// SendTestMail sends a probe mail to verify the stored configuration.
func SendTestMail(c *fiber.Ctx) error {
	var req TestMailRequest
	if err := c.BodyParser(&req); err != nil || req.To == "" {
		return c.Status(400).JSON(fiber.Map{"error": "to address is required"})
	}

	var settings models.SMTPSettings
	if err := database.DB.First(&settings).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "SMTP is not configured"})
	}

	password := ""
	if settings.Password != "" {
		var err error
		password, err = mailer.DecryptSecret([]byte(Cfg.SecretsKey), settings.Password)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to decrypt SMTP password"})
		}
	}

	if err := mailer.Send(&settings, password, req.To, "Test mail", "SMTP configuration works."); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send test mail", "detail": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Test mail sent"})
}

// notifySeller mails the shop owner about a new offer. Failures are
// logged only; an offer must never be lost to a mail problem.
func notifySeller(seller *models.User, order *models.Order, card *models.Card) {
	var settings models.SMTPSettings
	if err := database.DB.First(&settings).Error; err != nil {
		return // SMTP never configured
	}

	password := ""
	if settings.Password != "" {
		var err error
		password, err = mailer.DecryptSecret([]byte(Cfg.SecretsKey), settings.Password)
		if err != nil {
			log.Printf("❌ Could not decrypt SMTP password: %v", err)
			return
		}
	}

	subject := fmt.Sprintf("New offer for %s", card.Name)
	body := fmt.Sprintf(
		"%s (%s) made an offer of %.2f EUR for %s (%s).\n\nReference: %s\nMessage: %s\n",
		order.BuyerName, order.BuyerEmail, order.AmountEUR, card.Name, card.SetName,
		order.Reference, order.Message,
	)
	if err := mailer.Send(&settings, password, seller.Email, subject, body); err != nil {
		log.Printf("❌ Failed to notify seller %s: %v", seller.Username, err)
	}
}
