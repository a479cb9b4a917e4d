package controllers

import (
	"log"
	"regexp"
	"strings"
	"time"

	"tcgstore/database"
	"tcgstore/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ShopName string `json:"shop_name"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}

	if req.Username == "" || req.Password == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username, email and password are required"})
	}

	shopName := req.ShopName
	if shopName == "" {
		shopName = req.Username + "'s cards"
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		ShopName: shopName,
		ShopSlug: slugify(req.Username),
		IsActive: true,
	}
	if err := user.HashPassword(req.Password); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Println("❌ Failed to create user:", err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username already taken"})
	}

	return c.Status(fiber.StatusCreated).JSON(user.ToResponse())
}

func Login(c *fiber.Ctx) error {
	var creds LoginRequest
	if err := c.BodyParser(&creds); err != nil {
		log.Println("❌ Error parsing request body:", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}

	var user models.User
	result := database.DB.Where("username = ?", creds.Username).First(&user)
	if result.Error != nil {
		log.Println("❌ User not found:", creds.Username)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
	}

	if !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Account is deactivated. Contact an admin"})
	}

	if !user.CheckPassword(creds.Password) {
		log.Println("❌ Invalid password for user:", creds.Username)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_admin": user.IsAdmin,
		"exp":      expirationTime.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(Cfg.JWTSecret))
	if err != nil {
		log.Printf("❌ Error generating JWT token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate token"})
	}

	return c.JSON(fiber.Map{"token": tokenString, "user": user.ToResponse()})
}
