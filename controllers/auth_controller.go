package controllers

import (
	"log"
	"time"

	"chef-backend/database"
	"chef-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthController issues the admin JWT used by the refresh and diagnostics
// endpoints.
type AuthController struct {
	jwtKey []byte
}

func NewAuthController(jwtSecret string) *AuthController {
	return &AuthController{jwtKey: []byte(jwtSecret)}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var creds Credentials
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

	if !user.CheckPassword(creds.Password) {
		log.Println("❌ Invalid password for user:", creds.Username)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ac.jwtKey)
	if err != nil {
		log.Println("❌ Error generating JWT token:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate token"})
	}

	return c.JSON(fiber.Map{"token": tokenString, "user": user.Username})
}
