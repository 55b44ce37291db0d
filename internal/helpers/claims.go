package helpers

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/joshua-takyi/hallbook/internal/models"
)

type Claims struct {
	Role     models.Role `json:"role"`
	Username string      `json:"username"`
	Email    string      `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Helper methods for role checking
func (c *Claims) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

func (c *Claims) HasRole(role models.Role) bool {
	return c.Role == role
}

func (c *Claims) Session() models.Session {
	return models.Session{
		Type:            c.Role,
		Username:        c.Username,
		IsAuthenticated: true,
	}
}
