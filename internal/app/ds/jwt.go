package ds

import (
	"members-backend/internal/app/role"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type JWTClaims struct {
	jwt.StandardClaims
	UserID      uint      `json:"user_id"`
	CustomerID  uint      `json:"customer_id"`
	SessionUUID uuid.UUID `json:"session_uuid"`
	Role        role.Role `json:"role"`
}
