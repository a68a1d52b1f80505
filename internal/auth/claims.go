package auth

import "github.com/golang-jwt/jwt/v5"

// Claims is the only supported JWT claims shape for this service.
// Tokens are issued by the central user service; user_id is the subject
// identifier used for shadow-identity resolution.
type Claims struct {
	jwt.RegisteredClaims

	UserID int64  `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
}
