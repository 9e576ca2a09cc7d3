package authctx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"recipeshare/model"
)

const tokenTTL = time.Hour

type Claims struct {
	UID  string `json:"uid"`
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// SignToken issues the HS256 token the middleware later verifies.
func SignToken(secret string, user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UID:  user.ID.Hex(),
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
