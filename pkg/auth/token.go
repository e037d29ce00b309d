package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is what a signed session token carries. UserType may be
// empty for accounts that have not finished onboarding; the auth
// middleware re-reads it from the database anyway since the claim goes
// stale the moment a type is assigned.
type SessionClaims struct {
	UserID   string
	Email    string
	UserType string
}

// TokenManager issues and validates HS256 session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a session token for the given identity.
func (m *TokenManager) Issue(claims SessionClaims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       claims.UserID,
		"email":     claims.Email,
		"user_type": claims.UserType,
		"iat":       now.Unix(),
		"exp":       now.Add(m.ttl).Unix(),
	})
	return token.SignedString(m.secret)
}

// Parse validates the signature and expiry and returns the session claims.
func (m *TokenManager) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return nil, errors.New("token missing subject")
	}
	email, _ := mapClaims["email"].(string)
	userType, _ := mapClaims["user_type"].(string)

	return &SessionClaims{UserID: sub, Email: email, UserType: userType}, nil
}
