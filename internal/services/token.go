package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claims carries the authenticated user's ObjectID hex.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the HS256 bearer tokens the auth
// collaborator hands to clients.
type TokenService struct {
	secret          []byte
	expirationHours int
}

func NewTokenService(secret string, expirationHours int) *TokenService {
	return &TokenService{
		secret:          []byte(secret),
		expirationHours: expirationHours,
	}
}

// Generate signs a token for the given user.
func (s *TokenService) Generate(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses the token and returns the user id it carries.
func (s *TokenService) Validate(tokenString string) (primitive.ObjectID, error) {
	if tokenString == "" {
		return primitive.NilObjectID, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return primitive.NilObjectID, fmt.Errorf("token is not valid")
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid user id in token: %w", err)
	}
	return userID, nil
}
