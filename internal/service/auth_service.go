package service

import (
	"strings"
	"time"

	"chatfuture/internal/model"
	"chatfuture/internal/storage"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates the bearer tokens that carry a user identity.
// Requests without a token run as the anonymous identity.
type AuthService struct {
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		jwtSecret: []byte(secret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// IssueUserToken signs a token for the identity. A zero TTL gives a token without expiry.
func (s *AuthService) IssueUserToken(userID, name string) (*model.TokenResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidToken
	}

	now := s.now()
	claims := &model.UserClaims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.tokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.tokenTTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &model.TokenResponse{Token: tokenString, UserID: userID}, nil
}

// ValidateUserToken validates a user JWT and returns claims
func (s *AuthService) ValidateUserToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Identity resolves an optional token to a user identity. An empty token is anonymous.
func (s *AuthService) Identity(tokenString string) (string, error) {
	if tokenString == "" {
		return storage.AnonymousUser, nil
	}
	claims, err := s.ValidateUserToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
