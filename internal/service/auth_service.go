package service

import (
	"errors"
	"fmt"
	"time"

	"employee_portal/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = time.Hour // 1 hour

// Domain errors for auth flows.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
)

// AuthService verifies credentials and mints/validates bearer tokens.
// The signing key comes from configuration; it is never hard-coded.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users, signingKey string) *AuthService {
	return &AuthService{users: users, signingKey: []byte(signingKey)}
}

// Claims defines JWT claims carried by issued tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"id"`
	Username string `json:"username"`
}

// GenerateToken validates credentials and returns a signed JWT.
func (s *AuthService) GenerateToken(username, password string) (string, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(u.ID, u.Username)
}

// ParseToken parses a JWT and returns the embedded userID.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// verifyPassword compares a bcrypt hash against the supplied plaintext.
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// issueToken signs a JWT carrying {id, username}, expiring in one hour.
func (s *AuthService) issueToken(userID int, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   userID,
		Username: username,
	})
	return token.SignedString(s.signingKey)
}
