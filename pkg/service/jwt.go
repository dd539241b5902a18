package service

import (
	"time"

	apperrors "daily-report-system/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the identity payload carried by a session token. It is the
// only thing the authorization policy ever sees about the actor.
type SessionClaims struct {
	UserID    int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsManager bool   `json:"isManager"`
	jwt.RegisteredClaims
}

type JWTService interface {
	IssueToken(userID int64, email, name string, isManager bool) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
	SessionTTL() time.Duration
}

type jwtService struct {
	secretKey  string
	sessionTTL time.Duration
}

func NewJWTService(secretKey string, sessionTTL time.Duration) JWTService {
	return &jwtService{secretKey: secretKey, sessionTTL: sessionTTL}
}

func (s *jwtService) IssueToken(userID int64, email, name string, isManager bool) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:    userID,
		Email:     email,
		Name:      name,
		IsManager: isManager,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken returns the claims of a well-signed, unexpired token.
// The caller treats every failure identically as "unauthenticated"; the
// reason is never surfaced to the client.
func (s *jwtService) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrAuthRequired
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, apperrors.ErrAuthRequired
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrAuthRequired
	}

	return claims, nil
}

func (s *jwtService) SessionTTL() time.Duration {
	return s.sessionTTL
}
