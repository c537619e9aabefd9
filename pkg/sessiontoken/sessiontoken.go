package sessiontoken

import (
	"errors"
	"time"

	"patient-vitals-service/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims binds a session id into a signed cookie value. The cookie never
// carries session data itself, only the id of the redis record.
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

type Service struct {
	config config.SessionConfig
}

func NewService(cfg config.SessionConfig) *Service {
	return &Service{config: cfg}
}

func (s *Service) Generate(sessionID string) (string, error) {
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

func (s *Service) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	return claims.SessionID, nil
}
