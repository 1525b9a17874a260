package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"gestioncursos/config"
)

// AdminRole is the only role the backend knows about.
const AdminRole = "admin"

func GenerateToken(username string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     AdminRole,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
