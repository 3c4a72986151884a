// Package csrf emite y valida tokens anti-forgery firmados (HMAC-SHA256).
// El token viaja en la cookie legible csrf_token y debe repetirse en el header
// X-CSRF-Token de las peticiones mutantes (double-submit cookie).
package csrf

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims del token CSRF: solo los claims estándar más el user_id opcional
// (vacío para tokens emitidos antes del login).
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id,omitempty"`
}

// Generate firma un token CSRF con vigencia de expMinutes.
func Generate(secret, userID string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("csrf: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify valida firma y vigencia del token. Retorna error si es inválido o expiró.
func Verify(secret, tokenString string) error {
	if secret == "" {
		return fmt.Errorf("csrf: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("csrf: token inválido")
	}
	return nil
}
