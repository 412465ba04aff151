package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL ventana fija de validez de un token de identidad.
const TokenTTL = 30 * 24 * time.Hour

// ErrEmptySecret se devuelve cuando se intenta firmar o validar sin secret.
var ErrEmptySecret = errors.New("jwt: secret vacío")

// Claims lleva el id del administrador como único claim propio; iat/exp son los registrados.
type Claims struct {
	jwt.RegisteredClaims
	ID string `json:"id"`
}

// Generate genera un token HS256 para adminID que expira ttl después de ahora.
func Generate(secret, adminID string, ttl time.Duration) (string, error) {
	return generateAt(secret, adminID, ttl, time.Now())
}

func generateAt(secret, adminID string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		ID: adminID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el id del administrador.
// Retorna error si el token está malformado, expirado o firmado con otro secret.
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	if claims.ID == "" {
		return "", fmt.Errorf("claim id vacío")
	}
	return claims.ID, nil
}
