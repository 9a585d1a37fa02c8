package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añade Role para que el middleware RBAC pueda tomar decisiones sin consultar la DB.
// TokenType distingue tokens de acceso ("access") de los de refresh ("refresh");
// un refresh token no sirve para autenticar peticiones a la API.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Role      string `json:"role,omitempty"` // "admin" | "manager" | "staff"
	TokenType string `json:"token_type,omitempty"`
}

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// Generate genera un token de acceso firmado que incluye userID y role.
func Generate(secret, userID, role, issuer string, expMinutes int) (string, error) {
	return sign(secret, Claims{
		RegisteredClaims: registered(userID, issuer, time.Duration(expMinutes)*time.Minute),
		UserID:           userID,
		Role:             role,
		TokenType:        typeAccess,
	})
}

// GenerateRefresh genera un refresh token de larga vida. No lleva rol: el rol
// vigente se relee de la DB al canjearlo por un token de acceso.
func GenerateRefresh(secret, userID, issuer string, expDays int) (string, error) {
	return sign(secret, Claims{
		RegisteredClaims: registered(userID, issuer, time.Duration(expDays)*24*time.Hour),
		UserID:           userID,
		TokenType:        typeRefresh,
	})
}

func registered(userID, issuer string, ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func sign(secret string, claims Claims) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida un token de acceso y devuelve userID y role.
// Retorna error si el token es inválido, expirado, tiene firma incorrecta o
// es un refresh token.
func Parse(secret, tokenString string) (userID, role string, err error) {
	claims, err := parseClaims(secret, tokenString)
	if err != nil {
		return "", "", err
	}
	if claims.TokenType == typeRefresh {
		return "", "", fmt.Errorf("un refresh token no autentica peticiones")
	}
	return claims.UserID, claims.Role, nil
}

// ParseRefresh valida un refresh token y devuelve el userID.
func ParseRefresh(secret, tokenString string) (string, error) {
	claims, err := parseClaims(secret, tokenString)
	if err != nil {
		return "", err
	}
	if claims.TokenType != typeRefresh {
		return "", fmt.Errorf("el token no es un refresh token")
	}
	return claims.UserID, nil
}

func parseClaims(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
