package auth_service

import (
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

// CreateToken from Claims to JWT
func CreateToken(claims jwt.MapClaims, secret string, duration int) (string, error) {
	now := time.Now()
	if duration != 0 {
		claims["exp"] = now.Add(time.Duration(duration) * time.Hour).Unix()
	} else {
		claims["exp"] = now.Add(time.Hour).Unix() // 1 hour
	}
	// create the token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	// Sign and get the complete encoded token as string
	return token.SignedString([]byte(secret))
}

// ParseToken from JWT to Claims
func ParseToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if token == nil {
		return jwt.MapClaims{}, fmt.Errorf("invalid token")
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return jwt.MapClaims{}, err
}
