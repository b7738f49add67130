package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenTTL - срок жизни токена и auth-кук.
const TokenTTL = 12 * time.Hour

func GenerateJWT(appUserID uint, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": appUserID,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenStr, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if token != nil && token.Valid {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			return claims, nil
		}
	}
	return nil, err
}

// TokenRemainingTTL - сколько токену осталось жить; столько держим его в
// чёрном списке после логаута.
func TokenRemainingTTL(claims jwt.MapClaims) time.Duration {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return TokenTTL
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < 0 {
		return 0
	}
	return remaining
}
