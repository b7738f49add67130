package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mel-lim/listmaker-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware достаёт токен из http-only куки (или из заголовка
// Authorization для не-браузерных клиентов), проверяет чёрный список
// отозванных токенов и кладёт id пользователя в контекст запроса.
func JWTAuthMiddleware(rdb *redis.Client, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		token, err := c.Cookie("token")
		if err != nil || token == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied"})
			c.Abort()
			return
		}

		// Токены, отозванные логаутом
		if rdb != nil {
			if _, err := rdb.Get(context.Background(), "blacklist:"+token).Result(); err == nil {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Token has been revoked"})
				c.Abort()
				return
			}
		}

		claims, err := utils.ParseJWT(token, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}
		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token payload"})
			c.Abort()
			return
		}

		c.Set("app_user_id", uint(userID))
		c.Set("token", token)
		c.Next()
	}
}

// AppUserID возвращает id аутентифицированного пользователя из контекста.
func AppUserID(c *gin.Context) uint {
	v, ok := c.Get("app_user_id")
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
