package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Auth-куки: http-only "token" с JWT и читаемая фронтендом "username",
// по которой браузер понимает, что пользователь залогинен.

func SetAuthCookies(c *gin.Context, token, username, domain string, secure bool) {
	maxAge := int(TokenTTL.Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", token, maxAge, "/", domain, secure, true)
	c.SetCookie("username", username, maxAge, "/", domain, secure, false)
}

func ClearAuthCookies(c *gin.Context, domain string, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", "", -1, "/", domain, secure, true)
	c.SetCookie("username", "", -1, "/", domain, secure, false)
}
