package middleware

import (
	"net/http"

	"github.com/mel-lim/listmaker-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminMiddleware пускает дальше только пользователей с флагом is_admin.
// Вешается после JWTAuthMiddleware.
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.AppUser
		if err := db.First(&user, AppUserID(c)).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot verify admin privileges"})
			c.Abort()
			return
		}
		if !user.IsAdmin {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User does not have admin privileges"})
			c.Abort()
			return
		}
		c.Next()
	}
}
