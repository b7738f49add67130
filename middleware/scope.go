package middleware

import (
	"net/http"
	"strconv"

	"github.com/mel-lim/listmaker-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Цепочка проверок владения по параметрам маршрута:
// :tripId - поездка существует и принадлежит пользователю,
// :listId - список принадлежит поездке и пользователю,
// :itemId - строка принадлежит списку (подмена между списками запрещена).
// Всё проверяется до того, как хоть что-то изменится.

func TripScopeMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tripID, err := parseIDParam(c, "tripId")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid trip id"})
			c.Abort()
			return
		}

		var trip models.Trip
		if err := db.First(&trip, tripID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
			c.Abort()
			return
		}

		var relation models.AppUserTrip
		if err := db.Where("trip_id = ?", tripID).First(&relation).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
			c.Abort()
			return
		}
		if relation.AppUserID != AppUserID(c) {
			c.JSON(http.StatusForbidden, gin.H{"message": "User not authorized"})
			c.Abort()
			return
		}

		c.Set("trip_id", trip.ID)
		c.Next()
	}
}

func ListScopeMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		listID, err := parseIDParam(c, "listId")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid list id"})
			c.Abort()
			return
		}

		var list models.List
		if err := db.First(&list, listID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "List not found"})
			c.Abort()
			return
		}
		if list.TripID != TripID(c) || list.AppUserID != AppUserID(c) {
			c.JSON(http.StatusForbidden, gin.H{"message": "User not authorized"})
			c.Abort()
			return
		}

		c.Set("list_id", list.ID)
		c.Next()
	}
}

func ItemScopeMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := parseIDParam(c, "itemId")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid list item id"})
			c.Abort()
			return
		}

		var item models.ListItem
		if err := db.First(&item, itemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "List item not found"})
			c.Abort()
			return
		}
		if item.ListID != ListID(c) {
			c.JSON(http.StatusForbidden, gin.H{"message": "This request is not allowed"})
			c.Abort()
			return
		}

		c.Set("item_id", item.ID)
		c.Next()
	}
}

func TripID(c *gin.Context) uint {
	v, _ := c.Get("trip_id")
	id, _ := v.(uint)
	return id
}

func ListID(c *gin.Context) uint {
	v, _ := c.Get("list_id")
	id, _ := v.(uint)
	return id
}

func ItemID(c *gin.Context) uint {
	v, _ := c.Get("item_id")
	id, _ := v.(uint)
	return id
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
