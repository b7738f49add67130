package controllers

import (
	"errors"
	"net/http"

	"github.com/mel-lim/listmaker-backend/middleware"
	"github.com/mel-lim/listmaker-backend/services"

	"github.com/gin-gonic/gin"
)

func appUserID(c *gin.Context) uint { return middleware.AppUserID(c) }
func tripID(c *gin.Context) uint    { return middleware.TripID(c) }
func listID(c *gin.Context) uint    { return middleware.ListID(c) }
func itemID(c *gin.Context) uint    { return middleware.ItemID(c) }

// respondError переводит класс ошибки ядра в HTTP-статус. Наружу уходит
// только короткое сообщение - детали остаются в логах.
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": message})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": message})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": message})
	}
}
