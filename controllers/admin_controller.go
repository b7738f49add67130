package controllers

import (
	"net/http"
	"strconv"

	"github.com/mel-lim/listmaker-backend/models"
	"github.com/mel-lim/listmaker-backend/services"
	"github.com/mel-lim/listmaker-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	db      *gorm.DB
	cascade *services.CascadeService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db, cascade: services.NewCascadeService(db)}
}

// GET /admin/test
func (ac *AdminController) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "this is working"})
}

// GET /admin/appusers
func (ac *AdminController) ListAppUsers(c *gin.Context) {
	var users []models.AppUser
	if err := ac.db.Order("id ASC").Find(&users).Error; err != nil {
		utils.LogError(err, "admin list appusers")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "App users could not be fetched"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appUsers": users})
}

// DELETE /admin/appusers/:appUserId - каскадно сносит пользователя со всеми
// его поездками
func (ac *AdminController) DeleteAppUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("appUserId"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid app user id"})
		return
	}

	var user models.AppUser
	if err := ac.db.First(&user, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "App user not found"})
		return
	}

	if err := ac.cascade.DeleteAppUserCascade(user.ID); err != nil {
		utils.LogError(err, "admin delete appuser")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "App user could not be deleted"})
		return
	}
	c.Status(http.StatusNoContent)
}
