package controllers

import (
	"net/http"

	"github.com/mel-lim/listmaker-backend/config"
	"github.com/mel-lim/listmaker-backend/utils"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	cfg *config.Config
}

func NewContactController(cfg *config.Config) *ContactController {
	return &ContactController{cfg: cfg}
}

// POST /contact - пересылаем сообщение с формы на почту поддержки
func (cc *ContactController) Send(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
		Source  string `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "An email and message are required"})
		return
	}

	err := utils.SendContactEmail(
		req.Name, req.Email, req.Subject, req.Message, req.Source,
		cc.cfg.SMTPHost, cc.cfg.SMTPPort, cc.cfg.SMTPUser, cc.cfg.SMTPPass, cc.cfg.ContactEmail,
	)
	if err != nil {
		utils.LogError(err, "contact send")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Your message could not be sent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Your message has been sent, thank you!"})
}
