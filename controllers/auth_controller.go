package controllers

import (
	"errors"
	"net/http"

	"github.com/RaulSimioni/Nutrimath/config"
	"github.com/RaulSimioni/Nutrimath/middlewares"
	"github.com/RaulSimioni/Nutrimath/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /auth/me — the signed-in user, or null when running as the
// anonymous placeholder.
func Me(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	if userID == models.AnonymousUserID {
		c.JSON(http.StatusOK, nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// POST /auth/logout
func Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
