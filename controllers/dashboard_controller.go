package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kevinreyes061304-ops/meal-planner/config"
	"github.com/kevinreyes061304-ops/meal-planner/services"
)

// GetDashboard returns the landing view: today's meals, popular recipes,
// recent important notes and the profile.
func GetDashboard(c *gin.Context) {
	userID := currentUserID(c)

	view, err := services.NewDashboardService(config.DB).Overview(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
