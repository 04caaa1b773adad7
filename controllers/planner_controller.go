// controllers/planner_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kevinreyes061304-ops/meal-planner/config"
	"github.com/kevinreyes061304-ops/meal-planner/services"
)

func GetWeeklyPlan(c *gin.Context) {
	userID := currentUserID(c)

	view, err := services.NewPlannerService(config.DB).ComputeWeek(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

func SaveWeeklyPlan(c *gin.Context) {
	userID := currentUserID(c)

	var payload services.WeekPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := services.NewPlannerService(config.DB).ApplyWeek(userID, time.Now(), payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   err.Error(),
			"saved":   summary.Saved,
			"deleted": summary.Deleted,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saved":   summary.Saved,
		"deleted": summary.Deleted,
		"message": weekMessage(summary),
	})
}

func weekMessage(summary *services.WeekSummary) string {
	if summary.Saved == 0 && summary.Deleted == 0 {
		return "No changes were made to your meal plan."
	}
	msg := fmt.Sprintf("Weekly meal plan updated! %d meals saved", summary.Saved)
	if summary.Deleted > 0 {
		msg += fmt.Sprintf(", %d removed", summary.Deleted)
	}
	return msg
}

func ClearWeek(c *gin.Context) {
	userID := currentUserID(c)

	deleted, err := services.NewPlannerService(config.DB).ClearWeek(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	msg := "No meals found to clear."
	if deleted > 0 {
		msg = fmt.Sprintf("All meals cleared! %d meals removed.", deleted)
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted, "message": msg})
}

func DeleteDay(c *gin.Context) {
	userID := currentUserID(c)
	date := c.Param("date")

	deleted, err := services.NewPlannerService(config.DB).DeleteDay(userID, date)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	msg := "No meals found to delete."
	if deleted > 0 {
		msg = fmt.Sprintf("All meals for %s deleted! (%d meals)", date, deleted)
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted, "message": msg})
}

func DeleteMeal(c *gin.Context) {
	userID := currentUserID(c)
	date := c.Param("date")
	mealType := c.Param("mealType")

	removed, err := services.NewPlannerService(config.DB).DeleteSlot(userID, date, mealType)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) || errors.Is(err, services.ErrInvalidMealType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	msg := "No meal found to delete."
	if removed {
		msg = "Meal deleted successfully!"
	}
	c.JSON(http.StatusOK, gin.H{"deleted": removed, "message": msg})
}
