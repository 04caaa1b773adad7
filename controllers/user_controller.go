package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kevinreyes061304-ops/meal-planner/config"
	"github.com/kevinreyes061304-ops/meal-planner/services"
)

func GetProfile(c *gin.Context) {
	userID := currentUserID(c)
	svc := services.NewUserService(config.DB)

	user, err := svc.Get(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	profile, err := svc.ProfileFor(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"handle":      user.Handle,
		"email":       user.Email,
		"full_name":   user.FullName,
		"allergies":   profile.Allergies,
		"preferences": profile.Preferences,
		"description": profile.Description,
	})
}

func UpdateProfile(c *gin.Context) {
	userID := currentUserID(c)

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewUserService(config.DB).UpdateProfile(userID, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your profile has been updated successfully!"})
}

func ChangePassword(c *gin.Context) {
	userID := currentUserID(c)

	var body struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewUserService(config.DB).ChangePassword(userID, body.OldPassword, body.NewPassword); err != nil {
		if errors.Is(err, services.ErrPermissionDenied) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Incorrect password."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your password has been changed successfully!"})
}

// DeleteAccount permanently removes the account after re-checking the
// password.
func DeleteAccount(c *gin.Context) {
	userID := currentUserID(c)

	var body struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewUserService(config.DB).DeleteAccount(userID, body.Password); err != nil {
		if errors.Is(err, services.ErrPermissionDenied) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Incorrect password. Account was not deleted."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your account has been permanently deleted."})
}
