package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kevinreyes061304-ops/meal-planner/config"
	"github.com/kevinreyes061304-ops/meal-planner/services"
)

func AddComment(c *gin.Context) {
	userID := currentUserID(c)

	var body struct {
		Content     string `json:"content" binding:"required"`
		IsImportant *bool  `json:"is_important"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// notes default to important, same as the web form
	isImportant := true
	if body.IsImportant != nil {
		isImportant = *body.IsImportant
	}

	comment, err := services.NewCommentService(config.DB).Add(userID, body.Content, isImportant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"comment": comment,
		"message": "Your note has been added successfully!",
	})
}

func ListComments(c *gin.Context) {
	userID := currentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	comments, err := services.NewCommentService(config.DB).ListRecent(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}
