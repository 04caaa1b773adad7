package controllers

import "github.com/gin-gonic/gin"

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}
