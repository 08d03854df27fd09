package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NIAZpy/fashionfinds/models"
)

// Login verifies admin credentials and issues a bearer token that the
// admin UI can use instead of resending Basic credentials per request.
func (ctrl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password are required"})
		return
	}

	if !ctrl.Auth.Verify(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := ctrl.Auth.IssueToken(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"token":    token,
		"username": req.Username,
	})
}
