package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prepwise-backend-V1.0/internal/service"
	"prepwise-backend-V1.0/utilities"
)

type UserController struct {
	UserService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{UserService: userService}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID, ok := utilities.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	user, err := uc.UserService.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := utilities.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, newToken, err := uc.UserService.UpdateProfile(userID, req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	}
	if newToken != "" {
		resp["token"] = newToken
	}
	c.JSON(http.StatusOK, resp)
}

func (uc *UserController) DeleteAccount(c *gin.Context) {
	userID, ok := utilities.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := uc.UserService.DeleteAccount(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

func (uc *UserController) GetSessions(c *gin.Context) {
	userID, ok := utilities.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	sessions, err := uc.UserService.GetSessions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (uc *UserController) GetStats(c *gin.Context) {
	userID, ok := utilities.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	stats, err := uc.UserService.GetStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
