package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prepwise-backend-V1.0/internal/service"
)

type AuthController struct {
	AuthService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Authenticate handles both signup and login, selected by the mode field.
func (ac *AuthController) Authenticate(c *gin.Context) {
	var req struct {
		Mode     string `json:"mode"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	switch req.Mode {
	case "signup":
		user, token, err := ac.AuthService.Register(req.Name, req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Signup successful",
			"token":   token,
			"user":    user,
		})
	case "login":
		user, token, err := ac.AuthService.Login(req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"user":    user,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mode"})
	}
}
