package controllers

import (
	"errors"
	"net/http"

	"github.com/ycz425/VertTracker-API/services"
	"github.com/ycz425/VertTracker-API/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// Fields are decoded as raw JSON values so validation can report wrong
// types with the same messages as out-of-range values.
type RegisterInput struct {
	Username any `json:"username"`
	Password any `json:"password"`
	TipToe   any `json:"tip-toe"`
}

func (h *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "request body must be valid JSON"})
		return
	}

	if msg := utils.ValidateRegister(input.Username, input.Password, input.TipToe); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": msg})
		return
	}

	err := h.Svc.Register(input.Username.(string), input.Password.(string), input.TipToe.(float64))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "registration success"})
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "request body must be valid JSON"})
		return
	}

	token, err := h.Svc.Authenticate(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "incorrect username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
