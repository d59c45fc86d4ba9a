package handlers

import (
	"net/http"

	"weddingplanner/services/auth"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Service auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// LoginHandler authenticates an operator and returns a token plus the page
// to land on.
func (ah *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindingError(err), utils.MsgValidationFailed)
		return
	}
	resp, err := ah.Service.Login(input.Email, input.Password)
	if err != nil {
		getLogger(c).Warn("login failed", zap.String("email", input.Email), zap.Error(err))
		respondError(c, err, utils.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, resp)
}
