package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kizuma-trade/backoffice-service/internal/delivery/http/dto/request"
	"github.com/kizuma-trade/backoffice-service/internal/delivery/http/dto/response"
	"github.com/kizuma-trade/backoffice-service/internal/delivery/http/middleware"
)

type AuthHandler struct {
	username string
	password string
}

func NewAuthHandler(username, password string) *AuthHandler {
	return &AuthHandler{username: username, password: password}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "username and password are required"})
		return
	}

	if req.Username != h.username || req.Password != h.password {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid credentials"})
		return
	}

	token := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", req.Username, req.Password)))
	c.JSON(http.StatusOK, response.LoginResponse{
		Success: true,
		Token:   token,
		User: response.UserResponse{
			Username: req.Username,
			Role:     middleware.RoleSeller,
		},
		Message: "login successful",
	})
}

func (h *AuthHandler) VerifyAuth(c *gin.Context) {
	c.JSON(http.StatusOK, response.AuthStatusResponse{
		Authenticated: true,
		User: response.UserResponse{
			Username: c.GetString(middleware.UserKey),
			Role:     middleware.RoleSeller,
		},
	})
}
