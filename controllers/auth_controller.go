package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotllink-backend/services"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	AuthSvc *services.AuthService
	Log     *logrus.Logger
}

func NewAuthController(svc *services.AuthService, log *logrus.Logger) *AuthController {
	return &AuthController{AuthSvc: svc, Log: log}
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and password are required"})
		return
	}

	user, err := ctrl.AuthSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		ctrl.Log.WithError(err).Error("registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	ctrl.Log.WithField("email", user.Email).Info("user registered")
	c.JSON(http.StatusOK, gin.H{
		"message": "Registration successful",
		"user":    user.Public(),
	})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	user, token, err := ctrl.AuthSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		ctrl.Log.WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	ctrl.Log.WithField("email", user.Email).Info("user logged in")
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user.Public(),
		"token":   token,
	})
}
