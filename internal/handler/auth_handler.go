package handler

import (
	"errors"
	"net/http"

	"freeco/config"
	"freeco/internal/middleware"
	"freeco/internal/repository"
	"freeco/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cfg      *config.Config
	authSvc  *service.AuthService
	userRepo *repository.UserRepository
}

func NewAuthHandler(cfg *config.Config, authSvc *service.AuthService, userRepo *repository.UserRepository) *AuthHandler {
	return &AuthHandler{cfg: cfg, authSvc: authSvc, userRepo: userRepo}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		FirstName       string `json:"first_name" binding:"required"`
		LastName        string `json:"last_name" binding:"required"`
		Email           string `json:"email" binding:"required,email"`
		PhoneNumber     string `json:"phone_number" binding:"required"`
		Gender          string `json:"gender" binding:"required"`
		Pincode         string `json:"pincode" binding:"required"`
		State           string `json:"state" binding:"required"`
		City            string `json:"city" binding:"required"`
		Password        string `json:"password" binding:"required,min=6"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	u, otp, err := h.authSvc.Register(service.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Gender:          req.Gender,
		Pincode:         req.Pincode,
		State:           req.State,
		City:            req.City,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserExists),
			errors.Is(err, service.ErrPasswordMismatch),
			errors.Is(err, service.ErrInvalidProfile):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error during registration"})
		}
		return
	}
	resp := gin.H{
		"success": true,
		"message": "User registered. Check your email for OTP verification.",
		"user_id": u.ID,
	}
	// Echo the code outside production so local clients can verify
	// without a mailbox.
	if !h.cfg.Server.IsProduction() {
		resp["otp"] = otp
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		UserID uint   `json:"user_id" binding:"required"`
		OTP    string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	u, token, err := h.authSvc.VerifyOTP(req.UserID, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
		case errors.Is(err, service.ErrInvalidOTP):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid or expired OTP"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error during OTP verification"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "account verified successfully",
		"token":   token,
		"user":    gin.H{"id": u.ID, "email": u.Email, "role": u.Role},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	u, token, err := h.authSvc.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCreds):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid email or password"})
		case errors.Is(err, service.ErrNotVerified):
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "account not verified, OTP sent to email",
				"user_id": u.ID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error during login"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    gin.H{"id": u.ID, "email": u.Email, "role": u.Role},
	})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": u})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		PhoneNumber string `json:"phone_number"`
		Pincode     string `json:"pincode"`
		State       string `json:"state"`
		City        string `json:"city"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	u, err := h.authSvc.UpdateProfile(userID, service.ProfileUpdateInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Pincode:     req.Pincode,
		State:       req.State,
		City:        req.City,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
		case errors.Is(err, service.ErrInvalidProfile):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error updating profile"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": u})
}
