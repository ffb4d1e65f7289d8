package controllers

import (
	"net/http"
	"strings"
	"time"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB       *gorm.DB
	Secret   string
	TokenTTL time.Duration
}

func NewAuthController(db *gorm.DB, secret string) *AuthController {
	return &AuthController{DB: db, Secret: secret, TokenTTL: 24 * time.Hour}
}

type loginPayload struct {
	TenantCode string `json:"tenantCode" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
}

// Login authenticates an admin and returns a bearer token carrying the
// tenant context. Admin emails are unique per tenant, not globally, so the
// tenant code is part of the credentials.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "tenantCode, email and password are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	code := strings.TrimSpace(payload.TenantCode)

	var tenant models.Tenant
	if err := ac.DB.Where("code = ?", code).First(&tenant).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	var admin models.Admin
	if err := ac.DB.Where("tenant_id = ? AND email = ?", tenant.ID, email).First(&admin).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := middleware.IssueToken(ac.Secret, admin.TenantID, admin.ID, admin.Email, ac.TokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":       admin.ID,
			"fullName": admin.FullName,
			"email":    admin.Email,
			"tenantId": admin.TenantID,
		},
	})
}
