package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"hostel-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set; skipping MySQL-backed test")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Tenant{}, &models.Admin{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", NewAuthController(db, "auth-test-secret").Login)
	return r, db
}

func createAdmin(t *testing.T, db *gorm.DB, email, password string) models.Tenant {
	t.Helper()

	tenant := models.Tenant{
		Name:   "Hostel " + uuid.NewString()[:8],
		Code:   "T-" + uuid.NewString(),
		Status: "ACTIVE",
	}
	require.NoError(t, db.Create(&tenant).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{
		TenantID: tenant.ID,
		FullName: "Warden",
		Email:    email,
		Password: string(hash),
	}).Error)

	return tenant
}

func postLogin(r *gin.Engine, tenantCode, email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"tenantCode": tenantCode, "email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Admin emails are unique per tenant only. Two tenants sharing an email must
// both be able to log in, each landing in their own tenant.
func TestLoginDisambiguatesTenantsSharingAnEmail(t *testing.T) {
	r, db := setupAuthTest(t)

	email := uuid.NewString() + "@wardens.example"
	first := createAdmin(t, db, email, "first-password")
	second := createAdmin(t, db, email, "second-password")

	w := postLogin(r, first.Code, email, "first-password")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"token"`)

	w = postLogin(r, second.Code, email, "second-password")
	require.Equal(t, http.StatusOK, w.Code)

	// The second tenant's password does not open the first tenant.
	w = postLogin(r, first.Code, email, "second-password")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejections(t *testing.T) {
	r, db := setupAuthTest(t)

	email := uuid.NewString() + "@wardens.example"
	tenant := createAdmin(t, db, email, "right-password")

	t.Run("missing tenant code", func(t *testing.T) {
		w := postLogin(r, "", email, "right-password")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown tenant code", func(t *testing.T) {
		w := postLogin(r, "T-does-not-exist", email, "right-password")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postLogin(r, tenant.Code, email, "wrong-password")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
