package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func authTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tenantId": TenantID(c),
			"adminId":  AdminID(c),
		})
	})
	return r
}

func doGet(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	r := authTestRouter(testSecret)

	token, err := IssueToken(testSecret, 7, 42, "admin@hostel.local", time.Hour)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"tenantId":7`)
	require.Contains(t, w.Body.String(), `"adminId":42`)
}

func TestAuthRequiredRejections(t *testing.T) {
	r := authTestRouter(testSecret)

	t.Run("missing header", func(t *testing.T) {
		w := doGet(r, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		w := doGet(r, "Basic abc123")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doGet(r, "Bearer not.a.jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := IssueToken("some-other-secret", 7, 42, "admin@hostel.local", time.Hour)
		require.NoError(t, err)
		w := doGet(r, "Bearer "+token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := IssueToken(testSecret, 7, 42, "admin@hostel.local", -time.Minute)
		require.NoError(t, err)
		w := doGet(r, "Bearer "+token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestTenantIDZeroWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	require.Equal(t, uint(0), TenantID(c))
	require.Equal(t, uint(0), AdminID(c))
}
