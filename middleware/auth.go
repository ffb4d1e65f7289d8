package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxTenantID = "tenantID"
	ctxAdminID  = "adminID"
)

// IssueToken signs a bearer token carrying the tenant and admin identity.
// The tenant id in the token is the only tenant context the API ever trusts.
func IssueToken(secret string, tenantID, adminID uint, email string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"tenant_id": tenantID,
		"admin_id":  adminID,
		"sub":       email,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// AuthRequired validates the bearer token and resolves the tenant context
// for every downstream handler.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing bearer token"})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token claims"})
			return
		}
		tenantID, ok := claims["tenant_id"].(float64)
		if !ok || tenantID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "token missing tenant"})
			return
		}

		c.Set(ctxTenantID, uint(tenantID))
		if adminID, ok := claims["admin_id"].(float64); ok {
			c.Set(ctxAdminID, uint(adminID))
		}
		c.Next()
	}
}

// TenantID returns the authenticated tenant for the request. Zero means the
// auth middleware did not run; handlers treat that as unauthorized.
func TenantID(c *gin.Context) uint {
	if v, ok := c.Get(ctxTenantID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// AdminID returns the authenticated admin, if present.
func AdminID(c *gin.Context) uint {
	if v, ok := c.Get(ctxAdminID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
