package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookswap/api/token"
)

const claimsContextKey = "auth_claims"

// AuthRequired 驗證 Authorization header 中的 bearer token
// 驗證成功後將宣告放進 gin context 供後續 handler 使用
func (impl *ServerImpl) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		const op = "AuthRequired"
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}
		claims, err := token.ParseAndValidate(parts[1], []byte(impl.config.Auth.Secret))
		if err != nil {
			slog.Error("Fail to parse and validate token", slog.String("op", op), slog.Any("error", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RequireRole 要求 token 內的角色宣告屬於給定集合，必須接在 AuthRequired 之後
func (impl *ServerImpl) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}

// currentClaims 取出 AuthRequired 放進 context 的權杖宣告
func currentClaims(c *gin.Context) *token.Claims {
	value, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}
