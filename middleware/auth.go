package middleware

import (
	"net/http"
	"strings"

	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// TokenValidator is satisfied by the auth service.
type TokenValidator interface {
	Authenticate(token string) (*utils.TokenClaims, error)
}

// JWTAuthMiddleware requires a valid bearer token and, when roles are
// given, one of those roles.
func JWTAuthMiddleware(validator TokenValidator, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := Locale(c)
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Message: utils.Message(locale, utils.MsgUnauthorized),
				Details: "Missing or invalid Authorization header",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := validator.Authenticate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Message: utils.Message(locale, utils.MsgUnauthorized),
				Details: "Invalid token",
			})
			return
		}
		if len(roles) > 0 && !hasRole(claims.Role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{
				Message: utils.Message(locale, utils.MsgUnauthorized),
				Details: "Insufficient role",
			})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// Claims returns the claims stored by JWTAuthMiddleware.
func Claims(c *gin.Context) (*utils.TokenClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.TokenClaims)
	return claims, ok
}
