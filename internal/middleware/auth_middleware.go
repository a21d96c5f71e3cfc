package middleware

import (
	"errors"
	"fmt"
	"strings"

	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

// AdminOnly accepts an HS256 bearer token signed with secret whose role
// claim is admin. The token subject is stored under "subject".
func AdminOnly(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			response.AbortError(c, ErrTokenNotFound)
			return
		}

		token, err := jwt.Parse(strings.TrimSpace(tokenString), func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.AbortError(c, ErrTokenExpired)
				return
			}
			response.AbortError(c, ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.AbortError(c, ErrInvalidClaims)
			return
		}

		role, _ := claims["role"].(string)
		if role != RoleAdmin {
			response.AbortError(c, ErrAdminRequired)
			return
		}

		subject, _ := claims.GetSubject()
		c.Set("subject", subject)
		c.Set("role", role)

		c.Next()
	}
}

// RequireConfirmation rejects the request unless the query parameter
// name equals value.
func RequireConfirmation(name, value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query(name) != value {
			response.AbortError(c, ErrConfirmationRequired(name, value))
			return
		}
		c.Next()
	}
}
