package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"wedlink/database"
	"wedlink/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
)

// EmailKey is the gin context key the authenticated email is stored under.
const EmailKey = "email"

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Authenticate verifies the Authorization bearer token. A missing credential
// is 401; a malformed, invalid, or expired one is 403. On success the claim
// email is stored in the request context for downstream gates and handlers.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.Email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// RequireAdmin must run after Authenticate. It denies any caller whose user
// record is missing or whose role is not "admin".
func RequireAdmin(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var user models.User
		err := db.Users.FindOne(ctx, bson.M{"email": c.GetString(EmailKey)}).Decode(&user)
		if err != nil || user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}

// RequireSelf must run after Authenticate. It compares the named path
// parameter (or the query parameter of the same name) against the
// authenticated email.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param(param)
		if email == "" {
			email = c.Query(param)
		}
		if email != c.GetString(EmailKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}
