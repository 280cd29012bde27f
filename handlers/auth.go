package handlers

import (
	"net/http"
	"time"

	"wedlink/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type tokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueToken signs a 2-hour identity assertion for the given email. Identity
// is asserted by the client-side auth provider; this endpoint only encodes it.
func (h *Handler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	claims := &middleware.Claims{
		Email: req.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(h.Secret))
	if err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}
