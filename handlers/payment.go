package handlers

import (
	"net/http"

	"wedlink/models"
	"wedlink/payments"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func (h *Handler) ListPayments(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	cursor, err := h.DB.Payments.Find(ctx, bson.M{"email": c.Param("email")})
	if err != nil {
		serverError(c)
		return
	}
	defer cursor.Close(ctx)

	results := []models.Payment{}
	if err := cursor.All(ctx, &results); err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, results)
}

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntent converts the price to minor units and asks the payment
// provider for an intent. A non-positive price is rejected outright rather
// than left unanswered.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	amount, err := payments.MinorUnits(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid price"})
		return
	}

	secret, err := h.Intents.CreateIntent(c.Request.Context(), amount, "usd")
	if err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
