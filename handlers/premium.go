package handlers

import (
	"net/http"

	"wedlink/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func (h *Handler) CreatePremiumRequest(c *gin.Context) {
	var req models.PremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	res, err := h.DB.ReqPremium.InsertOne(ctx, req)
	if err != nil {
		serverError(c)
		return
	}

	insertResult(c, res)
}

func (h *Handler) ListPremiumRequests(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	cursor, err := h.DB.ReqPremium.Find(ctx, bson.M{})
	if err != nil {
		serverError(c)
		return
	}
	defer cursor.Close(ctx)

	requests := []models.PremiumRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (h *Handler) ApprovePremiumRequest(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": "premium"}}
	res, err := h.DB.ReqPremium.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		serverError(c)
		return
	}

	updateResult(c, res)
}
