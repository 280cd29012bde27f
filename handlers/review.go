package handlers

import (
	"net/http"

	"wedlink/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func (h *Handler) ListReviews(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	cursor, err := h.DB.Reviews.Find(ctx, bson.M{})
	if err != nil {
		serverError(c)
		return
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	res, err := h.DB.Reviews.InsertOne(ctx, review)
	if err != nil {
		serverError(c)
		return
	}

	insertResult(c, res)
}
