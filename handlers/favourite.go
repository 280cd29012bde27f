package handlers

import (
	"net/http"

	"wedlink/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func (h *Handler) ListFavourites(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	cursor, err := h.DB.Favourites.Find(ctx, bson.M{"email": c.Query("email")})
	if err != nil {
		serverError(c)
		return
	}
	defer cursor.Close(ctx)

	favourites := []models.Favourite{}
	if err := cursor.All(ctx, &favourites); err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, favourites)
}

func (h *Handler) CreateFavourite(c *gin.Context) {
	var favourite models.Favourite
	if err := c.ShouldBindJSON(&favourite); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	res, err := h.DB.Favourites.InsertOne(ctx, favourite)
	if err != nil {
		serverError(c)
		return
	}

	insertResult(c, res)
}

func (h *Handler) DeleteFavourite(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	res, err := h.DB.Favourites.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		serverError(c)
		return
	}

	deleteResult(c, res)
}
