package handlers

import (
	"context"
	"net/http"
	"time"

	"wedlink/database"
	"wedlink/payments"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Handler carries the dependencies every endpoint needs: the storage handle,
// the token-signing secret, and the payment-intent collaborator.
type Handler struct {
	DB      *database.DB
	Secret  string
	Intents payments.IntentCreator
}

func New(db *database.DB, secret string, intents payments.IntentCreator) *Handler {
	return &Handler{DB: db, Secret: secret, Intents: intents}
}

func dbContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 10*time.Second)
}

func objectID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}

func serverError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}

func insertResult(c *gin.Context, res *mongo.InsertOneResult) {
	c.JSON(http.StatusOK, gin.H{"insertedId": res.InsertedID})
}

func updateResult(c *gin.Context, res *mongo.UpdateResult) {
	c.JSON(http.StatusOK, gin.H{
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
	})
}

func deleteResult(c *gin.Context, res *mongo.DeleteResult) {
	c.JSON(http.StatusOK, gin.H{"deletedCount": res.DeletedCount})
}
