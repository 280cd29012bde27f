package handlers

import (
	"net/http"

	"wedlink/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func (h *Handler) CreateContactRequest(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	res, err := h.DB.ReqContacts.InsertOne(ctx, req)
	if err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paymentResult": gin.H{"insertedId": res.InsertedID}})
}

func (h *Handler) ListContactRequests(c *gin.Context) {
	h.findContactRequests(c, bson.M{"email": c.Query("email")})
}

func (h *Handler) ListAllContactRequests(c *gin.Context) {
	h.findContactRequests(c, bson.M{})
}

func (h *Handler) findContactRequests(c *gin.Context, filter bson.M) {
	ctx, cancel := dbContext(c)
	defer cancel()

	cursor, err := h.DB.ReqContacts.Find(ctx, filter)
	if err != nil {
		serverError(c)
		return
	}
	defer cursor.Close(ctx)

	requests := []models.ContactRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ApproveContactRequest sets status to "approved" whatever its prior value;
// re-approving is a no-op beyond the write.
func (h *Handler) ApproveContactRequest(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": "approved"}}
	res, err := h.DB.ReqContacts.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		serverError(c)
		return
	}

	updateResult(c, res)
}

func (h *Handler) DeleteContactRequest(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	res, err := h.DB.ReqContacts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		serverError(c)
		return
	}

	deleteResult(c, res)
}
