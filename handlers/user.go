package handlers

import (
	"net/http"

	"wedlink/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *Handler) ListUsers(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	cursor, err := h.DB.Users.Find(ctx, bson.M{})
	if err != nil {
		serverError(c)
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) CheckAdmin(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	var user models.User
	err := h.DB.Users.FindOne(ctx, bson.M{"email": c.Param("email")}).Decode(&user)
	if err != nil && err != mongo.ErrNoDocuments {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user.Role == "admin"})
}

func (h *Handler) CheckPremium(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	var user models.User
	err := h.DB.Users.FindOne(ctx, bson.M{"email": c.Param("email")}).Decode(&user)
	if err != nil && err != mongo.ErrNoDocuments {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"premium": user.Type == "premium"})
}

// CreateUser registers an email on first sign-in. Re-registering an existing
// email reports it without writing anything.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	err := h.DB.Users.FindOne(ctx, bson.M{"email": user.Email}).Decode(&models.User{})
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	if err != mongo.ErrNoDocuments {
		serverError(c)
		return
	}

	res, err := h.DB.Users.InsertOne(ctx, user)
	if err != nil {
		serverError(c)
		return
	}

	insertResult(c, res)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	res, err := h.DB.Users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		serverError(c)
		return
	}

	deleteResult(c, res)
}

func (h *Handler) MakeAdmin(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	res, err := h.DB.Users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": "admin"}})
	if err != nil {
		serverError(c)
		return
	}

	updateResult(c, res)
}

func (h *Handler) MakeUserPremium(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	res, err := h.DB.Users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"type": "premium"}})
	if err != nil {
		serverError(c)
		return
	}

	updateResult(c, res)
}
