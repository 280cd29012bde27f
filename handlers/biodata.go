package handlers

import (
	"net/http"
	"strconv"

	"wedlink/middleware"
	"wedlink/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// biodataFilter builds the browse filter. Each parameter is optional and the
// resulting conditions are AND-combined: age is a ceiling, gender and
// division are membership tests.
func biodataFilter(age, gender, division string) bson.M {
	filter := bson.M{}
	if age != "" {
		if n, err := strconv.Atoi(age); err == nil {
			filter["age"] = bson.M{"$lte": n}
		}
	}
	if gender != "" {
		filter["gender"] = bson.M{"$in": []string{gender}}
	}
	if division != "" {
		filter["permanentDiv"] = bson.M{"$in": []string{division}}
	}
	return filter
}

func (h *Handler) ListAllBiodata(c *gin.Context) {
	h.findBiodata(c, bson.M{})
}

func (h *Handler) ListBiodata(c *gin.Context) {
	h.findBiodata(c, biodataFilter(c.Query("age"), c.Query("gender"), c.Query("division")))
}

func (h *Handler) findBiodata(c *gin.Context, filter bson.M) {
	ctx, cancel := dbContext(c)
	defer cancel()

	cursor, err := h.DB.BioData.Find(ctx, filter)
	if err != nil {
		serverError(c)
		return
	}
	defer cursor.Close(ctx)

	items := []models.Biodata{}
	if err := cursor.All(ctx, &items); err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) MyBiodata(c *gin.Context) {
	h.findOneBiodata(c, bson.M{"email": c.GetString(middleware.EmailKey)})
}

func (h *Handler) GetBiodata(c *gin.Context) {
	id, ok := objectID(c)
	if !ok {
		return
	}
	h.findOneBiodata(c, bson.M{"_id": id})
}

func (h *Handler) GetBiodataByEmail(c *gin.Context) {
	h.findOneBiodata(c, bson.M{"email": c.Param("email")})
}

func (h *Handler) findOneBiodata(c *gin.Context, filter bson.M) {
	ctx, cancel := dbContext(c)
	defer cancel()

	var item models.Biodata
	err := h.DB.BioData.FindOne(ctx, filter).Decode(&item)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateBiodata assigns the owner's next sequential biodataId, starting at 1.
// The read-then-write assignment is not atomic: two concurrent creates for
// the same owner can both observe the same maximum and duplicate an id.
func (h *Handler) CreateBiodata(c *gin.Context) {
	var item models.Biodata
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "biodataId", Value: -1}})

	var last models.Biodata
	err := h.DB.BioData.FindOne(ctx, bson.M{"email": item.Email}, opts).Decode(&last)
	if err != nil && err != mongo.ErrNoDocuments {
		serverError(c)
		return
	}
	item.BiodataID = last.BiodataID + 1

	res, err := h.DB.BioData.InsertOne(ctx, item)
	if err != nil {
		serverError(c)
		return
	}

	insertResult(c, res)
}

// UpdateMyBiodata patches the full profile keyed by the authenticated email,
// not by the record id.
func (h *Handler) UpdateMyBiodata(c *gin.Context) {
	var item models.Biodata
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"gender":        item.Gender,
		"name":          item.Name,
		"image":         item.Image,
		"dob":           item.DOB,
		"height":        item.Height,
		"weight":        item.Weight,
		"age":           item.Age,
		"occupation":    item.Occupation,
		"race":          item.Race,
		"fathersName":   item.FathersName,
		"mothersName":   item.MothersName,
		"permanentDiv":  item.PermanentDiv,
		"presentDiv":    item.PresentDiv,
		"partnerAge":    item.PartnerAge,
		"partnerHeight": item.PartnerHeight,
		"partnerWeight": item.PartnerWeight,
		"email":         item.Email,
		"mobile":        item.Mobile,
	}}

	filter := bson.M{"email": c.GetString(middleware.EmailKey)}
	res, err := h.DB.BioData.UpdateOne(ctx, filter, update)
	if err != nil {
		serverError(c)
		return
	}

	updateResult(c, res)
}

func (h *Handler) MakeBiodataPremium(c *gin.Context) {
	h.patchBiodata(c, bson.M{"type": "premium"})
}

func (h *Handler) ApproveBiodataContact(c *gin.Context) {
	h.patchBiodata(c, bson.M{"status": "approved"})
}

func (h *Handler) patchBiodata(c *gin.Context, set bson.M) {
	id, ok := objectID(c)
	if !ok {
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	res, err := h.DB.BioData.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		serverError(c)
		return
	}

	updateResult(c, res)
}
