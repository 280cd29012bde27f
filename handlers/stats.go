package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type groupCount struct {
	ID    string `bson:"_id"`
	Count int64  `bson:"count"`
}

// AdminStats assembles the dashboard numbers: user and biodata totals,
// biodata counts by gender and premium type, and revenue summed over all
// contact requests.
func (h *Handler) AdminStats(c *gin.Context) {
	ctx, cancel := dbContext(c)
	defer cancel()

	users, err := h.DB.Users.EstimatedDocumentCount(ctx)
	if err != nil {
		serverError(c)
		return
	}

	bioDataItems, err := h.DB.BioData.EstimatedDocumentCount(ctx)
	if err != nil {
		serverError(c)
		return
	}

	genderCounts, err := groupBy(ctx, h.DB.BioData, "$gender")
	if err != nil {
		serverError(c)
		return
	}

	typeCounts, err := groupBy(ctx, h.DB.BioData, "$type")
	if err != nil {
		serverError(c)
		return
	}

	revenue, err := h.totalRevenue(ctx)
	if err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":        users,
		"bioDataItems": bioDataItems,
		"maleCount":    genderCounts["male"],
		"femaleCount":  genderCounts["female"],
		"premiumCount": typeCounts["premium"],
		"revenue":      revenue,
	})
}

func groupBy(ctx context.Context, coll *mongo.Collection, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []groupCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}

func (h *Handler) totalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}

	cursor, err := h.DB.ReqContacts.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}
