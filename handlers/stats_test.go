package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"wedlink/database"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestAdminStats(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("counts and revenue", func(mt *mtest.T) {
		h := New(database.New(mt.Client, "weddingDB"), "secret", nil)

		// Responses in handler order: user count, biodata count, gender
		// groups, type groups, revenue sum.
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 7}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 5}),
			mtest.CreateCursorResponse(0, "weddingDB.bioData", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "male"}, {Key: "count", Value: 3}},
				bson.D{{Key: "_id", Value: "female"}, {Key: "count", Value: 2}}),
			mtest.CreateCursorResponse(0, "weddingDB.bioData", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "premium"}, {Key: "count", Value: 4}}),
			mtest.CreateCursorResponse(0, "weddingDB.reqContacts", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: nil}, {Key: "totalRevenue", Value: 35.0}}),
		)

		c, w := jsonContext(mt.T, http.MethodGet, "/admin-stats", "")
		h.AdminStats(c)

		assert.Equal(mt.T, http.StatusOK, w.Code)

		var body map[string]float64
		assert.NoError(mt.T, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(mt.T, float64(7), body["users"])
		assert.Equal(mt.T, float64(5), body["bioDataItems"])
		assert.Equal(mt.T, float64(3), body["maleCount"])
		assert.Equal(mt.T, float64(2), body["femaleCount"])
		assert.Equal(mt.T, float64(4), body["premiumCount"])
		assert.Equal(mt.T, float64(35), body["revenue"])
	})

	mt.Run("no contact requests means zero revenue", func(mt *mtest.T) {
		h := New(database.New(mt.Client, "weddingDB"), "secret", nil)

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateCursorResponse(0, "weddingDB.bioData", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "weddingDB.bioData", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "weddingDB.reqContacts", mtest.FirstBatch),
		)

		c, w := jsonContext(mt.T, http.MethodGet, "/admin-stats", "")
		h.AdminStats(c)

		assert.Equal(mt.T, http.StatusOK, w.Code)

		var body map[string]float64
		assert.NoError(mt.T, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(mt.T, float64(0), body["maleCount"])
		assert.Equal(mt.T, float64(0), body["femaleCount"])
		assert.Equal(mt.T, float64(0), body["revenue"])
	})
}
