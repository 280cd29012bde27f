package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"wedlink/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestBiodataFilter(t *testing.T) {
	tests := []struct {
		name     string
		age      string
		gender   string
		division string
		want     bson.M
	}{
		{
			name: "no parameters",
			want: bson.M{},
		},
		{
			name: "age ceiling",
			age:  "30",
			want: bson.M{"age": bson.M{"$lte": 30}},
		},
		{
			name: "non-numeric age ignored",
			age:  "abc",
			want: bson.M{},
		},
		{
			name:   "gender membership",
			gender: "female",
			want:   bson.M{"gender": bson.M{"$in": []string{"female"}}},
		},
		{
			name:     "division membership",
			division: "Dhaka",
			want:     bson.M{"permanentDiv": bson.M{"$in": []string{"Dhaka"}}},
		},
		{
			name:     "all filters combine conjunctively",
			age:      "30",
			gender:   "female",
			division: "Sylhet",
			want: bson.M{
				"age":          bson.M{"$lte": 30},
				"gender":       bson.M{"$in": []string{"female"}},
				"permanentDiv": bson.M{"$in": []string{"Sylhet"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, biodataFilter(tt.age, tt.gender, tt.division))
		})
	}
}

func TestCreateBiodata(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	// The id assignment reads the owner's current maximum and writes max+1 in
	// two separate operations. Two concurrent creates for the same owner can
	// both observe the same maximum and end up sharing a biodataId; these
	// cases only pin down the sequential behaviour.
	mt.Run("first record gets id 1", func(mt *mtest.T) {
		h := New(database.New(mt.Client, "weddingDB"), "secret", nil)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "weddingDB.bioData", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		c, w := jsonContext(mt.T, http.MethodPost, "/bioData", `{"email":"fresh@example.com","gender":"male","age":28}`)
		h.CreateBiodata(c)

		assert.Equal(mt.T, http.StatusOK, w.Code)

		started := mt.GetStartedEvent() // find
		insert := mt.GetStartedEvent()
		assert.Equal(mt.T, "find", started.CommandName)
		assert.Equal(mt.T, "insert", insert.CommandName)

		docs := insert.Command.Lookup("documents").Array()
		values, err := docs.Values()
		assert.NoError(mt.T, err)
		assert.Len(mt.T, values, 1)
		id, ok := values[0].Document().Lookup("biodataId").AsInt64OK()
		assert.True(mt.T, ok)
		assert.Equal(mt.T, int64(1), id)
	})

	mt.Run("next record gets max plus one", func(mt *mtest.T) {
		h := New(database.New(mt.Client, "weddingDB"), "secret", nil)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "weddingDB.bioData", mtest.FirstBatch,
				bson.D{{Key: "email", Value: "owner@example.com"}, {Key: "biodataId", Value: 4}}),
			mtest.CreateSuccessResponse(),
		)

		c, w := jsonContext(mt.T, http.MethodPost, "/bioData", `{"email":"owner@example.com","gender":"female","age":26}`)
		h.CreateBiodata(c)

		assert.Equal(mt.T, http.StatusOK, w.Code)

		_ = mt.GetStartedEvent() // find
		insert := mt.GetStartedEvent()
		docs := insert.Command.Lookup("documents").Array()
		values, err := docs.Values()
		assert.NoError(mt.T, err)
		id, ok := values[0].Document().Lookup("biodataId").AsInt64OK()
		assert.True(mt.T, ok)
		assert.Equal(mt.T, int64(5), id)
	})
}

func TestGetBiodataAbsentIsNull(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing email returns null, not an error", func(mt *mtest.T) {
		h := New(database.New(mt.Client, "weddingDB"), "secret", nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "weddingDB.bioData", mtest.FirstBatch))

		c, w := jsonContext(mt.T, http.MethodGet, "/bioData/email/none@example.com", "")
		c.Params = gin.Params{{Key: "email", Value: "none@example.com"}}
		h.GetBiodataByEmail(c)

		assert.Equal(mt.T, http.StatusOK, w.Code)

		var body interface{}
		assert.NoError(mt.T, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Nil(mt.T, body)
	})
}
