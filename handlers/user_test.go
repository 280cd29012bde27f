package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wedlink/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func jsonContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestCreateUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("existing email is reported with a null inserted id", func(mt *mtest.T) {
		h := New(database.New(mt.Client, "weddingDB"), "secret", nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "weddingDB.users", mtest.FirstBatch,
			bson.D{{Key: "email", Value: "taken@example.com"}}))

		c, w := jsonContext(mt.T, http.MethodPost, "/users", `{"email":"taken@example.com"}`)
		h.CreateUser(c)

		assert.Equal(mt.T, http.StatusOK, w.Code)
		assert.JSONEq(mt.T, `{"message":"user already exists","insertedId":null}`, w.Body.String())
	})

	mt.Run("new email is inserted", func(mt *mtest.T) {
		h := New(database.New(mt.Client, "weddingDB"), "secret", nil)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "weddingDB.users", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		c, w := jsonContext(mt.T, http.MethodPost, "/users", `{"email":"new@example.com"}`)
		h.CreateUser(c)

		assert.Equal(mt.T, http.StatusOK, w.Code)
		assert.Contains(mt.T, w.Body.String(), "insertedId")
		assert.NotContains(mt.T, w.Body.String(), "already exists")
	})
}

func TestCheckAdmin(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("admin user", func(mt *mtest.T) {
		h := New(database.New(mt.Client, "weddingDB"), "secret", nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "weddingDB.users", mtest.FirstBatch,
			bson.D{{Key: "email", Value: "a@example.com"}, {Key: "role", Value: "admin"}}))

		c, w := jsonContext(mt.T, http.MethodGet, "/users/admin/a@example.com", "")
		c.Params = gin.Params{{Key: "email", Value: "a@example.com"}}
		h.CheckAdmin(c)

		assert.JSONEq(mt.T, `{"admin":true}`, w.Body.String())
	})

	mt.Run("no record means not admin", func(mt *mtest.T) {
		h := New(database.New(mt.Client, "weddingDB"), "secret", nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "weddingDB.users", mtest.FirstBatch))

		c, w := jsonContext(mt.T, http.MethodGet, "/users/admin/b@example.com", "")
		c.Params = gin.Params{{Key: "email", Value: "b@example.com"}}
		h.CheckAdmin(c)

		assert.JSONEq(mt.T, `{"admin":false}`, w.Body.String())
	})
}

func TestCheckPremium(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("premium user", func(mt *mtest.T) {
		h := New(database.New(mt.Client, "weddingDB"), "secret", nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "weddingDB.users", mtest.FirstBatch,
			bson.D{{Key: "email", Value: "p@example.com"}, {Key: "type", Value: "premium"}}))

		c, w := jsonContext(mt.T, http.MethodGet, "/users/premium/p@example.com", "")
		c.Params = gin.Params{{Key: "email", Value: "p@example.com"}}
		h.CheckPremium(c)

		assert.JSONEq(mt.T, `{"premium":true}`, w.Body.String())
	})
}
