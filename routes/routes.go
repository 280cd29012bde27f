package routes

import (
	"net/http"
	"time"

	"wedlink/database"
	"wedlink/handlers"
	"wedlink/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every endpoint to its handler and authorization gates.
func SetupRouter(h *handlers.Handler, db *database.DB, secret string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://wedding-door.web.app", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.Authenticate(secret)
	admin := middleware.RequireAdmin(db)
	self := middleware.RequireSelf("email")

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "server running")
	})

	router.POST("/jwt", h.IssueToken)

	// users
	router.GET("/users", auth, admin, h.ListUsers)
	router.GET("/users/admin/:email", auth, self, h.CheckAdmin)
	router.GET("/users/premium/:email", auth, self, h.CheckPremium)
	router.POST("/users", h.CreateUser)
	router.DELETE("/users/:id", auth, admin, h.DeleteUser)
	router.PATCH("/users/admin/:id", auth, admin, h.MakeAdmin)
	router.PATCH("/users/premium/:id", auth, admin, h.MakeUserPremium)

	// biodata
	router.GET("/bioData/all", h.ListAllBiodata)
	router.GET("/bioData", h.ListBiodata)
	router.GET("/bioData/me", auth, h.MyBiodata)
	router.GET("/bioData/:id", h.GetBiodata)
	router.GET("/bioData/email/:email", h.GetBiodataByEmail)
	router.POST("/bioData", auth, h.CreateBiodata)
	router.PATCH("/bioData/:id", auth, h.UpdateMyBiodata)
	router.PATCH("/bioData/premium/:id", auth, admin, h.MakeBiodataPremium)
	router.PATCH("/bioData/contact/:id", auth, admin, h.ApproveBiodataContact)

	// reviews
	router.GET("/reviews", h.ListReviews)
	router.POST("/reviews", h.CreateReview)

	// favourites
	router.GET("/favourites", auth, self, h.ListFavourites)
	router.POST("/favourites", auth, h.CreateFavourite)
	router.DELETE("/favourites/:id", auth, h.DeleteFavourite)

	// contact requests
	router.POST("/reqContacts", auth, h.CreateContactRequest)
	router.GET("/reqContacts", auth, self, h.ListContactRequests)
	router.GET("/requestContacts", auth, admin, h.ListAllContactRequests)
	router.PATCH("/requestContacts/:id", auth, admin, h.ApproveContactRequest)
	router.DELETE("/reqContacts/:id", auth, admin, h.DeleteContactRequest)

	// premium requests
	router.POST("/reqPremium", auth, h.CreatePremiumRequest)
	router.GET("/requestPremium", auth, h.ListPremiumRequests)
	router.PATCH("/requestPremium/:id", auth, admin, h.ApprovePremiumRequest)

	// payments
	router.POST("/create-payment-intent", auth, h.CreatePaymentIntent)
	router.GET("/payments/:email", auth, self, h.ListPayments)

	// admin dashboard
	router.GET("/admin-stats", auth, admin, h.AdminStats)

	return router
}
