package main

import (
	"github.com/gin-gonic/gin"

	"bookswap/api"
	"bookswap/models"
)

func main() {
	args := ParseArgs()
	if !args.Validate() {
		panic("missing arguments")
	}
	server, err := api.NewServer(args.ServerConfig)
	if err != nil {
		panic(err)
	}

	router := gin.Default()

	// public routes
	router.POST("/api/register", server.Register)
	router.POST("/api/login", server.Login)
	router.POST("/api/admin/login", server.AdminLogin)
	router.GET("/api/books", server.ListBooks)
	router.GET("/api/books/:id", server.GetBook)
	router.GET("/api/books/:id/reviews", server.ListBookReviews)
	router.GET("/api/events", server.ListEvents)
	router.GET("/api/events/upcoming", server.ListUpcomingEvents)
	router.GET("/api/events/type/:type", server.ListEventsByType)
	if args.ServerConfig.Storage.Backend == "" || args.ServerConfig.Storage.Backend == "local" {
		router.Static("/uploads", args.ServerConfig.Storage.UploadDir)
	}

	// routes that need a valid bearer token
	authed := router.Group("/api", server.AuthRequired())
	{
		authed.PUT("/profile", server.UpdateProfile)
		authed.POST("/books", server.CreateBook)
		authed.GET("/my-books", server.ListMyBooks)
		authed.DELETE("/books/:id", server.DeleteBook)
		authed.POST("/books/:id/reviews", server.AddBookReview)
		authed.GET("/my-reviews", server.ListMyReviews)
		authed.POST("/bids", server.PlaceBid)
		authed.GET("/bids/book/:bookId", server.ListBookBids)
		authed.PUT("/bids/:bidId/accept", server.AcceptBid)
		authed.POST("/transactions", server.CreateTransaction)
		authed.GET("/transactions/purchases", server.ListPurchases)
		authed.GET("/transactions/sales", server.ListSales)
		authed.POST("/exchange-requests", server.CreateExchangeRequest)
		authed.GET("/exchange-requests/received", server.ListReceivedRequests)
		authed.GET("/exchange-requests/sent", server.ListSentRequests)
		authed.PUT("/exchange-requests/:id/accept", server.AcceptExchangeRequest)
		authed.PUT("/exchange-requests/:id/decline", server.DeclineExchangeRequest)
		authed.DELETE("/exchange-requests/:id", server.CancelExchangeRequest)
		authed.GET("/wishlist", server.ListWishlist)
		authed.POST("/wishlist/:bookId", server.AddToWishlist)
		authed.DELETE("/wishlist/:bookId", server.RemoveFromWishlist)
		authed.POST("/events/submit", server.SubmitEvent)
	}

	// admin routes
	admin := router.Group("/api/admin", server.AuthRequired(), server.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
	{
		admin.GET("/books", server.AdminListBooks)
		admin.DELETE("/books/:bookId", server.AdminDeleteBook)
		admin.PUT("/events/:eventId/approve", server.AdminApproveEvent)
		admin.GET("/users", server.AdminListUsers)

		superAdmin := admin.Group("", server.RequireRole(models.RoleSuperAdmin))
		superAdmin.PUT("/users/:userId/role", server.AdminUpdateUserRole)
		superAdmin.POST("/users/promote-to-admin", server.AdminPromoteToAdmin)
	}

	if err := router.Run(args.ServerURL); err != nil {
		panic(err)
	}
}
