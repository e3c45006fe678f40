package api

import (
	"net/http"

	chatDelivery "snapnet-backend/internal/chat/delivery"
	chatUsecase "snapnet-backend/internal/chat/usecase"
	followDelivery "snapnet-backend/internal/follow/delivery"
	followUsecase "snapnet-backend/internal/follow/usecase"
	postDelivery "snapnet-backend/internal/post/delivery"
	postUsecase "snapnet-backend/internal/post/usecase"
	searchDelivery "snapnet-backend/internal/search/delivery"
	searchUsecase "snapnet-backend/internal/search/usecase"
	shopDelivery "snapnet-backend/internal/shop/delivery"
	shopUsecase "snapnet-backend/internal/shop/usecase"
	uploadDelivery "snapnet-backend/internal/upload/delivery"
	"snapnet-backend/internal/user/delivery"
	userUsecase "snapnet-backend/internal/user/usecase"
	"snapnet-backend/pkg/config"
	"snapnet-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, userUc userUsecase.UserUsecase, postUc postUsecase.PostUsecase, followUc followUsecase.FollowUsecase, chatUc chatUsecase.ChatUsecase, shopUc shopUsecase.ShopUsecase, searchUc searchUsecase.SearchUsecase, storageClient *storage.Client, cfg *config.Config) {
	userHandler := delivery.NewUserHandler(userUc)
	postHandler := postDelivery.NewPostHandler(postUc, cfg.PageSize)
	followHandler := followDelivery.NewFollowHandler(followUc)
	chatHandler := chatDelivery.NewChatHandler(chatUc)
	shopHandler := shopDelivery.NewShopHandler(shopUc, cfg.PageSize)
	searchHandler := searchDelivery.NewSearchHandler(searchUc, cfg.PageSize)
	uploadHandler := uploadDelivery.NewUploadHandler(storageClient)

	authRequired := delivery.AuthMiddleware(userUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// User and auth routes
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authRequired, userHandler.Logout)
			users.GET("/user-by-token", authRequired, userHandler.GetProfileByToken)
			users.PUT("/user", authRequired, userHandler.UpdateProfile)
			users.POST("/init-reset-password", userHandler.InitPasswordReset)
			users.POST("/reset-password", userHandler.ResetPassword)
			users.GET("/user/:id/profile", authRequired, userHandler.GetProfile)
			users.GET("/user/:id/likes", authRequired, userHandler.GetUserLikes)
			users.GET("/user/:id/comments", authRequired, userHandler.GetUserComments)
			users.GET("/user/:id/posts", authRequired, userHandler.GetUserPosts)
		}

		// Post routes (protected)
		posts := api.Group("/posts")
		posts.Use(authRequired)
		{
			posts.POST("", postHandler.CreatePost)
			posts.GET("/feed/user", postHandler.GetFeed)
			posts.GET("/explore", postHandler.Explore)
			posts.GET("/:id", postHandler.GetPost)
			posts.PUT("/:id", postHandler.UpdatePost)
			posts.DELETE("/:id", postHandler.DeletePost)
			posts.POST("/:id/like", postHandler.LikePost)
			posts.POST("/:id/unlike", postHandler.UnlikePost)
			posts.POST("/:id/comment", postHandler.AddComment)
			posts.DELETE("/:postId/comment/:commentId", postHandler.DeleteComment)
		}

		// Search routes (protected)
		search := api.Group("/search")
		search.Use(authRequired)
		{
			search.GET("/users", searchHandler.SearchUsers)
			search.GET("/posts", searchHandler.SearchPosts)
			search.GET("/products", searchHandler.SearchProducts)
		}

		// Follow graph routes (protected)
		follow := api.Group("/follow")
		follow.Use(authRequired)
		{
			follow.POST("", followHandler.ToggleFollow)
			follow.GET("/followers/:id", followHandler.GetFollowers)
			follow.GET("/following/:id", followHandler.GetFollowing)
		}

		// Marketplace routes (protected)
		shop := api.Group("/shop")
		shop.Use(authRequired)
		{
			shop.POST("/product", shopHandler.CreateProduct)
			shop.GET("/products", shopHandler.GetProducts)
			shop.GET("/products/:id", shopHandler.GetProduct)
			shop.POST("/cart", shopHandler.AddToCart)
			shop.GET("/get-cart", shopHandler.GetCart)
			shop.DELETE("/cart/:id", shopHandler.RemoveFromCart)
			shop.DELETE("/empty-cart", shopHandler.EmptyCart)
			shop.POST("/checkout", shopHandler.Checkout)
		}

		// File upload (protected)
		api.POST("/file", authRequired, uploadHandler.Upload)

		// Conversation routes (protected)
		conversation := api.Group("/conversation")
		conversation.Use(authRequired)
		{
			conversation.POST("/createConversation", chatHandler.CreateConversation)
			conversation.GET("/getConversation/:userId", chatHandler.GetConversations)
			conversation.GET("/findConversation/:receiverId", chatHandler.FindConversation)
			conversation.DELETE("/deleteConversation/:conversationId", chatHandler.DeleteConversation)
		}

		// Message routes (protected)
		message := api.Group("/message")
		message.Use(authRequired)
		{
			message.POST("/createMessage", chatHandler.CreateMessage)
			message.GET("/getMessage/:conversationId", chatHandler.GetMessages)
			message.POST("/sharePost", chatHandler.SharePost)
			message.GET("/getSharedPost/:conversationId", chatHandler.GetSharedPosts)
			message.POST("/shareImage", chatHandler.ShareImage)
			message.POST("/shareVideo", chatHandler.ShareVideo)
			message.POST("/shareAudio", chatHandler.ShareAudio)
			message.GET("/getSharedImage/:conversationId", chatHandler.GetSharedImages)
			message.GET("/getSharedVideo/:conversationId", chatHandler.GetSharedVideos)
			message.GET("/getSharedAudio/:conversationId", chatHandler.GetSharedAudio)
		}
	}
}
