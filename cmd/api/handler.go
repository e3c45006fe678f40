package api

import (
	chatUsecase "snapnet-backend/internal/chat/usecase"
	followUsecase "snapnet-backend/internal/follow/usecase"
	postUsecase "snapnet-backend/internal/post/usecase"
	searchUsecase "snapnet-backend/internal/search/usecase"
	shopUsecase "snapnet-backend/internal/shop/usecase"
	userUsecase "snapnet-backend/internal/user/usecase"
	"snapnet-backend/pkg/config"
	"snapnet-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	userUsecase   userUsecase.UserUsecase
	postUsecase   postUsecase.PostUsecase
	followUsecase followUsecase.FollowUsecase
	chatUsecase   chatUsecase.ChatUsecase
	shopUsecase   shopUsecase.ShopUsecase
	searchUsecase searchUsecase.SearchUsecase
	storageClient *storage.Client
	config        *config.Config
}

func NewHandler(userUc userUsecase.UserUsecase, postUc postUsecase.PostUsecase, followUc followUsecase.FollowUsecase, chatUc chatUsecase.ChatUsecase, shopUc shopUsecase.ShopUsecase, searchUc searchUsecase.SearchUsecase, storageClient *storage.Client, cfg *config.Config) *Handler {
	return &Handler{
		userUsecase:   userUc,
		postUsecase:   postUc,
		followUsecase: followUc,
		chatUsecase:   chatUc,
		shopUsecase:   shopUc,
		searchUsecase: searchUc,
		storageClient: storageClient,
		config:        cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.userUsecase, h.postUsecase, h.followUsecase, h.chatUsecase, h.shopUsecase, h.searchUsecase, h.storageClient, h.config)

	return r.Run(addr)
}
