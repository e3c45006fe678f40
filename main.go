package main

import (
	"log"

	api "snapnet-backend/cmd/api"
	chatdomain "snapnet-backend/internal/chat/domain"
	chatRepo "snapnet-backend/internal/chat/repository"
	chatUsecase "snapnet-backend/internal/chat/usecase"
	followdomain "snapnet-backend/internal/follow/domain"
	followRepo "snapnet-backend/internal/follow/repository"
	followUsecase "snapnet-backend/internal/follow/usecase"
	"snapnet-backend/internal/notification"
	postdomain "snapnet-backend/internal/post/domain"
	postRepo "snapnet-backend/internal/post/repository"
	postUsecase "snapnet-backend/internal/post/usecase"
	searchUsecase "snapnet-backend/internal/search/usecase"
	shopdomain "snapnet-backend/internal/shop/domain"
	shopRepo "snapnet-backend/internal/shop/repository"
	shopUsecase "snapnet-backend/internal/shop/usecase"
	userdomain "snapnet-backend/internal/user/domain"
	userRepo "snapnet-backend/internal/user/repository"
	userUsecase "snapnet-backend/internal/user/usecase"
	"snapnet-backend/pkg/config"
	"snapnet-backend/pkg/database"
	"snapnet-backend/pkg/fcm"
	"snapnet-backend/pkg/mailer"
	"snapnet-backend/pkg/payment"
	"snapnet-backend/pkg/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&userdomain.User{}, &userdomain.DeviceToken{},
		&postdomain.Post{}, &postdomain.Like{}, &postdomain.Comment{},
		&followdomain.Follow{},
		&chatdomain.Conversation{}, &chatdomain.Message{}, &chatdomain.SharedPost{},
		&shopdomain.Product{}, &shopdomain.CartItem{}, &shopdomain.Order{}, &shopdomain.OrderItem{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := userRepo.NewUserRepository(db)
	tokenRepository := userRepo.NewDeviceTokenRepository(db)
	postRepository := postRepo.NewPostRepository(db)
	followRepository := followRepo.NewFollowRepository(db)
	chatRepository := chatRepo.NewChatRepository(db)
	shopRepository := shopRepo.NewShopRepository(db)

	// Initialize FCM client (optional, push notifications are disabled without it)
	var pusher notification.Pusher
	if cfg.FirebaseCredentials != "" {
		fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
		} else {
			pusher = fcmClient
		}
	} else {
		log.Println("[WARN] No Firebase credentials configured, push notifications disabled")
	}

	// Initialize notification service
	notifService := notification.NewService(userRepository, postRepository, shopRepository, tokenRepository, pusher)

	// Initialize S3 storage client (optional, file uploads are disabled without it)
	var storageClient *storage.Client
	if cfg.AWSAccessKeyID != "" {
		storageClient, err = storage.NewClient(cfg)
		if err != nil {
			log.Printf("[WARN] Failed to initialize S3 client (file uploads disabled): %v", err)
		}
	} else {
		log.Println("[WARN] No AWS credentials configured, file uploads disabled")
	}

	// Initialize payment and mail clients
	paymentClient := payment.NewClient(cfg.StripeSecretKey)
	recoveryMailer := mailer.New(cfg.SendGridAPIKey, cfg.SenderEmail, cfg.SystemName)

	// Initialize use cases (dependency injection)
	userUc := userUsecase.NewUserUsecase(userRepository, tokenRepository, postRepository, recoveryMailer, cfg)
	postUc := postUsecase.NewPostUsecase(postRepository, notifService)
	followUc := followUsecase.NewFollowUsecase(followRepository, userRepository, notifService)
	chatUc := chatUsecase.NewChatUsecase(chatRepository, userRepository, postRepository)
	shopUc := shopUsecase.NewShopUsecase(shopRepository, userRepository, paymentClient, notifService)
	searchUc := searchUsecase.NewSearchUsecase(userRepository, postRepository, shopRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(userUc, postUc, followUc, chatUc, shopUc, searchUc, storageClient, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
