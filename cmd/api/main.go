package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"homeswipe/internal/adapter/api"
	"homeswipe/internal/adapter/api/handler"
	apimiddleware "homeswipe/internal/adapter/api/middleware"
	"homeswipe/internal/adapter/api/router"
	"homeswipe/internal/adapter/repository"
	"homeswipe/internal/domain/service"
	"homeswipe/internal/infrastructure/firebase"
	"homeswipe/internal/infrastructure/ratelimit"
	"homeswipe/internal/infrastructure/websocket"
	"homeswipe/internal/usecase"
	"homeswipe/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	propertyRepo := repository.NewFirestorePropertyRepository(firestoreClient)
	swipeRepo := repository.NewFirestoreSwipeRepository(firestoreClient)
	matchRepo := repository.NewFirestoreMatchRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	recommender := service.NewRecommendationService()

	userUseCase := usecase.NewUserUseCase(userRepo)
	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, swipeRepo, matchRepo, userRepo, recommender)
	swipeUseCase := usecase.NewSwipeUseCase(swipeRepo, propertyRepo, userRepo, rateLimiter)
	matchUseCase := usecase.NewMatchUseCase(matchRepo, propertyRepo, userRepo)
	chatUseCase := usecase.NewChatUseCase(messageRepo, matchRepo, wsManager, rateLimiter)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	userHandler := handler.NewUserHandler(userUseCase, firebaseAuthClient)
	propertyHandler := handler.NewPropertyHandler(propertyUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	chatHandler := handler.NewChatHandler(chatUseCase)
	wsHandler := handler.NewWebSocketHandler(wsManager, firebaseAuthClient, chatUseCase)

	router.Setup(e, authMiddleware, userHandler, propertyHandler, swipeHandler, matchHandler, chatHandler, wsHandler)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
