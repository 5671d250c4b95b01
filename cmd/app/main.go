package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"trainingcentre/config"
	"trainingcentre/internal/application/usecase"
	"trainingcentre/internal/infrastructure/ai"
	"trainingcentre/internal/infrastructure/cache"
	"trainingcentre/internal/infrastructure/repository"
	"trainingcentre/internal/infrastructure/security"
	"trainingcentre/internal/middleware"
	handlers "trainingcentre/internal/transport/http"
)

func main() {
	// 1. Config
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Redis (session slots, rate limits, in-flight guard)
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis at", cfg.RedisAddr)

	// 3. Gemini client. A missing key is not checked here: the first
	// generation call fails and resolves to the fallback response.
	gemini, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	// 4. Layers
	tokens := security.NewTokenManager(cfg.SessionSecret)
	store := cache.NewRedisSessionStore(rdb, security.SessionTTL())
	catalog := repository.NewCourseCatalog()

	sessions := usecase.NewSessionUseCase(store, tokens)
	enroll := usecase.NewEnrollUseCase(catalog, sessions)
	roadmaps := usecase.NewRoadmapUseCase(gemini)

	authHandler := handlers.NewAuthHandler(sessions)
	userHandler := handlers.NewUserHandler(sessions, catalog)
	courseHandler := handlers.NewCourseHandler(catalog, enroll)
	roadmapHandler := handlers.NewRoadmapHandler(roadmaps)

	rateLimiter := middleware.NewRateLimiter(rdb)

	// 5. Router + run
	router := handlers.NewRouter(authHandler, userHandler, courseHandler, roadmapHandler, rateLimiter, tokens, cfg.AllowedOrigins)

	log.Printf("Training Centre API running on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
