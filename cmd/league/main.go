package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/gkha/league/internal/common/clock"
	"github.com/gkha/league/internal/common/uuid"
	"github.com/gkha/league/internal/dice"
	"github.com/gkha/league/internal/handlers/httpapi"
	"github.com/gkha/league/internal/names"
	leaguerepo "github.com/gkha/league/internal/repositories/league"
	"github.com/gkha/league/internal/schedule"
	"github.com/gkha/league/internal/season"
	"github.com/gkha/league/internal/seed"
	feedsvc "github.com/gkha/league/internal/services/feed"
	leaguesvc "github.com/gkha/league/internal/services/league"
	"github.com/gkha/league/internal/sim"
)

func main() {
	_ = godotenv.Load(".env")

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repository
	repo, err := leaguerepo.NewRedis(&leaguerepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create league repository: %v", err)
	}

	// Initialize shared dependencies
	roller := dice.New(&dice.Config{})
	nameGen := names.New(&names.Config{Roller: roller})
	uuider := &uuid.DefaultUUID{}
	clk := &clock.DefaultClock{}

	// Initialize league service
	svc, err := leaguesvc.New(&leaguesvc.Config{
		Repository:   repo,
		SimEngine:    sim.New(&sim.Config{Roller: roller}),
		SeasonEngine: season.New(&season.Config{Roller: roller, Names: nameGen, UUID: uuider}),
		Seeder:       seed.New(&seed.Config{Roller: roller, Names: nameGen, UUID: uuider, Clock: clk}),
		Scheduler:    schedule.New(&schedule.Config{Roller: roller, UUID: uuider}),
		Feed:         feedsvc.New(&feedsvc.Config{Roller: roller, UUID: uuider}),
		UUID:         uuider,
		Clock:        clk,
	})
	if err != nil {
		log.Fatalf("Failed to create league service: %v", err)
	}

	// Initialize the HTTP API
	var origins []string
	if raw := getEnv("CORS_ALLOW_ORIGINS", ""); raw != "" {
		origins = strings.Split(raw, ",")
	}

	router := httpapi.NewRouter(&httpapi.RouterConfig{
		Handler:        httpapi.New(&httpapi.Config{Service: svc}),
		AllowedOrigins: origins,
	})

	addr := getEnv("LISTEN_ADDR", ":8080")
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
