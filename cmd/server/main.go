package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/moundworks/diceball/internal/common/clock"
	"github.com/moundworks/diceball/internal/common/joincode"
	"github.com/moundworks/diceball/internal/common/uuid"
	"github.com/moundworks/diceball/internal/dice"
	"github.com/moundworks/diceball/internal/engine/outcome"
	"github.com/moundworks/diceball/internal/handlers/rest"
	"github.com/moundworks/diceball/internal/handlers/ws"
	sessionRepo "github.com/moundworks/diceball/internal/repositories/session"
	"github.com/moundworks/diceball/internal/services/identity"
	"github.com/moundworks/diceball/internal/services/presence"
	"github.com/moundworks/diceball/internal/services/roster"
	sessionService "github.com/moundworks/diceball/internal/services/session"
)

func main() {
	// Load .env in development; production relies on real env vars
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

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

	// Initialize repositories
	sessionStore, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	// Initialize dice roller; DICE_SEED pins the sequence for replays
	diceRoller := dice.New(&dice.Config{
		Seed: getEnv("DICE_SEED", ""),
	})

	// Initialize outcome engine
	engine, err := outcome.New(&outcome.Config{
		BiasShift: getEnvFloat("BIAS_SHIFT", 0),
	})
	if err != nil {
		log.Fatalf("Failed to create outcome engine: %v", err)
	}

	// Initialize roster collaborator; the demo table keeps a dev server
	// playable until the real roster backend is wired in
	rosterService := roster.NewStatic(roster.DemoRosters())

	// Initialize session service
	sessionSvc, err := sessionService.New(&sessionService.Config{
		SessionRepo:   sessionStore,
		RosterService: rosterService,
		Engine:        engine,
		DiceRoller:    diceRoller,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		JoinCodes:     joincode.New(&joincode.Config{}),
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	// The hub doubles as the presence notifier so grace-period forfeits
	// reach the surviving player
	hub := ws.NewHub()

	// Initialize presence service
	presenceSvc, err := presence.New(&presence.Config{
		Grace:          time.Duration(getEnvInt("GRACE_PERIOD_SECONDS", 60)) * time.Second,
		SessionService: sessionSvc,
		Notifier:       hub,
	})
	if err != nil {
		log.Fatalf("Failed to create presence service: %v", err)
	}

	// Identity: dev pass-through unless a real verifier is wired in
	var verifier identity.Verifier = identity.Insecure{}

	// Initialize handlers
	wsHandler, err := ws.NewHandler(&ws.Config{
		SessionService:  sessionSvc,
		PresenceService: presenceSvc,
		Identity:        verifier,
	}, hub)
	if err != nil {
		log.Fatalf("Failed to create websocket handler: %v", err)
	}

	restHandler, err := rest.NewHandler(&rest.Config{
		SessionService: sessionSvc,
		Identity:       verifier,
	})
	if err != nil {
		log.Fatalf("Failed to create REST handler: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	mux.Handle("/", restHandler)

	server := &http.Server{
		Addr:    ":" + getEnv("PORT", "8080"),
		Handler: mux,
	}

	go func() {
		log.Printf("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	presenceSvc.Stop()

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

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}
