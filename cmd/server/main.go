package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/deskbreak/internal/api"
	"alcyxob/deskbreak/internal/catalog"
	"alcyxob/deskbreak/internal/config"
	"alcyxob/deskbreak/internal/repository/mongo"
	"alcyxob/deskbreak/internal/service"
	"alcyxob/deskbreak/internal/storage"
	"alcyxob/deskbreak/internal/workday"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting DeskBreak Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureSessionIndexes(ctx, appDB.Collection("break_sessions"))
		mongo.EnsureCompletionIndexes(ctx, appDB.Collection("exercise_history"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage (optional) ---
	var fileStorage storage.ObjectStorage
	if cfg.S3.Enabled {
		log.Println("Initializing file storage service...")
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Println("S3 storage disabled; exercise images unavailable.")
	}

	// --- Load Exercise Catalog ---
	cat, err := loadCatalog(cfg, fileStorage)
	if err != nil {
		log.Fatalf("FATAL: Failed to load exercise catalog: %v", err)
	}
	log.Printf("Exercise catalog loaded (%d exercises).", cat.Len())

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	sessionRepo := mongo.NewMongoSessionRepository(appDB)
	favoriteRepo := mongo.NewMongoFavoriteRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	workdayClient := workday.NewMockClient(cfg.Workday.TokenSecret, cfg.Workday.TokenExpiry)
	profileService := service.NewProfileService(profileRepo)
	exerciseService := service.NewExerciseService(cat, favoriteRepo, fileStorage)
	breakService := service.NewBreakService(cat, sessionRepo, favoriteRepo, profileService, cfg.Breaks.RecencyWindow)
	progressService := service.NewProgressService(sessionRepo, cfg.Breaks.DailyTarget)
	workdayService := service.NewWorkdayService(workdayClient, profileService)

	// --- Initialize Gin Engine ---
	router := gin.Default()

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, exerciseService, breakService, progressService, profileService, workdayService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// loadCatalog picks the catalog source: file path, object storage, or the
// embedded default, in that order.
func loadCatalog(cfg config.Config, fileStorage storage.ObjectStorage) (*catalog.Catalog, error) {
	switch {
	case cfg.Catalog.Path != "":
		log.Printf("Loading exercise catalog from file %s", cfg.Catalog.Path)
		return catalog.LoadFile(cfg.Catalog.Path)
	case cfg.Catalog.S3Key != "" && fileStorage != nil:
		log.Printf("Loading exercise catalog from object storage key %s", cfg.Catalog.S3Key)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return catalog.LoadObject(ctx, fileStorage, cfg.Catalog.S3Key)
	default:
		log.Println("Loading embedded exercise catalog.")
		return catalog.LoadDefault()
	}
}
