package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"example.com/shop-backend/internal/config"
	"example.com/shop-backend/internal/handlers"
	"example.com/shop-backend/internal/logger"
	"example.com/shop-backend/internal/services"
	"example.com/shop-backend/internal/storage"
	"example.com/shop-backend/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(0).Fatal("failed to load config", "error", err)
	}
	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("failed to ping MongoDB", "error", err)
	}
	log.Info("connected to MongoDB", "uri", cfg.MongoURI)

	db := client.Database(cfg.DatabaseName)

	// Lookup index only. Email uniqueness stays an application-level
	// check before insert.
	userIndex := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, userIndex); err != nil {
		log.Warn("failed to create email index", "error", err)
	}

	uploads, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("failed to prepare upload dir", "error", err)
	}

	users := services.NewUserService(db, cfg.AdminEmail)
	products := services.NewProductService(db)
	cart := services.NewCartService(db)
	tokens := token.NewService(cfg.JWTSecret)

	router := handlers.NewRouter(cfg, log, users, products, cart, tokens, uploads)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to serve", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server exited")
}
