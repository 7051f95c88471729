package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/lifedrop/backend/config"
	"github.com/lifedrop/backend/routes"
	"github.com/lifedrop/backend/store"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	ctx := context.Background()

	s, err := store.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to the database")
	}
	defer func() {
		if err := s.Close(context.TODO()); err != nil {
			logrus.WithError(err).Error("Error closing MongoDB connection")
		}
	}()

	redisClient, err := store.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to Redis")
	}

	router := mux.NewRouter()
	routes.Routes(router, s, redisClient, cfg)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logrus.Infof("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Error starting server")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("Error during server shutdown")
	}
	logrus.Info("Server gracefully stopped")
}
