package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contactbook/backend/internal/config"
	"github.com/contactbook/backend/internal/handler"
	"github.com/contactbook/backend/internal/logging"
	"github.com/contactbook/backend/internal/repository"
	"github.com/contactbook/backend/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()

	pool, err := repository.NewPool(context.Background(), cfg.Database.PostgresURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	contactRepo := repository.NewPgContactRepository(pool)

	// Provision the table up front. Collection handlers still ensure it on
	// every call, so a table dropped mid-run (test harnesses do this)
	// comes back on the next list or create.
	if err := contactRepo.EnsureSchema(context.Background()); err != nil {
		logging.Fatal("failed to ensure schema", "error", err)
	}

	contactService := service.NewContactService(contactRepo)

	h := handler.New(pool, cfg.CORS.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("GET /contacts", contactHandler.List)
	mux.HandleFunc("POST /contacts", contactHandler.Create)
	mux.HandleFunc("DELETE /contacts", contactHandler.DeleteAll)
	mux.HandleFunc("GET /contacts/{id}", contactHandler.Get)
	mux.HandleFunc("PUT /contacts/{id}", contactHandler.Update)
	mux.HandleFunc("DELETE /contacts/{id}", contactHandler.Delete)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      h.CORS(handler.RequestLogger(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
