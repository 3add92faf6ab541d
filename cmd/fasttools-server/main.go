// Command fasttools-server provides a REST API for fasttools operations.
//
// Usage:
//
//	fasttools-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dgelleru/fasttools/api/handlers"
	"github.com/dgelleru/fasttools/api/middleware"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Per-sequence transform endpoints
		r.Route("/sequence", func(r chi.Router) {
			r.Post("/gc-fraction", handlers.GCFractionHandler)
			r.Post("/reverse-complement", handlers.ReverseComplementHandler)
			r.Post("/translate", handlers.TranslateHandler)
			r.Post("/transcribe", handlers.TranscribeHandler)
			r.Post("/validate", handlers.ValidateHandler)
		})

		// Quality endpoints
		r.Route("/quality", func(r chi.Router) {
			r.Post("/decode", handlers.DecodeQualityHandler)
			r.Post("/average", handlers.AverageQualityHandler)
		})

		// Table endpoints: the derived-column export boundary
		r.Route("/table", func(r chi.Router) {
			r.Post("/derive", handlers.DeriveTableHandler)
			r.Post("/summary", handlers.SummaryHandler)
		})
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("fasttools server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
	log.Println("server stopped")
}
