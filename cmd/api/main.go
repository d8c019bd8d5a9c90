package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmendesdev/lookkg/internal/api"
	"github.com/lmendesdev/lookkg/internal/config"
	"github.com/lmendesdev/lookkg/internal/graph"
	"github.com/lmendesdev/lookkg/internal/recommend"
	"github.com/lmendesdev/lookkg/internal/store"
)

func main() {
	seed := flag.Bool("seed", false, "populate the catalog with the demo fixture before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalogStore, err := store.Open(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("Failed to open catalog store: %v", err)
	}
	defer catalogStore.Close()

	ctx := context.Background()

	if *seed {
		if err := store.Seed(ctx, catalogStore); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		log.Println("Seeded demo catalog")
	}

	items, err := catalogStore.LoadAll(ctx)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	g := graph.New()
	stats := g.Rebuild(items)
	log.Printf("Graph built: %d nodes, %d edges", stats.Nodes, stats.Edges)

	recommender := recommend.New(catalogStore, g)

	// Create and start server
	server := api.NewServer(cfg, recommender)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := server.Start(ctx); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
