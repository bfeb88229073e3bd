package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/benefits"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/cache"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/combos"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/db"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("📊 Stats Worker starting...")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	var tierCache *cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		tierCache = cache.NewCache(addr, os.Getenv("REDIS_PASSWORD"))
	}

	benefitService := benefits.NewService(benefits.NewPostgresRepository(pgDB))
	comboService := combos.NewService(combos.NewPostgresRepository(pgDB), tierCache)

	interval := time.Hour
	if raw := os.Getenv("STATS_RECOMPUTE_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid STATS_RECOMPUTE_INTERVAL: %v", err)
		}
		interval = parsed
	}

	log.Printf("✅ Stats Worker running, recomputing every %s. Press Ctrl+C to stop.", interval)

	// Recompute indefinitely. Calculators never block on this: rows are
	// upserted whole and readers only ever see the last committed snapshot.
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	run := func() {
		ctx := context.Background()
		if err := benefitService.RecomputeStats(ctx, ""); err != nil {
			log.Printf("⚠️  Stats recompute error: %v", err)
			return
		}
		comboService.InvalidateCache(ctx, "")
	}

	run()
	for range ticker.C {
		run()
	}
}
