package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/audit"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/benefits"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/cache"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/combos"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/db"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/lenses"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/offers"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/router"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/rxpricing"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/tints"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── CACHE ─────────────────────────
	var tierCache *cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		tierCache = cache.NewCache(addr, os.Getenv("REDIS_PASSWORD"))
		log.Println("✅ Redis tier cache enabled")
	} else {
		log.Println("Note: REDIS_ADDR not set, tier caching disabled")
	}

	// ───────────────────────── AUDIT SINK ─────────────────────────
	archive, err := audit.NewR2Archive(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}
	auditRecorder := audit.NewRecorder(audit.NewPostgresRepository(pgDB), archive)

	// ───────────────────────── CATALOG REPOS ─────────────────────────
	lensRepo := lenses.NewPostgresRepository(pgDB)
	bandRepo := rxpricing.NewPostgresRepository(pgDB)
	tintRepo := tints.NewPostgresRepository(pgDB)
	benefitRepo := benefits.NewPostgresRepository(pgDB)
	comboRepo := combos.NewPostgresRepository(pgDB)
	offerRepo := offers.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	benefitService := benefits.NewService(benefitRepo)
	comboService := combos.NewService(comboRepo, tierCache)
	rxService := rxpricing.NewService(bandRepo, lensRepo)
	tintService := tints.NewService(tintRepo)

	offerService := offers.NewService(
		offerRepo,
		benefitService,
		comboService,
	)

	// ───────────────────────── HANDLERS + ROUTES ─────────────────────────
	r := router.New(router.Handlers{
		Offers:    offers.NewHandler(offerService, auditRecorder),
		RxPricing: rxpricing.NewHandler(rxService),
		Tints:     tints.NewHandler(tintService),
		Benefits:  benefits.NewHandler(benefitService),
		Combos:    combos.NewHandler(comboService),
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
