package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/benefits"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/combos"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/middleware"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/offers"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/rxpricing"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/tints"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Offers    *offers.Handler
	RxPricing *rxpricing.Handler
	Tints     *tints.Handler
	Benefits  *benefits.Handler
	Combos    *combos.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Organization-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.OrgContext())

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── PRICING ─────────────────────────
	r.POST("/offers/calculate", h.Offers.CalculateOffers())
	r.POST("/lenses/:code/rx-pricing", h.RxPricing.CalculateAddOnPricing())
	r.GET("/tints/:id/price", h.Tints.CalculateTintPrice())

	// ───────────────────────── RECOMMENDATION ─────────────────────────
	r.POST("/benefits/profile", h.Benefits.CalculateProfile())
	r.GET("/combos", h.Combos.ListActiveTiers())

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	{
		// Benefit stats (manual fallback; the stats worker runs this on a ticker)
		admin.POST("/benefits/recompute", h.Benefits.Recompute())
	}

	return r
}
