package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/benefits"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/combos"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/lenses"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/offers"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/rxpricing"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/tints"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	lensRepo := lenses.NewInMemoryRepository()
	benefitService := benefits.NewService(benefits.NewInMemoryRepository())
	comboService := combos.NewService(combos.NewInMemoryRepository(), nil)
	offerService := offers.NewService(offers.NewInMemoryRepository(), benefitService, comboService)

	return New(Handlers{
		Offers:    offers.NewHandler(offerService, nil),
		RxPricing: rxpricing.NewHandler(rxpricing.NewService(rxpricing.NewInMemoryRepository(), lensRepo)),
		Tints:     tints.NewHandler(tints.NewService(tints.NewInMemoryRepository())),
		Benefits:  benefits.NewHandler(benefitService),
		Combos:    combos.NewHandler(comboService),
	})
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestCalculateOffersRejectsBadBody(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/offers/calculate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
