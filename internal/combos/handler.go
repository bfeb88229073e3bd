package combos

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// GET /combos
// --------------------------------------------------
//

func (h *Handler) ListActiveTiers() gin.HandlerFunc {
	return func(c *gin.Context) {

		tiers, err := h.service.ListActiveTiers(
			c.Request.Context(),
			middleware.OrgFromContext(c),
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "tier listing failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"tiers": tiers})
	}
}
