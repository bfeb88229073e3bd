package benefits

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
// POST /benefits/profile
// --------------------------------------------------
//

func (h *Handler) CalculateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {

		var req struct {
			AnswerIDs []string `json:"answer_ids"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		profile, err := h.service.CalculateProfile(
			c.Request.Context(),
			middleware.OrgFromContext(c),
			req.AnswerIDs,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "profile calculation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"profile": profile})
	}
}

//
// --------------------------------------------------
// POST /admin/benefits/recompute  (manual fallback)
// --------------------------------------------------
//

func (h *Handler) Recompute() gin.HandlerFunc {
	return func(c *gin.Context) {

		err := h.service.RecomputeStats(
			c.Request.Context(),
			middleware.OrgFromContext(c),
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "recompute failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "recomputed"})
	}
}
