package rxpricing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/middleware"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/xerrors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// POST /lenses/:code/rx-pricing
// --------------------------------------------------
//

func (h *Handler) CalculateAddOnPricing() gin.HandlerFunc {
	return func(c *gin.Context) {

		lensCode := c.Param("code")
		if lensCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing lens code"})
			return
		}

		var req struct {
			Prescription Prescription `json:"prescription"`
			Policy       string       `json:"policy"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		result, err := h.service.CalculateAddOnPricing(
			c.Request.Context(),
			middleware.OrgFromContext(c),
			lensCode,
			req.Prescription,
			req.Policy,
		)
		if err != nil {
			switch {
			case xerrors.IsValidation(err):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case xerrors.IsNotFound(err):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "calculation failed"})
			}
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
