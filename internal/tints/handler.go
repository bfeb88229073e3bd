package tints

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
// GET /tints/:id/price?lens_index=INDEX_16
// --------------------------------------------------
//

func (h *Handler) CalculateTintPrice() gin.HandlerFunc {
	return func(c *gin.Context) {

		tintID := c.Param("id")
		lensIndex := c.Query("lens_index")

		result, err := h.service.CalculateTintPrice(
			c.Request.Context(),
			middleware.OrgFromContext(c),
			tintID,
			lensIndex,
		)
		if err != nil {
			switch {
			case xerrors.IsValidation(err):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case xerrors.IsNotFound(err):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
			}
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
