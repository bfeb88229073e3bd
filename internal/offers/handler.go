package offers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/middleware"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/xerrors"
)

// AuditRecorder persists the returned breakdown as an immutable audit record.
// The engine itself never writes; the handler is the persisting caller.
type AuditRecorder interface {
	Record(ctx context.Context, org string, req OfferRequest, b *OfferBreakdown) error
}

type Handler struct {
	service *Service
	audit   AuditRecorder // nil disables audit persistence
}

func NewHandler(service *Service, audit AuditRecorder) *Handler {
	return &Handler{service: service, audit: audit}
}

//
// --------------------------------------------------
// POST /offers/calculate
// --------------------------------------------------
//

func (h *Handler) CalculateOffers() gin.HandlerFunc {
	return func(c *gin.Context) {

		var req OfferRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		org := middleware.OrgFromContext(c)

		breakdown, err := h.service.CalculateOffers(c.Request.Context(), org, req)
		if err != nil {
			var ve *xerrors.ValidationError
			if errors.As(err, &ve) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":  ve.Msg,
					"fields": ve.Fields,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "offer calculation failed"})
			return
		}

		if h.audit != nil {
			// Audit failure must not block the priced answer.
			_ = h.audit.Record(c.Request.Context(), org, req, breakdown)
		}

		c.JSON(http.StatusOK, breakdown)
	}
}
