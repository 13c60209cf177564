package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type verificationHandler struct {
	verificationService portssvc.VerificationSvc
}

// registerVerificationRoutes registers the unauthenticated donation confirmation lookup.
func registerVerificationRoutes(r *gin.Engine, verificationService portssvc.VerificationSvc) {
	h := &verificationHandler{verificationService: verificationService}
	r.GET("/public/verify", h.verify)
}

// verify godoc
// @Summary Confirm a donation by transaction reference
// @Description Returns the date, amount, currency symbol and cause of a recorded donation. Donor details are never returned.
// @Tags public
// @Produce  json
// @Param   reference query string true "Bank transaction reference"
// @Success 200 {object} domain.VerificationResult
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /public/verify [get]
func (h *verificationHandler) verify(c *gin.Context) {
	// Malformed or missing references still go through the service so they count
	// against the limiter and answer found=false.
	result, err := h.verificationService.VerifyReference(c.Request.Context(), c.ClientIP(), c.Query("reference"))
	if err != nil {
		respondWithError(c, err, "Failed to verify reference")
		return
	}
	c.JSON(http.StatusOK, result)
}
