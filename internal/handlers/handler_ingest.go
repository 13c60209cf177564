package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
	"github.com/SscSPs/relief_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ingestHandler struct {
	ledgerService portssvc.LedgerEntrySvc
}

// registerIngestRoutes exposes the machine endpoint used by the email ingestion pipeline.
// Callers authenticate with an API key and are throttled per client address.
func registerIngestRoutes(r *gin.Engine, ledgerService portssvc.LedgerEntrySvc, limiter portssvc.RateLimiter, apiKeyHash string) {
	h := &ingestHandler{ledgerService: ledgerService}

	ingest := r.Group("/ingest", middleware.RateLimit(limiter), middleware.APIKeyAuth(apiKeyHash, middleware.IngestActorID))
	ingest.POST("/donations", h.ingestDonation)
}

// ingestDonation godoc
// @Summary Ingest a bank credit
// @Description Records a donation extracted from a bank notification. Replaying a reference returns the existing entry.
// @Tags ingest
// @Accept  json
// @Produce  json
// @Param   donation body dto.IngestDonationRequest true "Extracted credit"
// @Success 201 {object} dto.IngestDonationResponse "Recorded"
// @Success 200 {object} dto.IngestDonationResponse "Already recorded"
// @Failure 400 {object} map[string]any "Invalid input"
// @Failure 401 {object} map[string]string "Invalid API key"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /ingest/donations [post]
func (h *ingestHandler) ingestDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.IngestDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err, "IngestDonation")
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	entry, created, err := h.ledgerService.IngestExternalDonation(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, err, "Failed to record donation")
		return
	}

	logger.Info("Ingestion request handled",
		slog.String("entry_id", entry.EntryID),
		slog.Bool("created", created))

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.IngestDonationResponse{Created: created, Entry: dto.ToLedgerEntryResponse(entry)})
}
