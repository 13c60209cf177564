package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
	"github.com/SscSPs/relief_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles recording, voiding and restoring ledger entries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	auditService  portssvc.AuditReaderSvc
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, as portssvc.AuditReaderSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, auditService: as}
}

// registerLedgerRoutes registers the ledger entry routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, auditService portssvc.AuditReaderSvc) {
	h := newLedgerHandler(ledgerService, auditService)

	entries := rg.Group("/ledger/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/void", h.voidEntry)
		entries.POST("/:entryID/restore", h.restoreEntry)
		entries.GET("/:entryID/audit", h.listAuditEvents)
	}
}

// createEntry godoc
// @Summary Record a ledger entry
// @Description Records a donation, expense or cash movement. Entries naming an item are added to inventory.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]any "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "External reference already recorded"
// @Failure 500 {object} map[string]string "Failed to record entry"
// @Security BearerAuth
// @Router /ledger/entries [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err, "CreateEntry")
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, err, "Failed to record entry")
		return
	}

	logger.Info("Ledger entry recorded", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a ledger entry
// @Description Retrieves an entry whether it is active or voided
// @Tags ledger
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /ledger/entries/{entryID} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// voidEntry godoc
// @Summary Void a ledger entry
// @Description Soft-deletes an active entry. Fails when stock from the entry has already been consumed or transferred.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   request body dto.VoidEntryRequest true "Void reason"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} map[string]any "Reason missing"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Already voided or stock consumed"
// @Failure 503 {object} map[string]string "Consumption check unavailable"
// @Security BearerAuth
// @Router /ledger/entries/{entryID}/void [post]
func (h *ledgerHandler) voidEntry(c *gin.Context) {
	entryID := c.Param("entryID")

	var req dto.VoidEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err, "VoidEntry")
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.VoidEntry(c.Request.Context(), entryID, req, actorID)
	if err != nil {
		respondWithError(c, err, "Failed to void entry")
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Entry: dto.ToLedgerEntryResponse(entry)})
}

// restoreEntry godoc
// @Summary Restore a voided ledger entry
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   request body dto.RestoreEntryRequest false "Optional note"
// @Success 200 {object} dto.MutationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Already active"
// @Security BearerAuth
// @Router /ledger/entries/{entryID}/restore [post]
func (h *ledgerHandler) restoreEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	// The body is optional; an empty one, chunked or not, decodes to io.EOF.
	var req dto.RestoreEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind JSON for RestoreEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.RestoreEntry(c.Request.Context(), entryID, req, actorID)
	if err != nil {
		respondWithError(c, err, "Failed to restore entry")
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Entry: dto.ToLedgerEntryResponse(entry)})
}

// listAuditEvents godoc
// @Summary List an entry's audit trail
// @Description Returns audit events for the entry in the order they were recorded
// @Tags ledger
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   limit query int false "Page size" default(50) minimum(1) maximum(200)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListAuditEventsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /ledger/entries/{entryID}/audit [get]
func (h *ledgerHandler) listAuditEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAuditEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListAuditEvents", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.auditService.ListAuditEvents(c.Request.Context(), c.Param("entryID"), params)
	if err != nil {
		respondWithError(c, err, "Failed to list audit events")
		return
	}
	c.JSON(http.StatusOK, resp)
}
