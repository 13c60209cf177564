package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
	"github.com/SscSPs/relief_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type inventoryHandler struct {
	inventoryService portssvc.InventorySvc
}

// registerInventoryRoutes registers the inventory history view and manual adjustments.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvc) {
	h := &inventoryHandler{inventoryService: inventoryService}

	inventory := rg.Group("/inventory")
	{
		inventory.GET("/history", h.getHistory)
		inventory.POST("/adjustments", h.adjust)
	}
}

// getHistory godoc
// @Summary Inventory history
// @Description Lists movements for a ledger entry or an item with the on-hand quantity after each. Without filters the list is empty.
// @Tags inventory
// @Produce  json
// @Param   ledgerEntryId query string false "Ledger entry ID"
// @Param   itemName query string false "Item name, matched case and space insensitively"
// @Success 200 {array} dto.InventoryHistoryResponse
// @Failure 500 {object} map[string]string "Failed to load history"
// @Security BearerAuth
// @Router /inventory/history [get]
func (h *inventoryHandler) getHistory(c *gin.Context) {
	var params dto.InventoryHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	items, err := h.inventoryService.GetHistory(c.Request.Context(), domain.InventoryHistoryFilter{
		LedgerEntryID: params.LedgerEntryID,
		ItemName:      params.ItemName,
	})
	if err != nil {
		respondWithError(c, err, "Failed to load inventory history")
		return
	}

	res := make([]dto.InventoryHistoryResponse, len(items))
	for i, item := range items {
		res[i] = dto.ToInventoryHistoryResponse(item)
	}
	c.JSON(http.StatusOK, res)
}

// adjust godoc
// @Summary Adjust stock manually
// @Description Records a signed correction to an item's on-hand quantity
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   request body dto.AdjustInventoryRequest true "Adjustment"
// @Success 201 {object} domain.InventoryHistoryEntry
// @Failure 400 {object} map[string]any "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Inventory log not available"
// @Security BearerAuth
// @Router /inventory/adjustments [post]
func (h *inventoryHandler) adjust(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AdjustInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err, "AdjustInventory")
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	row, err := h.inventoryService.AdjustInventory(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, err, "Failed to adjust inventory")
		return
	}
	logger.Info("Inventory adjustment recorded", slog.String("history_id", row.HistoryID))
	c.JSON(http.StatusCreated, row)
}
