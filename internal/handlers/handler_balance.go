package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type balanceHandler struct {
	balanceService portssvc.BalanceSvc
	reportService  portssvc.ReportSvc
}

// registerBalanceRoutes registers the derived balance views and their XLSX export.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc, reportService portssvc.ReportSvc) {
	h := &balanceHandler{balanceService: balanceService, reportService: reportService}

	rg.GET("/balances", h.getBalances)
	rg.GET("/balances/by-currency", h.getCurrencyTotals)
	rg.GET("/reports/balances.xlsx", h.exportBalances)
}

// getBalances godoc
// @Summary Get bank account balances
// @Description Derives every active bank account's balance from its opening balance and active entries
// @Tags balances
// @Produce  json
// @Success 200 {array} dto.AccountBalanceResponse
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Security BearerAuth
// @Router /balances [get]
func (h *balanceHandler) getBalances(c *gin.Context) {
	balances, err := h.balanceService.GetBalances(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to compute balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountBalanceResponses(balances))
}

// getCurrencyTotals godoc
// @Summary Get balances grouped by currency
// @Tags balances
// @Produce  json
// @Success 200 {array} dto.CurrencyTotalResponse
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Security BearerAuth
// @Router /balances/by-currency [get]
func (h *balanceHandler) getCurrencyTotals(c *gin.Context) {
	totals, err := h.balanceService.GetCurrencyTotals(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to compute balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyTotalResponses(totals))
}

// exportBalances godoc
// @Summary Download balances as XLSX
// @Tags balances
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/balances.xlsx [get]
func (h *balanceHandler) exportBalances(c *gin.Context) {
	workbook, err := h.reportService.BalancesWorkbook(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to build report")
		return
	}
	filename := "balances-" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, workbook)
}
