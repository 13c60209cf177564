package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/relief_ledger_app/internal/apperrors"
	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
	"github.com/SscSPs/relief_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.saveCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
}

// saveCurrency godoc
// @Summary Add a currency or update its rate
// @Description Upserts a currency and its rate to the base currency. The base currency always has rate 1.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.SaveCurrencyRequest true "Currency details"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]any "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save currency"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) saveCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err, "SaveCurrency")
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	logger.Info("Received request to save currency", slog.String("currency_code", req.CurrencyCode))

	saved, err := h.currencyService.SaveCurrency(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, err, "Failed to save currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(saved))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	if len(currencyCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found", slog.String("currency_code", currencyCode))
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves a list of all available currencies with their rates
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}
