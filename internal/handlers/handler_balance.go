package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uc3m-money/account_management_app/internal/apperrors"
	portssvc "github.com/uc3m-money/account_management_app/internal/core/ports/services"
	"github.com/uc3m-money/account_management_app/internal/dto"
	"github.com/uc3m-money/account_management_app/internal/middleware"
)

// balanceHandler handles HTTP requests related to account balances.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// newBalanceHandler creates a new balanceHandler.
func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// registerBalanceRoutes registers routes related to account balances.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("/:iban/balance", h.calculateBalance)
		accounts.GET("/:iban/balances", h.listBalances)
	}
}

// calculateBalance godoc
// @Summary Compute an account balance
// @Description Sums the transaction log entries for the account and appends a balance snapshot to the balances store
// @Tags balances
// @Produce  json
// @Param   iban path string true "Account IBAN"
// @Success 201 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid IBAN"
// @Failure 404 {object} map[string]string "IBAN not present in the transaction log"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /accounts/{iban}/balance [post]
func (h *balanceHandler) calculateBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	iban := c.Param("iban")

	snapshot, err := h.balanceService.CalculateBalance(c.Request.Context(), iban)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error computing balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("IBAN not found in transaction log", slog.String("iban", iban))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrMissingInput):
			// The transactions log path comes from configuration, so its
			// absence is a deployment fault.
			logger.Error("Transactions log missing", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Transactions log unavailable"})
		default:
			logger.Error("Failed to compute balance in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		}
		return
	}

	logger.Info("Balance computed successfully", slog.String("iban", iban))
	c.JSON(http.StatusCreated, dto.ToBalanceResponse(snapshot))
}

// listBalances godoc
// @Summary List balance snapshots for an account
// @Description Returns every balance snapshot recorded for the account, oldest first
// @Tags balances
// @Produce  json
// @Param   iban path string true "Account IBAN"
// @Success 200 {object} dto.ListBalancesResponse
// @Failure 400 {object} map[string]string "Invalid IBAN"
// @Failure 500 {object} map[string]string "Failed to list balances"
// @Router /accounts/{iban}/balances [get]
func (h *balanceHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	iban := c.Param("iban")

	snapshots, err := h.balanceService.ListBalanceSnapshots(c.Request.Context(), iban)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing balances", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list balances from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list balances"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListBalancesResponse{Balances: dto.ToListBalanceResponse(snapshots)})
}
