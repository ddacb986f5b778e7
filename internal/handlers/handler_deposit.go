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

// depositHandler handles HTTP requests related to deposits.
type depositHandler struct {
	depositService portssvc.DepositSvcFacade
}

// newDepositHandler creates a new depositHandler.
func newDepositHandler(ds portssvc.DepositSvcFacade) *depositHandler {
	return &depositHandler{depositService: ds}
}

// registerDepositRoutes registers routes related to deposits.
func registerDepositRoutes(rg *gin.RouterGroup, depositService portssvc.DepositSvcFacade) {
	h := newDepositHandler(depositService)

	deposits := rg.Group("/deposits")
	{
		deposits.POST("", h.createDeposit)
		deposits.POST("/file", h.createDepositFromFile)
		deposits.GET("", h.listDeposits)
	}
}

// createDeposit godoc
// @Summary Submit a deposit
// @Description Validates a deposit payload and appends it to the deposit ledger
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   deposit body dto.CreateDepositRequest true "Deposit payload"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record deposit"
// @Router /deposits [post]
func (h *depositHandler) createDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDeposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deposit, err := h.depositService.CreateDeposit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating deposit", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create deposit in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record deposit"})
		}
		return
	}

	logger.Info("Deposit created successfully", slog.String("deposit_signature", deposit.Signature()))
	c.JSON(http.StatusCreated, dto.ToDepositResponse(deposit))
}

// createDepositFromFile godoc
// @Summary Submit a deposit from an input file
// @Description Reads a deposit payload from a JSON file on the server, validates it and appends it to the deposit ledger
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   input body dto.CreateDepositFromFileRequest true "Input file location"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Missing or malformed input file, or validation error"
// @Failure 500 {object} map[string]string "Failed to record deposit"
// @Router /deposits/file [post]
func (h *depositHandler) createDepositFromFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDepositFromFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDepositFromFile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deposit, err := h.depositService.CreateDepositFromFile(c.Request.Context(), req.Path)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating deposit from file", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		// The referenced input file is client data, so its absence or bad
		// JSON is the caller's error, not ours.
		case errors.Is(err, apperrors.ErrMissingInput), errors.Is(err, apperrors.ErrMalformedStore):
			logger.Warn("Unusable deposit input file", slog.String("path", req.Path), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create deposit from file in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record deposit"})
		}
		return
	}

	logger.Info("Deposit created successfully from file", slog.String("deposit_signature", deposit.Signature()))
	c.JSON(http.StatusCreated, dto.ToDepositResponse(deposit))
}

// listDeposits godoc
// @Summary List recorded deposits
// @Description Returns deposits from the ledger, oldest first
// @Tags deposits
// @Produce  json
// @Param   limit query int false "Maximum number of records, 0 for the full ledger" default(0)
// @Param   offset query int false "Number of records to skip" default(0)
// @Success 200 {object} dto.ListDepositsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list deposits"
// @Router /deposits [get]
func (h *depositHandler) listDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDepositsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListDeposits", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	deposits, err := h.depositService.ListDeposits(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list deposits from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list deposits"})
		return
	}

	c.JSON(http.StatusOK, dto.ListDepositsResponse{Deposits: dto.ToListDepositResponse(deposits)})
}
