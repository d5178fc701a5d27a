package handler

import (
	"net/http"

	"quizmap/internal/delivery/http/middleware"
	"quizmap/internal/delivery/http/response"
	domainerrors "quizmap/internal/domain/errors"
	"quizmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	ScannerUC usecase.ScannerUsecase
}

// ScanHandler serves the candidate scan trigger and polling endpoints.
type ScanHandler struct {
	scannerUC usecase.ScannerUsecase
}

// NewScanHandler is the constructor for ScanHandler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		scannerUC: params.ScannerUC,
	}
}

// TriggerScanRequest represents the request body for triggering a scan
type TriggerScanRequest struct {
	ClearExisting bool    `json:"clear_existing"`
	MinConfidence float64 `json:"min_confidence" validate:"omitempty,min=0,max=1"`
	BatchSize     int     `json:"batch_size" validate:"omitempty,min=1,max=1000"`
}

// TriggerScan enqueues a duplicate candidate scan for the background worker.
func (h *ScanHandler) TriggerScan(c echo.Context) error {
	var req TriggerScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.TriggerScanInput{
		ClearExisting: req.ClearExisting,
		MinConfidence: req.MinConfidence,
		BatchSize:     req.BatchSize,
		RequestedBy:   middleware.Subject(c),
	}

	run, err := h.scannerUC.TriggerScan(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, run, "Scan queued successfully")
}

// GetScanRun returns one scan run for status polling.
func (h *ScanHandler) GetScanRun(c echo.Context) error {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid scan run ID")
	}

	run, err := h.scannerUC.GetScanRun(c.Request().Context(), runID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, run, "Scan run retrieved successfully")
}

// handleAppError maps domain errors to standard error responses.
func (h *ScanHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
