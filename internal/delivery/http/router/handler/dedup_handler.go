package handler

import (
	"net/http"

	"quizmap/internal/delivery/http/middleware"
	"quizmap/internal/delivery/http/response"
	"quizmap/internal/domain/entity"
	domainerrors "quizmap/internal/domain/errors"
	"quizmap/internal/domain/repository"
	"quizmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DedupHandlerParams holds dependencies for DedupHandler, injected by Fx.
type DedupHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	MergeUC  usecase.MergeUsecase
}

// DedupHandler serves the duplicate review queue and merge endpoints.
type DedupHandler struct {
	reviewUC usecase.ReviewUsecase
	mergeUC  usecase.MergeUsecase
}

// NewDedupHandler is the constructor for DedupHandler
func NewDedupHandler(params DedupHandlerParams) *DedupHandler {
	return &DedupHandler{
		reviewUC: params.ReviewUC,
		mergeUC:  params.MergeUC,
	}
}

// ListCandidatesRequest represents the query parameters for the review queue
type ListCandidatesRequest struct {
	Band    string `query:"band" validate:"omitempty,oneof=high medium low"`
	SortBy  string `query:"sort_by" validate:"omitempty,oneof=confidence name_similarity location_similarity created_at"`
	Order   string `query:"order" validate:"omitempty,oneof=asc desc"`
	Page    int    `query:"page" validate:"omitempty,min=1"`
	PerPage int    `query:"per_page" validate:"omitempty,min=1,max=200"`
}

// CandidatePage is the paginated review queue response
type CandidatePage struct {
	Candidates []*usecase.CandidateSummary `json:"candidates"`
	Total      int64                       `json:"total"`
	Page       int                         `json:"page"`
	PerPage    int                         `json:"per_page"`
}

// ListCandidates returns the pending review queue, filtered and paged.
func (h *DedupHandler) ListCandidates(c echo.Context) error {
	var req ListCandidatesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid candidate query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if req.Page == 0 {
		req.Page = 1
	}
	if req.PerPage == 0 {
		req.PerPage = 50
	}

	input := &usecase.ListCandidatesInput{
		Band:    entity.ConfidenceBand(req.Band),
		SortBy:  repository.CandidateSort(req.SortBy),
		SortAsc: req.Order == "asc",
		Page:    req.Page,
		PerPage: req.PerPage,
	}

	ctx := c.Request().Context()

	candidates, err := h.reviewUC.ListCandidates(ctx, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	total, err := h.reviewUC.CountCandidates(ctx, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	page := &CandidatePage{
		Candidates: candidates,
		Total:      total,
		Page:       input.Page,
		PerPage:    input.PerPage,
	}

	return response.Success(c, http.StatusOK, page, "Candidates retrieved successfully")
}

// CountCandidates returns the queue total for a filter without loading rows.
func (h *DedupHandler) CountCandidates(c echo.Context) error {
	var req ListCandidatesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid candidate query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ListCandidatesInput{
		Band: entity.ConfidenceBand(req.Band),
	}

	total, err := h.reviewUC.CountCandidates(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"total": total}, "Candidate count retrieved successfully")
}

// Statistics aggregates the pending queue by confidence band.
func (h *DedupHandler) Statistics(c echo.Context) error {
	stats, err := h.reviewUC.Statistics(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// ExactMatches returns the rule-based exact match candidates.
func (h *DedupHandler) ExactMatches(c echo.Context) error {
	matches, err := h.reviewUC.ExactMatches(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, matches, "Exact matches retrieved successfully")
}

// Compare loads both venues of a candidate pair side by side.
func (h *DedupHandler) Compare(c echo.Context) error {
	venue1ID, err := uuid.Parse(c.Param("venue1_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid venue ID")
	}

	venue2ID, err := uuid.Parse(c.Param("venue2_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid venue ID")
	}

	detail, err := h.reviewUC.GetComparison(c.Request().Context(), venue1ID, venue2ID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "Comparison retrieved successfully")
}

// MergeRequest represents the request body for merging a venue pair
type MergeRequest struct {
	PrimaryID      uuid.UUID `json:"primary_id" validate:"required"`
	SecondaryID    uuid.UUID `json:"secondary_id" validate:"required"`
	FieldOverrides []string  `json:"field_overrides,omitempty"`
	Notes          string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// Merge consolidates the secondary venue into the primary.
func (h *DedupHandler) Merge(c echo.Context) error {
	var req MergeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merge request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.MergeInput{
		PrimaryID:      req.PrimaryID,
		SecondaryID:    req.SecondaryID,
		PerformedBy:    middleware.Subject(c),
		FieldOverrides: req.FieldOverrides,
		Notes:          req.Notes,
	}

	output, err := h.mergeUC.Merge(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Venues merged successfully")
}

// RejectRequest represents the request body for rejecting a candidate.
// Either candidate_id or both venue ids identify the candidate.
type RejectRequest struct {
	CandidateID *uuid.UUID `json:"candidate_id,omitempty"`
	Venue1ID    *uuid.UUID `json:"venue1_id,omitempty"`
	Venue2ID    *uuid.UUID `json:"venue2_id,omitempty"`
}

// Reject marks a pending candidate as not-a-duplicate.
func (h *DedupHandler) Reject(c echo.Context) error {
	var req RejectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reject request")
	}

	input := &usecase.RejectInput{
		CandidateID: req.CandidateID,
		Venue1ID:    req.Venue1ID,
		Venue2ID:    req.Venue2ID,
		ReviewedBy:  middleware.Subject(c),
	}

	if err := h.reviewUC.Reject(c.Request().Context(), input); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Candidate rejected successfully")
}

// BatchMergeRequest represents the request body for a batch merge
type BatchMergeRequest struct {
	Pairs []usecase.MergePair `json:"pairs" validate:"required,min=1,max=100,dive"`
}

// BatchMerge executes several merges in one transaction.
func (h *DedupHandler) BatchMerge(c echo.Context) error {
	var req BatchMergeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid batch merge request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.BatchMergeInput{
		Pairs:       req.Pairs,
		PerformedBy: middleware.Subject(c),
	}

	result, err := h.mergeUC.BatchMerge(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Batch merge completed successfully")
}

// BatchRejectRequest represents the request body for a batch reject
type BatchRejectRequest struct {
	CandidateIDs []uuid.UUID `json:"candidate_ids" validate:"required,min=1,max=100"`
}

// BatchReject rejects several candidates in one transaction.
func (h *DedupHandler) BatchReject(c echo.Context) error {
	var req BatchRejectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid batch reject request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.BatchRejectInput{
		CandidateIDs: req.CandidateIDs,
		ReviewedBy:   middleware.Subject(c),
	}

	result, err := h.reviewUC.BatchReject(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Batch reject completed successfully")
}

// handleAppError maps domain errors to standard error responses.
func (h *DedupHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
