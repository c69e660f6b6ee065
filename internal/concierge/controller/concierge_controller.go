package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/dto"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
)

type ConciergeUseCase interface {
	Submit(ctx context.Context, req dto.ConciergeRequest) (*dto.ConciergeResponse, error)
	Status(ctx context.Context, orderID string) (*dto.ConciergeStatusResponse, error)
	MarkPaid(ctx context.Context, orderID string) (*dto.ConciergeTransitionResponse, error)
	Complete(ctx context.Context, orderID string) (*dto.ConciergeTransitionResponse, error)
}

type ConciergeController struct {
	useCase ConciergeUseCase
	logger  *zap.Logger
}

func NewConciergeController(useCase ConciergeUseCase, logger *zap.Logger) *ConciergeController {
	return &ConciergeController{useCase: useCase, logger: logger}
}

func (c *ConciergeController) Submit(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ConciergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := c.validateSubmit(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	resp, err := c.useCase.Submit(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *ConciergeController) Status(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := c.useCase.Status(r.Context(), id)
	if err != nil {
		c.handleUseCaseError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *ConciergeController) MarkPaid(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id := chi.URLParam(r, "id")

	resp, err := c.useCase.MarkPaid(r.Context(), id)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

// SimulateCompletion re-runs delivery for an order stuck in processing.
func (c *ConciergeController) SimulateCompletion(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id := chi.URLParam(r, "id")

	resp, err := c.useCase.Complete(r.Context(), id)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *ConciergeController) validateSubmit(req dto.ConciergeRequest) error {
	var details []apperrors.ValidationDetail

	if req.WebsiteID == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "websiteId",
			Message: "websiteId is required",
		})
	}

	if req.ContactEmail == "" || !strings.Contains(req.ContactEmail, "@") {
		details = append(details, apperrors.ValidationDetail{
			Field:   "contactEmail",
			Message: "contactEmail must be a valid email address",
		})
	}

	if req.PreferredDomain == "" || !strings.Contains(req.PreferredDomain, ".") {
		details = append(details, apperrors.ValidationDetail{
			Field:   "preferredDomain",
			Message: "preferredDomain must be a fully qualified domain name",
		})
	}

	if req.Urgency != "" && req.Urgency != domain.UrgencyNormal && req.Urgency != domain.UrgencyUrgent {
		details = append(details, apperrors.ValidationDetail{
			Field:   "urgency",
			Message: "urgency must be normal or urgent",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func (c *ConciergeController) handleUseCaseError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeErrorResponse(w, http.StatusConflict, "CONFLICT", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *ConciergeController) writeErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	c.writeJSON(w, status, errorResponse{Error: code, Message: message})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *ConciergeController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *ConciergeController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
