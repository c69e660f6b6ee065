package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/dto"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
)

type CreateReferralUseCase interface {
	CreateReferral(ctx context.Context, req dto.CreateReferralRequest) (*dto.CreateReferralResponse, error)
}

type HistoryRecorder interface {
	Record(ctx context.Context, action string, userSession *string, details map[string]any)
}

type ReferralController struct {
	useCase CreateReferralUseCase
	history HistoryRecorder
	logger  *zap.Logger
}

func NewReferralController(useCase CreateReferralUseCase, history HistoryRecorder, logger *zap.Logger) *ReferralController {
	return &ReferralController{
		useCase: useCase,
		history: history,
		logger:  logger,
	}
}

func (c *ReferralController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	// Body is optional: an anonymous visitor can mint a code too.
	var req dto.CreateReferralRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("invalid JSON body", zap.Error(err))
			c.writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "VALIDATION_ERROR",
				"message": "request body must be valid JSON",
			})
			return
		}
	}

	resp, err := c.useCase.CreateReferral(r.Context(), req)
	if err != nil {
		if _, ok := apperrors.IsValidationError(err); ok {
			c.writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "VALIDATION_ERROR",
				"message": err.Error(),
			})
			return
		}
		logger.Error("unexpected error", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	var session *string
	if s := r.Header.Get("X-Session-ID"); s != "" {
		session = &s
	}
	c.history.Record(r.Context(), domain.ActionReferralCreated, session, map[string]any{
		"referralCode": resp.ReferralCode,
	})

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *ReferralController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
