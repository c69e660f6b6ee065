package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/dto"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
)

type HistoryUseCase interface {
	List(ctx context.Context, limit int) (*dto.HistoryResponse, error)
	UserHistory(ctx context.Context, session string) (*dto.UserHistoryResponse, error)
	Stats(ctx context.Context) (*dto.HistoryStatsResponse, error)
	Cleanup(ctx context.Context, days int) (*dto.HistoryCleanupResponse, error)
}

type HistoryController struct {
	useCase HistoryUseCase
	logger  *zap.Logger
}

func NewHistoryController(useCase HistoryUseCase, logger *zap.Logger) *HistoryController {
	return &HistoryController{useCase: useCase, logger: logger}
}

func (c *HistoryController) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	resp, err := c.useCase.List(r.Context(), limit)
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *HistoryController) UserHistory(w http.ResponseWriter, r *http.Request) {
	session := chi.URLParam(r, "session")

	resp, err := c.useCase.UserHistory(r.Context(), session)
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *HistoryController) Stats(w http.ResponseWriter, r *http.Request) {
	resp, err := c.useCase.Stats(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *HistoryController) Cleanup(w http.ResponseWriter, r *http.Request) {
	days := 30
	if raw := r.URL.Query().Get("days_old"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "days_old must be an integer")
			return
		}
		days = parsed
	}

	resp, err := c.useCase.Cleanup(r.Context(), days)
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *HistoryController) handleError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message)
		return
	}

	c.logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *HistoryController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, map[string]string{"error": code, "message": message})
}

func (c *HistoryController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
