package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/dto"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
)

type GenerateUseCase interface {
	GenerateWebsite(ctx context.Context, req dto.GenerateWebsiteRequest) (*dto.WebsiteResponse, error)
	GenerateFromTemplate(ctx context.Context, req dto.GenerateFromTemplateRequest) (*dto.WebsiteResponse, error)
	ListTemplates() *dto.TemplatesResponse
}

type ManageUseCase interface {
	Preview(ctx context.Context, id string) (*dto.PreviewResponse, error)
	GetForEdit(ctx context.Context, id string) (*dto.EditResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateWebsiteRequest) (*dto.EditResponse, error)
	Download(ctx context.Context, id string) (archive []byte, filename string, err error)
}

type PaymentUseCase interface {
	CreateSession(ctx context.Context, req dto.CreatePaymentSessionRequest) (*dto.PaymentSessionResponse, error)
	ConfirmPayment(ctx context.Context, sessionID string) error
}

// HistoryRecorder appends audit entries best-effort. Implementations never
// fail the request they are recording.
type HistoryRecorder interface {
	Record(ctx context.Context, action string, userSession *string, details map[string]any)
}

type WebsiteController struct {
	generate GenerateUseCase
	manage   ManageUseCase
	payment  PaymentUseCase
	history  HistoryRecorder
	logger   *zap.Logger
}

func NewWebsiteController(
	generate GenerateUseCase,
	manage ManageUseCase,
	payment PaymentUseCase,
	history HistoryRecorder,
	logger *zap.Logger,
) *WebsiteController {
	return &WebsiteController{
		generate: generate,
		manage:   manage,
		payment:  payment,
		history:  history,
		logger:   logger,
	}
}

func (c *WebsiteController) Generate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.GenerateWebsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	var details []apperrors.ValidationDetail
	if req.BusinessName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "businessName",
			Message: "businessName is required",
		})
	}
	if req.Description == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "description",
			Message: "description is required",
		})
	}
	if !domain.IsValidSiteType(req.SiteType) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "siteType",
			Message: "siteType must be one of vitrine, ecommerce, blog",
		})
	}
	if len(details) > 0 {
		c.writeValidationError(w, "validation failed", details...)
		return
	}

	resp, err := c.generate.GenerateWebsite(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.history.Record(r.Context(), domain.ActionWebsiteGenerated, userSession(r), map[string]any{
		"websiteId": resp.ID,
		"siteType":  req.SiteType,
		"price":     resp.Price,
	})

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *WebsiteController) GenerateFromTemplate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.GenerateFromTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	var details []apperrors.ValidationDetail
	if req.TemplateKey == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "templateKey",
			Message: "templateKey is required",
		})
	}
	if req.BusinessName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "businessName",
			Message: "businessName is required",
		})
	}
	if len(details) > 0 {
		c.writeValidationError(w, "validation failed", details...)
		return
	}

	resp, err := c.generate.GenerateFromTemplate(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.history.Record(r.Context(), domain.ActionWebsiteGenerated, userSession(r), map[string]any{
		"websiteId":   resp.ID,
		"templateKey": req.TemplateKey,
		"price":       resp.Price,
	})

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *WebsiteController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, c.generate.ListTemplates())
}

func (c *WebsiteController) Preview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := c.manage.Preview(r.Context(), id)
	if err != nil {
		c.handleUseCaseError(w, err, c.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(resp.HTML)); err != nil {
		c.logger.Error("failed to write preview", zap.Error(err))
	}
}

func (c *WebsiteController) GetForEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := c.manage.GetForEdit(r.Context(), id)
	if err != nil {
		c.handleUseCaseError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *WebsiteController) Update(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id := chi.URLParam(r, "id")

	var req dto.UpdateWebsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.manage.Update(r.Context(), id, req)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.history.Record(r.Context(), domain.ActionWebsiteEdited, userSession(r), map[string]any{
		"websiteId": id,
	})

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *WebsiteController) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	archive, filename, err := c.manage.Download(r.Context(), id)
	if err != nil {
		c.handleUseCaseError(w, err, c.logger)
		return
	}

	c.history.Record(r.Context(), domain.ActionWebsiteDownloaded, userSession(r), map[string]any{
		"websiteId": id,
	})

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(archive); err != nil {
		c.logger.Error("failed to write archive", zap.Error(err))
	}
}

func (c *WebsiteController) CreatePaymentSession(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreatePaymentSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if req.WebsiteID == "" {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "websiteId",
			Message: "websiteId is required",
		})
		return
	}

	resp, err := c.payment.CreateSession(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.history.Record(r.Context(), domain.ActionPaymentCreated, userSession(r), map[string]any{
		"paymentSessionId": resp.PaymentSessionID,
		"websiteId":        req.WebsiteID,
		"amount":           resp.Amount,
	})

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *WebsiteController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ConfirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if req.PaymentSessionID == "" {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "paymentSessionId",
			Message: "paymentSessionId is required",
		})
		return
	}

	if err := c.payment.ConfirmPayment(r.Context(), req.PaymentSessionID); err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.history.Record(r.Context(), domain.ActionPaymentConfirmed, userSession(r), map[string]any{
		"paymentSessionId": req.PaymentSessionID,
	})

	c.writeJSON(w, http.StatusOK, dto.ConfirmPaymentResponse{Message: "payment confirmed"})
}

func userSession(r *http.Request) *string {
	if s := r.Header.Get("X-Session-ID"); s != "" {
		return &s
	}
	return nil
}

func (c *WebsiteController) handleUseCaseError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsForbiddenError(err); ok {
		c.writeErrorResponse(w, http.StatusForbidden, "FORBIDDEN", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeErrorResponse(w, http.StatusConflict, "CONFLICT", err.Error())
		return
	}

	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *WebsiteController) writeErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	c.writeJSON(w, status, errorResponse{Error: code, Message: message})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *WebsiteController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *WebsiteController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
