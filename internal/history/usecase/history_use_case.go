package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/dto"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
)

type HistoryRepository interface {
	Insert(ctx context.Context, entry *domain.HistoryEntry) error
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	ListByUserSession(ctx context.Context, session string) ([]domain.HistoryEntry, error)
	CountTotal(ctx context.Context) (int, error)
	CountByAction(ctx context.Context) (map[string]int, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// HistoryUseCase is both the append-side recorder used by every other
// module and the query side behind the history endpoints.
type HistoryUseCase struct {
	repo   HistoryRepository
	logger *zap.Logger
}

func NewHistoryUseCase(repo HistoryRepository, logger *zap.Logger) *HistoryUseCase {
	return &HistoryUseCase{repo: repo, logger: logger}
}

// Record appends an audit entry. It is best-effort: a storage failure is
// logged and never surfaces to the operation being recorded.
func (uc *HistoryUseCase) Record(ctx context.Context, action string, userSession *string, details map[string]any) {
	session := "anonymous"
	if userSession != nil && *userSession != "" {
		session = *userSession
	}

	entry := &domain.HistoryEntry{
		ID:          uuid.New().String(),
		Action:      action,
		UserSession: session,
		Details:     details,
	}
	if id, ok := details["websiteId"].(string); ok {
		entry.WebsiteID = &id
	}
	if id, ok := details["orderId"].(string); ok {
		entry.OrderID = &id
	}

	if err := uc.repo.Insert(ctx, entry); err != nil {
		uc.logger.Warn("failed to record history entry",
			zap.String("action", action), zap.Error(err))
	}
}

func (uc *HistoryUseCase) List(ctx context.Context, limit int) (*dto.HistoryResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	entries, err := uc.repo.List(ctx, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("listing history", err)
	}

	return &dto.HistoryResponse{
		History: toDTOs(entries),
		Total:   len(entries),
	}, nil
}

func (uc *HistoryUseCase) UserHistory(ctx context.Context, session string) (*dto.UserHistoryResponse, error) {
	entries, err := uc.repo.ListByUserSession(ctx, session)
	if err != nil {
		return nil, apperrors.NewInternalError("listing user history", err)
	}

	return &dto.UserHistoryResponse{
		UserSession: session,
		History:     toDTOs(entries),
	}, nil
}

func (uc *HistoryUseCase) Stats(ctx context.Context) (*dto.HistoryStatsResponse, error) {
	total, err := uc.repo.CountTotal(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("counting history", err)
	}

	counts, err := uc.repo.CountByAction(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("counting history by action", err)
	}

	return &dto.HistoryStatsResponse{
		TotalActivities: total,
		ActionCounts:    counts,
	}, nil
}

// Cleanup removes entries older than the given number of days.
func (uc *HistoryUseCase) Cleanup(ctx context.Context, days int) (*dto.HistoryCleanupResponse, error) {
	if days <= 0 {
		return nil, apperrors.NewValidationError("days_old must be a positive integer", apperrors.ValidationDetail{
			Field:   "days_old",
			Message: "days_old must be a positive integer",
		})
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	deleted, err := uc.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return nil, apperrors.NewInternalError("cleaning up history", err)
	}

	uc.logger.Info("history cleanup",
		zap.Int("days", days), zap.Int("deleted", deleted))

	return &dto.HistoryCleanupResponse{DeletedCount: deleted}, nil
}

func toDTOs(entries []domain.HistoryEntry) []dto.HistoryEntryDTO {
	dtos := make([]dto.HistoryEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = dto.HistoryEntryDTO{
			ID:          e.ID,
			Action:      e.Action,
			WebsiteID:   e.WebsiteID,
			OrderID:     e.OrderID,
			UserSession: e.UserSession,
			Details:     e.Details,
			CreatedAt:   e.CreatedAt,
		}
	}
	return dtos
}
