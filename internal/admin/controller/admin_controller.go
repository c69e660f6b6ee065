package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/admin/repository"
	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/dto"
)

type StatsRepository interface {
	Aggregate(ctx context.Context) (*repository.Stats, error)
}

type WebsiteLister interface {
	List(ctx context.Context, limit, offset int) ([]domain.Website, error)
}

type AdminController struct {
	stats    StatsRepository
	websites WebsiteLister
	logger   *zap.Logger
}

func NewAdminController(stats StatsRepository, websites WebsiteLister, logger *zap.Logger) *AdminController {
	return &AdminController{
		stats:    stats,
		websites: websites,
		logger:   logger,
	}
}

func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.stats.Aggregate(r.Context())
	if err != nil {
		c.logger.Error("failed to aggregate stats", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	c.writeJSON(w, http.StatusOK, dto.AdminStatsResponse{
		TotalWebsites:   stats.TotalWebsites,
		PaidWebsites:    stats.PaidWebsites,
		TotalRevenue:    stats.TotalRevenue,
		TotalOrders:     stats.TotalOrders,
		CompletedOrders: stats.CompletedOrders,
	})
}

func (c *AdminController) Websites(w http.ResponseWriter, r *http.Request) {
	limit := 100
	offset := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	sites, err := c.websites.List(r.Context(), limit, offset)
	if err != nil {
		c.logger.Error("failed to list websites", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	dtos := make([]dto.AdminWebsiteDTO, len(sites))
	for i, s := range sites {
		dtos[i] = dto.AdminWebsiteDTO{
			ID:           s.ID,
			BusinessName: s.BusinessName,
			SiteType:     s.SiteType,
			Price:        s.Price,
			Paid:         s.Paid,
			CreatedAt:    s.CreatedAt,
		}
	}

	c.writeJSON(w, http.StatusOK, dto.AdminWebsitesResponse{Websites: dtos})
}

func (c *AdminController) writeError(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, map[string]string{"error": "INTERNAL_ERROR", "message": message})
}

func (c *AdminController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
