package admin

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/admin/controller"
	"github.com/chems34/IA-webgen/internal/admin/repository"
)

func NewModule(db *sql.DB, websites controller.WebsiteLister, logger *zap.Logger) *controller.AdminController {
	stats := repository.NewMySQLStatsRepository(db)
	return controller.NewAdminController(stats, websites, logger)
}
