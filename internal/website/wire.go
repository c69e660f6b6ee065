package website

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/website/controller"
	"github.com/chems34/IA-webgen/internal/website/repository"
	"github.com/chems34/IA-webgen/internal/website/usecase"
)

func NewModule(
	db *sql.DB,
	generator usecase.SiteGenerator,
	links usecase.LinkProvider,
	referralRepo usecase.ReferralRepository,
	history controller.HistoryRecorder,
	logger *zap.Logger,
) *controller.WebsiteController {
	websiteRepo := repository.NewMySQLWebsiteRepository(db)
	sessionRepo := repository.NewMySQLPaymentSessionRepository(db)

	generateUC := usecase.NewGenerateUseCase(websiteRepo, referralRepo, generator, logger)
	manageUC := usecase.NewManageUseCase(websiteRepo, logger)
	paymentUC := usecase.NewPaymentUseCase(websiteRepo, sessionRepo, referralRepo, links, logger)

	return controller.NewWebsiteController(generateUC, manageUC, paymentUC, history, logger)
}

// Repositories exposes the website repository for modules that need to read
// or flag websites outside the HTTP surface.
func Repositories(db *sql.DB) *repository.MySQLWebsiteRepository {
	return repository.NewMySQLWebsiteRepository(db)
}
