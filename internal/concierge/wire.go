package concierge

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/concierge/controller"
	"github.com/chems34/IA-webgen/internal/concierge/repository"
	"github.com/chems34/IA-webgen/internal/concierge/usecase"
	"github.com/chems34/IA-webgen/internal/infrastructure/hosting"
)

func NewModule(
	db *sql.DB,
	websites usecase.WebsiteFinder,
	checker usecase.AvailabilityChecker,
	links usecase.LinkIssuer,
	mail usecase.MailSender,
	deployer hosting.Deployer,
	history usecase.Recorder,
	publicBaseURL string,
	logger *zap.Logger,
) *controller.ConciergeController {
	orders := repository.NewMySQLOrderRepository(db)
	orchestrator := usecase.NewOrchestrator(
		orders, websites, checker, links, mail, deployer, history, publicBaseURL, logger)
	return controller.NewConciergeController(orchestrator, logger)
}
