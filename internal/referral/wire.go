package referral

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/referral/controller"
	"github.com/chems34/IA-webgen/internal/referral/repository"
	"github.com/chems34/IA-webgen/internal/referral/usecase"
)

func NewModule(
	db *sql.DB,
	publicBaseURL string,
	history controller.HistoryRecorder,
	logger *zap.Logger,
) *controller.ReferralController {
	repo := repository.NewMySQLReferralRepository(db)
	createUC := usecase.NewCreateReferralUseCase(repo, publicBaseURL, logger)
	return controller.NewReferralController(createUC, history, logger)
}

// Repository exposes the referral store to the website module, which reads
// and burns codes during pricing and payment confirmation.
func Repository(db *sql.DB) *repository.MySQLReferralRepository {
	return repository.NewMySQLReferralRepository(db)
}
