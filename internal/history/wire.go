package history

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/history/controller"
	"github.com/chems34/IA-webgen/internal/history/repository"
	"github.com/chems34/IA-webgen/internal/history/usecase"
)

// NewModule returns the history controller plus the recorder handed to the
// other modules.
func NewModule(db *sql.DB, logger *zap.Logger) (*controller.HistoryController, *usecase.HistoryUseCase) {
	repo := repository.NewMySQLHistoryRepository(db)
	uc := usecase.NewHistoryUseCase(repo, logger)
	return controller.NewHistoryController(uc, logger), uc
}
