package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/admin"
	"github.com/chems34/IA-webgen/internal/commons"
	"github.com/chems34/IA-webgen/internal/concierge"
	"github.com/chems34/IA-webgen/internal/history"
	"github.com/chems34/IA-webgen/internal/infrastructure/hosting"
	"github.com/chems34/IA-webgen/internal/infrastructure/llm"
	"github.com/chems34/IA-webgen/internal/infrastructure/logger"
	"github.com/chems34/IA-webgen/internal/infrastructure/mailer"
	"github.com/chems34/IA-webgen/internal/infrastructure/mysql"
	"github.com/chems34/IA-webgen/internal/infrastructure/payment"
	"github.com/chems34/IA-webgen/internal/infrastructure/registrar"
	"github.com/chems34/IA-webgen/internal/referral"
	"github.com/chems34/IA-webgen/internal/server"
	"github.com/chems34/IA-webgen/internal/website"
)

func main() {
	// A missing .env is fine in production; config falls back to the
	// process environment.
	_ = godotenv.Load()

	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	if err := mysql.EnsureSchema(db); err != nil {
		zapLogger.Fatal("ensuring schema", zap.Error(err))
	}
	zapLogger.Info("database ready")

	llmClient := llm.NewClient(cfg.LLM, zapLogger)
	registrarClient := registrar.NewClient(cfg.Registrar, zapLogger)
	paypalClient := payment.NewClient(cfg.PayPal, zapLogger)
	mail := mailer.New(cfg.SMTP, zapLogger)
	deployer := hosting.NewStubDeployer(cfg.Hosting.DeployDelay, zapLogger)

	if mail.Simulated() {
		zapLogger.Warn("SMTP credentials missing, email delivery is simulated")
	}

	historyCtrl, recorder := history.NewModule(db, zapLogger)
	referralRepo := referral.Repository(db)
	websiteRepo := website.Repositories(db)

	websiteCtrl := website.NewModule(db, llmClient, paypalClient, referralRepo, recorder, zapLogger)
	referralCtrl := referral.NewModule(db, cfg.PublicURL, recorder, zapLogger)
	conciergeCtrl := concierge.NewModule(
		db, websiteRepo, registrarClient, paypalClient, mail, deployer, recorder,
		cfg.PublicURL, zapLogger)
	adminCtrl := admin.NewModule(db, websiteRepo, zapLogger)

	router := server.NewRouter(websiteCtrl, referralCtrl, conciergeCtrl, historyCtrl, adminCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
