package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	adminctrl "github.com/chems34/IA-webgen/internal/admin/controller"
	conciergectrl "github.com/chems34/IA-webgen/internal/concierge/controller"
	historyctrl "github.com/chems34/IA-webgen/internal/history/controller"
	referralctrl "github.com/chems34/IA-webgen/internal/referral/controller"
	websitectrl "github.com/chems34/IA-webgen/internal/website/controller"
)

func NewRouter(
	website *websitectrl.WebsiteController,
	referral *referralctrl.ReferralController,
	concierge *conciergectrl.ConciergeController,
	history *historyctrl.HistoryController,
	admin *adminctrl.AdminController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Session-ID"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Website Generator API is running!"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-website", website.Generate)
		r.Post("/generate-from-template", website.GenerateFromTemplate)
		r.Get("/templates", website.ListTemplates)
		r.Get("/preview/{id}", website.Preview)
		r.Get("/edit/{id}", website.GetForEdit)
		r.Put("/edit/{id}", website.Update)
		r.Get("/download/{id}", website.Download)

		r.Post("/create-payment-session", website.CreatePaymentSession)
		r.Post("/confirm-payment", website.ConfirmPayment)

		r.Post("/create-referral", referral.Create)

		r.Post("/request-concierge-service", concierge.Submit)
		r.Get("/concierge/status/{id}", concierge.Status)
		r.Post("/concierge/mark-paid/{id}", concierge.MarkPaid)
		r.Post("/concierge/simulate-completion/{id}", concierge.SimulateCompletion)

		r.Get("/history", history.List)
		r.Get("/history/stats", history.Stats)
		r.Get("/history/user/{session}", history.UserHistory)
		r.Delete("/history/cleanup", history.Cleanup)

		r.Get("/admin/stats", admin.Stats)
		r.Get("/admin/websites", admin.Websites)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
