package usecase

import (
	"context"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/infrastructure/llm"
)

// Mock implementations shared by the usecase tests.

type mockWebsiteRepository struct {
	InsertFunc        func(ctx context.Context, site *domain.Website) error
	FindByIDFunc      func(ctx context.Context, id string) (*domain.Website, error)
	UpdateContentFunc func(ctx context.Context, id string, html, css, js string) error
	MarkPaidFunc      func(ctx context.Context, id string) error
}

func (m *mockWebsiteRepository) Insert(ctx context.Context, site *domain.Website) error {
	return m.InsertFunc(ctx, site)
}

func (m *mockWebsiteRepository) FindByID(ctx context.Context, id string) (*domain.Website, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockWebsiteRepository) UpdateContent(ctx context.Context, id string, html, css, js string) error {
	return m.UpdateContentFunc(ctx, id, html, css, js)
}

func (m *mockWebsiteRepository) MarkPaid(ctx context.Context, id string) error {
	return m.MarkPaidFunc(ctx, id)
}

type mockReferralRepository struct {
	FindRedeemableFunc func(ctx context.Context, code string) (*domain.Referral, error)
	RedeemFunc         func(ctx context.Context, code string) error
}

func (m *mockReferralRepository) FindRedeemable(ctx context.Context, code string) (*domain.Referral, error) {
	return m.FindRedeemableFunc(ctx, code)
}

func (m *mockReferralRepository) Redeem(ctx context.Context, code string) error {
	return m.RedeemFunc(ctx, code)
}

type mockSiteGenerator struct {
	GenerateSiteFunc func(ctx context.Context, req llm.GenerationRequest) (*llm.GeneratedSite, error)
}

func (m *mockSiteGenerator) GenerateSite(ctx context.Context, req llm.GenerationRequest) (*llm.GeneratedSite, error) {
	return m.GenerateSiteFunc(ctx, req)
}

type mockPaymentSessionRepository struct {
	InsertFunc        func(ctx context.Context, session *domain.PaymentSession) error
	FindByIDFunc      func(ctx context.Context, id string) (*domain.PaymentSession, error)
	MarkCompletedFunc func(ctx context.Context, id string) error
}

func (m *mockPaymentSessionRepository) Insert(ctx context.Context, session *domain.PaymentSession) error {
	return m.InsertFunc(ctx, session)
}

func (m *mockPaymentSessionRepository) FindByID(ctx context.Context, id string) (*domain.PaymentSession, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockPaymentSessionRepository) MarkCompleted(ctx context.Context, id string) error {
	return m.MarkCompletedFunc(ctx, id)
}

type mockLinkProvider struct{}

func (mockLinkProvider) PayMeLink(amount float64) string {
	return "https://paypal.me/aiwebgen/test"
}
