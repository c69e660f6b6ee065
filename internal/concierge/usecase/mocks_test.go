package usecase

import (
	"context"
	"time"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/infrastructure/hosting"
	"github.com/chems34/IA-webgen/internal/infrastructure/payment"
	"github.com/chems34/IA-webgen/internal/infrastructure/registrar"
)

type mockOrderRepository struct {
	InsertFunc         func(ctx context.Context, order *domain.ConciergeOrder) error
	FindByIDFunc       func(ctx context.Context, id string) (*domain.ConciergeOrder, error)
	MarkProcessingFunc func(ctx context.Context, id string, paidAt time.Time) error
	MarkCompletedFunc  func(ctx context.Context, id string, liveURL string, completedAt time.Time) error
	MarkErrorFunc      func(ctx context.Context, id string, detail string) error
}

func (m *mockOrderRepository) Insert(ctx context.Context, order *domain.ConciergeOrder) error {
	return m.InsertFunc(ctx, order)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*domain.ConciergeOrder, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderRepository) MarkProcessing(ctx context.Context, id string, paidAt time.Time) error {
	return m.MarkProcessingFunc(ctx, id, paidAt)
}

func (m *mockOrderRepository) MarkCompleted(ctx context.Context, id string, liveURL string, completedAt time.Time) error {
	return m.MarkCompletedFunc(ctx, id, liveURL, completedAt)
}

func (m *mockOrderRepository) MarkError(ctx context.Context, id string, detail string) error {
	return m.MarkErrorFunc(ctx, id, detail)
}

type mockWebsiteFinder struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.Website, error)
}

func (m *mockWebsiteFinder) FindByID(ctx context.Context, id string) (*domain.Website, error) {
	return m.FindByIDFunc(ctx, id)
}

// mockChecker reports availability from a fixed table; unlisted domains are
// available, matching the fail-open behavior of the real client.
type mockChecker struct {
	taken map[string]bool
	calls []string
}

func (m *mockChecker) CheckAvailability(ctx context.Context, domain string) registrar.CheckResult {
	m.calls = append(m.calls, domain)
	if m.taken[domain] {
		return registrar.CheckResult{Available: false, Domain: domain}
	}
	return registrar.CheckResult{Available: true, Domain: domain, PriceHint: registrar.DefaultDomainPrice}
}

type mockLinkIssuer struct {
	CreatePaymentLinkFunc func(ctx context.Context, req payment.LinkRequest) string
}

func (m *mockLinkIssuer) CreatePaymentLink(ctx context.Context, req payment.LinkRequest) string {
	return m.CreatePaymentLinkFunc(ctx, req)
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type mockMailSender struct {
	sent []sentMail
}

func (m *mockMailSender) Send(to string, subject string, htmlBody string) {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
}

type mockDeployer struct {
	DeployFunc func(ctx context.Context, domain string, bundle hosting.SiteBundle) (hosting.DeployResult, error)
}

func (m *mockDeployer) Deploy(ctx context.Context, domain string, bundle hosting.SiteBundle) (hosting.DeployResult, error) {
	return m.DeployFunc(ctx, domain, bundle)
}

type recordedAction struct {
	Action  string
	Details map[string]any
}

type mockRecorder struct {
	actions []recordedAction
}

func (m *mockRecorder) Record(ctx context.Context, action string, userSession *string, details map[string]any) {
	m.actions = append(m.actions, recordedAction{Action: action, Details: details})
}
