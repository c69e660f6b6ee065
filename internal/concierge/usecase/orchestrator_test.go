package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/dto"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
	"github.com/chems34/IA-webgen/internal/infrastructure/hosting"
	"github.com/chems34/IA-webgen/internal/infrastructure/payment"
)

func testWebsiteFinder() *mockWebsiteFinder {
	return &mockWebsiteFinder{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Website, error) {
			if id != "site-1" {
				return nil, apperrors.NewNotFoundError("website not found")
			}
			return &domain.Website{
				ID:           "site-1",
				BusinessName: "Ma Boutique",
				HTMLContent:  "<h1>Ma Boutique</h1>",
				CSSContent:   "body{}",
				JSContent:    "",
			}, nil
		},
	}
}

func staticLinkIssuer(link string) *mockLinkIssuer {
	return &mockLinkIssuer{
		CreatePaymentLinkFunc: func(ctx context.Context, req payment.LinkRequest) string {
			return link
		},
	}
}

func newTestOrchestrator(
	orders *mockOrderRepository,
	checker *mockChecker,
	links *mockLinkIssuer,
	mail *mockMailSender,
	deployer *mockDeployer,
	history *mockRecorder,
) *Orchestrator {
	return NewOrchestrator(
		orders, testWebsiteFinder(), checker, links, mail, deployer, history,
		"https://ia-webgen.com", zap.NewNop())
}

func TestSubmit_AvailableDomain(t *testing.T) {
	var saved *domain.ConciergeOrder
	orders := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order *domain.ConciergeOrder) error {
			saved = order
			return nil
		},
	}
	mail := &mockMailSender{}
	history := &mockRecorder{}

	o := newTestOrchestrator(orders, &mockChecker{}, staticLinkIssuer("https://pay.example/abc"), mail, &mockDeployer{}, history)

	resp, err := o.Submit(context.Background(), dto.ConciergeRequest{
		WebsiteID:       "site-1",
		ContactEmail:    "client@example.com",
		PreferredDomain: "maboutique.com",
		Urgency:         domain.UrgencyNormal,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.OrderStatusPending), resp.Status)
	assert.Equal(t, 49.0, resp.Price)
	assert.Equal(t, "https://pay.example/abc", resp.PaymentLink)

	require.NotNil(t, saved)
	assert.Equal(t, domain.OrderStatusPending, saved.Status)
	require.NotNil(t, saved.PaymentLink)
	assert.Equal(t, "https://pay.example/abc", *saved.PaymentLink)

	// Confirmation mail carries the payment link.
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "client@example.com", mail.sent[0].To)
	assert.Contains(t, mail.sent[0].Body, "https://pay.example/abc")

	require.Len(t, history.actions, 1)
	assert.Equal(t, domain.ActionConciergeRequest, history.actions[0].Action)
}

func TestSubmit_UrgentPrice(t *testing.T) {
	orders := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order *domain.ConciergeOrder) error { return nil },
	}

	o := newTestOrchestrator(orders, &mockChecker{}, staticLinkIssuer("https://pay.example/abc"), &mockMailSender{}, &mockDeployer{}, &mockRecorder{})

	resp, err := o.Submit(context.Background(), dto.ConciergeRequest{
		WebsiteID:       "site-1",
		ContactEmail:    "client@example.com",
		PreferredDomain: "maboutique.com",
		Urgency:         domain.UrgencyUrgent,
	})
	require.NoError(t, err)
	assert.Equal(t, 79.0, resp.Price)
}

func TestSubmit_DomainUnavailable(t *testing.T) {
	var saved *domain.ConciergeOrder
	orders := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order *domain.ConciergeOrder) error {
			saved = order
			return nil
		},
	}
	checker := &mockChecker{taken: map[string]bool{
		"maboutique.com": true,
		"maboutique.fr":  true,
	}}
	mail := &mockMailSender{}

	o := newTestOrchestrator(orders, checker, staticLinkIssuer(""), mail, &mockDeployer{}, &mockRecorder{})

	resp, err := o.Submit(context.Background(), dto.ConciergeRequest{
		WebsiteID:       "site-1",
		ContactEmail:    "client@example.com",
		PreferredDomain: "maboutique.com",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.OrderStatusDomainUnavailable), resp.Status)
	assert.NotEmpty(t, resp.Alternatives)
	assert.NotContains(t, resp.Alternatives, "maboutique.com")
	assert.NotContains(t, resp.Alternatives, "maboutique.fr")
	assert.Empty(t, resp.PaymentLink)

	require.NotNil(t, saved)
	assert.Equal(t, domain.OrderStatusDomainUnavailable, saved.Status)
	assert.Nil(t, saved.PaymentLink)

	// No confirmation mail when the order cannot proceed.
	assert.Empty(t, mail.sent)
}

func TestSubmit_UnknownWebsite(t *testing.T) {
	o := newTestOrchestrator(&mockOrderRepository{}, &mockChecker{}, staticLinkIssuer(""), &mockMailSender{}, &mockDeployer{}, &mockRecorder{})

	_, err := o.Submit(context.Background(), dto.ConciergeRequest{
		WebsiteID:       "missing",
		ContactEmail:    "client@example.com",
		PreferredDomain: "maboutique.com",
	})
	require.Error(t, err)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestMarkPaid_DeploysAndCompletes(t *testing.T) {
	link := "https://pay.example/abc"
	order := &domain.ConciergeOrder{
		ID:           "order-1",
		WebsiteID:    "site-1",
		ContactEmail: "client@example.com",
		Domain:       "maboutique.com",
		Urgency:      domain.UrgencyNormal,
		Status:       domain.OrderStatusPending,
		Price:        49.0,
		PaymentLink:  &link,
	}

	var completedURL string
	orders := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.ConciergeOrder, error) {
			return order, nil
		},
		MarkProcessingFunc: func(ctx context.Context, id string, paidAt time.Time) error {
			return nil
		},
		MarkCompletedFunc: func(ctx context.Context, id string, liveURL string, completedAt time.Time) error {
			completedURL = liveURL
			return nil
		},
	}
	deployer := &mockDeployer{
		DeployFunc: func(ctx context.Context, domain string, bundle hosting.SiteBundle) (hosting.DeployResult, error) {
			return hosting.DeployResult{Success: true, URL: "https://" + domain, SSLEnabled: true}, nil
		},
	}
	mail := &mockMailSender{}
	history := &mockRecorder{}

	o := newTestOrchestrator(orders, &mockChecker{}, staticLinkIssuer(""), mail, deployer, history)

	resp, err := o.MarkPaid(context.Background(), "order-1")
	require.NoError(t, err)

	assert.Equal(t, string(domain.OrderStatusCompleted), resp.Status)
	require.NotNil(t, resp.LiveURL)
	assert.Equal(t, "https://maboutique.com", *resp.LiveURL)
	assert.Equal(t, "https://maboutique.com", completedURL)

	// Delivery mail links the live site and the edit page.
	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0].Body, "https://maboutique.com")
	assert.Contains(t, mail.sent[0].Body, "https://ia-webgen.com/edit/site-1")

	require.Len(t, history.actions, 2)
	assert.Equal(t, domain.ActionConciergePaid, history.actions[0].Action)
	assert.Equal(t, domain.ActionConciergeDone, history.actions[1].Action)
}

func TestMarkPaid_ReplayConflict(t *testing.T) {
	order := &domain.ConciergeOrder{
		ID:        "order-1",
		WebsiteID: "site-1",
		Status:    domain.OrderStatusCompleted,
	}

	deployCalls := 0
	orders := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.ConciergeOrder, error) {
			return order, nil
		},
		MarkProcessingFunc: func(ctx context.Context, id string, paidAt time.Time) error {
			return apperrors.NewConflictError("order already completed")
		},
	}
	deployer := &mockDeployer{
		DeployFunc: func(ctx context.Context, domain string, bundle hosting.SiteBundle) (hosting.DeployResult, error) {
			deployCalls++
			return hosting.DeployResult{}, nil
		},
	}

	o := newTestOrchestrator(orders, &mockChecker{}, staticLinkIssuer(""), &mockMailSender{}, deployer, &mockRecorder{})

	_, err := o.MarkPaid(context.Background(), "order-1")
	require.Error(t, err)

	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, deployCalls)
}

func TestMarkPaid_DeployFailureMarksError(t *testing.T) {
	order := &domain.ConciergeOrder{
		ID:           "order-1",
		WebsiteID:    "site-1",
		ContactEmail: "client@example.com",
		Domain:       "maboutique.com",
		Status:       domain.OrderStatusPending,
	}

	var errorDetail string
	orders := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.ConciergeOrder, error) {
			return order, nil
		},
		MarkProcessingFunc: func(ctx context.Context, id string, paidAt time.Time) error {
			return nil
		},
		MarkErrorFunc: func(ctx context.Context, id string, detail string) error {
			errorDetail = detail
			return nil
		},
	}
	deployer := &mockDeployer{
		DeployFunc: func(ctx context.Context, domain string, bundle hosting.SiteBundle) (hosting.DeployResult, error) {
			return hosting.DeployResult{}, context.DeadlineExceeded
		},
	}
	mail := &mockMailSender{}

	o := newTestOrchestrator(orders, &mockChecker{}, staticLinkIssuer(""), mail, deployer, &mockRecorder{})

	_, err := o.MarkPaid(context.Background(), "order-1")
	require.Error(t, err)
	assert.Contains(t, errorDetail, "deploying site")
	assert.Empty(t, mail.sent)
}

func TestComplete_ProcessingOrder(t *testing.T) {
	order := &domain.ConciergeOrder{
		ID:           "order-1",
		WebsiteID:    "site-1",
		ContactEmail: "client@example.com",
		Domain:       "maboutique.com",
		Status:       domain.OrderStatusProcessing,
		Price:        49.0,
	}

	orders := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.ConciergeOrder, error) {
			return order, nil
		},
		MarkCompletedFunc: func(ctx context.Context, id string, liveURL string, completedAt time.Time) error {
			return nil
		},
	}
	deployer := &mockDeployer{
		DeployFunc: func(ctx context.Context, domain string, bundle hosting.SiteBundle) (hosting.DeployResult, error) {
			return hosting.DeployResult{Success: true, URL: "https://" + domain}, nil
		},
	}
	mail := &mockMailSender{}
	history := &mockRecorder{}

	o := newTestOrchestrator(orders, &mockChecker{}, staticLinkIssuer(""), mail, deployer, history)

	resp, err := o.Complete(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.OrderStatusCompleted), resp.Status)
	require.Len(t, mail.sent, 1)
	require.Len(t, history.actions, 1)
	assert.Equal(t, domain.ActionConciergeDone, history.actions[0].Action)
}

func TestComplete_RejectsNonProcessingOrder(t *testing.T) {
	order := &domain.ConciergeOrder{
		ID:        "order-1",
		WebsiteID: "site-1",
		Status:    domain.OrderStatusPending,
	}

	deployCalls := 0
	orders := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.ConciergeOrder, error) {
			return order, nil
		},
	}
	deployer := &mockDeployer{
		DeployFunc: func(ctx context.Context, domain string, bundle hosting.SiteBundle) (hosting.DeployResult, error) {
			deployCalls++
			return hosting.DeployResult{}, nil
		},
	}

	o := newTestOrchestrator(orders, &mockChecker{}, staticLinkIssuer(""), &mockMailSender{}, deployer, &mockRecorder{})

	_, err := o.Complete(context.Background(), "order-1")
	require.Error(t, err)

	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, deployCalls)
}

func TestStatus(t *testing.T) {
	now := time.Now().UTC()
	order := &domain.ConciergeOrder{
		ID:           "order-1",
		WebsiteID:    "site-1",
		Domain:       "maboutique.com",
		Urgency:      domain.UrgencyNormal,
		Status:       domain.OrderStatusPending,
		Price:        49.0,
		Alternatives: []string{"maboutique.fr"},
		CreatedAt:    now,
	}
	orders := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.ConciergeOrder, error) {
			if id != "order-1" {
				return nil, apperrors.NewNotFoundError("concierge order not found")
			}
			return order, nil
		},
	}

	o := newTestOrchestrator(orders, &mockChecker{}, staticLinkIssuer(""), &mockMailSender{}, &mockDeployer{}, &mockRecorder{})

	resp, err := o.Status(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", resp.OrderID)
	assert.Equal(t, string(domain.OrderStatusPending), resp.Status)
	assert.Equal(t, []string{"maboutique.fr"}, resp.Alternatives)

	_, err = o.Status(context.Background(), "missing")
	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
