package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/dto"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
	"github.com/chems34/IA-webgen/internal/infrastructure/hosting"
	"github.com/chems34/IA-webgen/internal/infrastructure/mailer"
	"github.com/chems34/IA-webgen/internal/infrastructure/payment"
)

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.ConciergeOrder) error
	FindByID(ctx context.Context, id string) (*domain.ConciergeOrder, error)
	MarkProcessing(ctx context.Context, id string, paidAt time.Time) error
	MarkCompleted(ctx context.Context, id string, liveURL string, completedAt time.Time) error
	MarkError(ctx context.Context, id string, detail string) error
}

type WebsiteFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Website, error)
}

// LinkIssuer is satisfied by the payment client. Issuance never fails; the
// worst case is a static fallback link.
type LinkIssuer interface {
	CreatePaymentLink(ctx context.Context, req payment.LinkRequest) string
}

// MailSender is satisfied by the mailer. Sends are fire-and-forget.
type MailSender interface {
	Send(to string, subject string, htmlBody string)
}

type Recorder interface {
	Record(ctx context.Context, action string, userSession *string, details map[string]any)
}

// Orchestrator drives the concierge order lifecycle: submission with the
// availability check, the payment notification, and the deployment that
// closes the order.
type Orchestrator struct {
	orders        OrderRepository
	websites      WebsiteFinder
	checker       AvailabilityChecker
	suggester     *Suggester
	links         LinkIssuer
	mail          MailSender
	deployer      hosting.Deployer
	history       Recorder
	publicBaseURL string
	logger        *zap.Logger
}

func NewOrchestrator(
	orders OrderRepository,
	websites WebsiteFinder,
	checker AvailabilityChecker,
	links LinkIssuer,
	mail MailSender,
	deployer hosting.Deployer,
	history Recorder,
	publicBaseURL string,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		orders:        orders,
		websites:      websites,
		checker:       checker,
		suggester:     NewSuggester(checker),
		links:         links,
		mail:          mail,
		deployer:      deployer,
		history:       history,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// Submit opens a concierge order. When the preferred domain is taken the
// order lands terminally in domain_unavailable with verified alternatives;
// otherwise a payment link goes out by mail and the order waits in pending.
func (o *Orchestrator) Submit(ctx context.Context, req dto.ConciergeRequest) (*dto.ConciergeResponse, error) {
	site, err := o.websites.FindByID(ctx, req.WebsiteID)
	if err != nil {
		return nil, err
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = domain.UrgencyNormal
	}
	price := domain.ConciergePrice(urgency)

	check := o.checker.CheckAvailability(ctx, req.PreferredDomain)
	if !check.Available {
		alternatives := o.suggester.Suggest(ctx, req.PreferredDomain, site.BusinessName)

		order := &domain.ConciergeOrder{
			ID:           uuid.New().String(),
			WebsiteID:    req.WebsiteID,
			ContactEmail: req.ContactEmail,
			Domain:       req.PreferredDomain,
			Urgency:      urgency,
			Status:       domain.OrderStatusDomainUnavailable,
			Price:        price,
			Alternatives: alternatives,
		}
		if err := o.orders.Insert(ctx, order); err != nil {
			return nil, apperrors.NewInternalError("persisting concierge order", err)
		}

		o.logger.Info("concierge order rejected, domain unavailable",
			zap.String("orderId", order.ID),
			zap.String("domain", req.PreferredDomain),
			zap.Strings("alternatives", alternatives))

		return &dto.ConciergeResponse{
			OrderID:      order.ID,
			Status:       string(order.Status),
			Price:        price,
			Alternatives: alternatives,
			Message:      fmt.Sprintf("Le domaine %s n'est pas disponible", req.PreferredDomain),
		}, nil
	}

	paymentLink := o.links.CreatePaymentLink(ctx, payment.LinkRequest{
		WebsiteID:    req.WebsiteID,
		Domain:       req.PreferredDomain,
		BusinessName: site.BusinessName,
		ContactEmail: req.ContactEmail,
		Amount:       price,
	})

	order := &domain.ConciergeOrder{
		ID:           uuid.New().String(),
		WebsiteID:    req.WebsiteID,
		ContactEmail: req.ContactEmail,
		Domain:       req.PreferredDomain,
		Urgency:      urgency,
		Status:       domain.OrderStatusPending,
		Price:        price,
		PaymentLink:  &paymentLink,
	}
	if err := o.orders.Insert(ctx, order); err != nil {
		return nil, apperrors.NewInternalError("persisting concierge order", err)
	}

	if subject, body, err := mailer.ConfirmationEmail(mailer.ConfirmationData{
		BusinessName: site.BusinessName,
		Domain:       req.PreferredDomain,
		Price:        price,
		PaymentLink:  paymentLink,
	}); err == nil {
		o.mail.Send(req.ContactEmail, subject, body)
	} else {
		o.logger.Error("failed to render confirmation email", zap.Error(err))
	}

	o.history.Record(ctx, domain.ActionConciergeRequest, nil, map[string]any{
		"orderId":   order.ID,
		"websiteId": req.WebsiteID,
		"domain":    req.PreferredDomain,
		"price":     price,
	})

	o.logger.Info("concierge order created",
		zap.String("orderId", order.ID),
		zap.String("domain", req.PreferredDomain),
		zap.Float64("price", price))

	return &dto.ConciergeResponse{
		OrderID:     order.ID,
		Status:      string(order.Status),
		Price:       price,
		PaymentLink: paymentLink,
		Message:     "Demande enregistrée, lien de paiement envoyé par email",
	}, nil
}

func (o *Orchestrator) Status(ctx context.Context, orderID string) (*dto.ConciergeStatusResponse, error) {
	order, err := o.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &dto.ConciergeStatusResponse{
		OrderID:      order.ID,
		WebsiteID:    order.WebsiteID,
		Domain:       order.Domain,
		Urgency:      order.Urgency,
		Status:       string(order.Status),
		Price:        order.Price,
		PaymentLink:  order.PaymentLink,
		Alternatives: order.Alternatives,
		LiveURL:      order.LiveURL,
		CreatedAt:    order.CreatedAt,
		PaidAt:       order.PaidAt,
		CompletedAt:  order.CompletedAt,
	}, nil
}

// MarkPaid handles the operator's payment notification: the order moves to
// processing, the site is deployed, and the delivery mail goes out. A replay
// fails with Conflict before any of it re-runs.
func (o *Orchestrator) MarkPaid(ctx context.Context, orderID string) (*dto.ConciergeTransitionResponse, error) {
	order, err := o.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := o.orders.MarkProcessing(ctx, orderID, time.Now().UTC()); err != nil {
		return nil, err
	}

	o.history.Record(ctx, domain.ActionConciergePaid, nil, map[string]any{
		"orderId":   order.ID,
		"websiteId": order.WebsiteID,
	})

	return o.finalize(ctx, order)
}

// Complete finishes an order that is already processing, for instance after
// an operator resolved whatever interrupted the paid flow. Anything not in
// processing is rejected with Conflict.
func (o *Orchestrator) Complete(ctx context.Context, orderID string) (*dto.ConciergeTransitionResponse, error) {
	order, err := o.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusProcessing {
		return nil, apperrors.NewConflictError(fmt.Sprintf(
			"order %s is %s, cannot move to %s", order.ID, order.Status, domain.OrderStatusCompleted))
	}

	return o.finalize(ctx, order)
}

// finalize deploys the site, closes the order and sends the delivery mail.
// The order must already be in processing.
func (o *Orchestrator) finalize(ctx context.Context, order *domain.ConciergeOrder) (*dto.ConciergeTransitionResponse, error) {
	orderID := order.ID

	site, err := o.websites.FindByID(ctx, order.WebsiteID)
	if err != nil {
		o.failOrder(ctx, orderID, fmt.Sprintf("loading website: %v", err))
		return nil, err
	}

	result, err := o.deployer.Deploy(ctx, order.Domain, hosting.SiteBundle{
		HTML: site.HTMLContent,
		CSS:  site.CSSContent,
		JS:   site.JSContent,
	})
	if err != nil {
		o.failOrder(ctx, orderID, fmt.Sprintf("deploying site: %v", err))
		return nil, apperrors.NewInternalError("deploying site", err)
	}

	if err := o.orders.MarkCompleted(ctx, orderID, result.URL, time.Now().UTC()); err != nil {
		return nil, err
	}

	if subject, body, err := mailer.DeliveryEmail(mailer.DeliveryData{
		BusinessName: site.BusinessName,
		Domain:       order.Domain,
		LiveURL:      result.URL,
		EditURL:      fmt.Sprintf("%s/edit/%s", o.publicBaseURL, order.WebsiteID),
	}); err == nil {
		o.mail.Send(order.ContactEmail, subject, body)
	} else {
		o.logger.Error("failed to render delivery email", zap.Error(err))
	}

	o.history.Record(ctx, domain.ActionConciergeDone, nil, map[string]any{
		"orderId":   order.ID,
		"websiteId": order.WebsiteID,
		"liveUrl":   result.URL,
	})

	o.logger.Info("concierge order completed",
		zap.String("orderId", orderID),
		zap.String("liveUrl", result.URL))

	return &dto.ConciergeTransitionResponse{
		OrderID: orderID,
		Status:  string(domain.OrderStatusCompleted),
		LiveURL: &result.URL,
		Message: "Site déployé et email de livraison envoyé",
	}, nil
}

func (o *Orchestrator) failOrder(ctx context.Context, orderID string, detail string) {
	if err := o.orders.MarkError(ctx, orderID, detail); err != nil {
		o.logger.Error("failed to record order error",
			zap.String("orderId", orderID), zap.Error(err))
	}
}
