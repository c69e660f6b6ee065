package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/dto"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
)

type PaymentSessionRepository interface {
	Insert(ctx context.Context, session *domain.PaymentSession) error
	FindByID(ctx context.Context, id string) (*domain.PaymentSession, error)
	MarkCompleted(ctx context.Context, id string) error
}

// LinkProvider issues the fixed-amount payable URL for a session.
type LinkProvider interface {
	PayMeLink(amount float64) string
}

// PaymentUseCase drives the pay-by-link purchase of a generated website:
// a pending session pointing at a static payment URL, then a confirmation
// that marks the website paid and burns the referral code.
type PaymentUseCase struct {
	websiteRepo  WebsiteRepository
	sessionRepo  PaymentSessionRepository
	referralRepo ReferralRepository
	links        LinkProvider
	logger       *zap.Logger
}

func NewPaymentUseCase(
	websiteRepo WebsiteRepository,
	sessionRepo PaymentSessionRepository,
	referralRepo ReferralRepository,
	links LinkProvider,
	logger *zap.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		websiteRepo:  websiteRepo,
		sessionRepo:  sessionRepo,
		referralRepo: referralRepo,
		links:        links,
		logger:       logger,
	}
}

func (uc *PaymentUseCase) CreateSession(ctx context.Context, req dto.CreatePaymentSessionRequest) (*dto.PaymentSessionResponse, error) {
	site, err := uc.websiteRepo.FindByID(ctx, req.WebsiteID)
	if err != nil {
		return nil, err
	}

	amount := site.Price
	if req.ReferralCode != nil && *req.ReferralCode != "" {
		referral, err := uc.referralRepo.FindRedeemable(ctx, *req.ReferralCode)
		if err == nil && referral.Redeemable(time.Now()) {
			amount = domain.PriceWebsiteReferral
		}
	}

	session := &domain.PaymentSession{
		ID:           uuid.New().String(),
		WebsiteID:    req.WebsiteID,
		Amount:       amount,
		ReferralCode: req.ReferralCode,
		Status:       domain.PaymentStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.sessionRepo.Insert(ctx, session); err != nil {
		return nil, apperrors.NewInternalError("persisting payment session", err)
	}

	return &dto.PaymentSessionResponse{
		PaymentSessionID: session.ID,
		Amount:           amount,
		PaypalURL:        uc.links.PayMeLink(amount),
	}, nil
}

// ConfirmPayment completes a pending session: session -> completed, website
// paid flag -> true, referral code -> used. A replayed confirmation fails
// with Conflict from the session transition before any side effect re-runs.
func (uc *PaymentUseCase) ConfirmPayment(ctx context.Context, sessionID string) error {
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := uc.sessionRepo.MarkCompleted(ctx, sessionID); err != nil {
		return err
	}

	if err := uc.websiteRepo.MarkPaid(ctx, session.WebsiteID); err != nil {
		return apperrors.NewInternalError("marking website paid", err)
	}

	if session.ReferralCode != nil && *session.ReferralCode != "" {
		// Best effort: an already-used or expired code no longer blocks a
		// payment that has actually happened.
		if err := uc.referralRepo.Redeem(ctx, *session.ReferralCode); err != nil {
			if _, ok := apperrors.IsConflictError(err); !ok {
				uc.logger.Warn("referral redeem failed",
					zap.String("code", *session.ReferralCode), zap.Error(err))
			}
		}
	}

	uc.logger.Info("payment confirmed",
		zap.String("sessionId", sessionID),
		zap.String("websiteId", session.WebsiteID),
		zap.Float64("amount", session.Amount))

	return nil
}
