package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/dto"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
)

type ReferralRepository interface {
	Insert(ctx context.Context, referral *domain.Referral) error
}

type CreateReferralUseCase struct {
	referralRepo  ReferralRepository
	publicBaseURL string
	logger        *zap.Logger
}

func NewCreateReferralUseCase(referralRepo ReferralRepository, publicBaseURL string, logger *zap.Logger) *CreateReferralUseCase {
	return &CreateReferralUseCase{
		referralRepo:  referralRepo,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// CreateReferral mints a fresh single-use code valid for 24 hours and the
// shareable link carrying it.
func (uc *CreateReferralUseCase) CreateReferral(ctx context.Context, req dto.CreateReferralRequest) (*dto.CreateReferralResponse, error) {
	code, err := generateCode()
	if err != nil {
		return nil, apperrors.NewInternalError("generating referral code", err)
	}

	userID := "anonymous"
	if req.UserID != nil && *req.UserID != "" {
		userID = *req.UserID
	}

	referral := &domain.Referral{
		ID:        uuid.New().String(),
		Code:      code,
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(domain.ReferralTTL),
		Used:      false,
	}

	if err := uc.referralRepo.Insert(ctx, referral); err != nil {
		return nil, apperrors.NewInternalError("persisting referral", err)
	}

	uc.logger.Info("referral created",
		zap.String("code", code),
		zap.String("userId", userID))

	return &dto.CreateReferralResponse{
		ReferralCode: code,
		ReferralLink: fmt.Sprintf("%s/?ref=%s", uc.publicBaseURL, code),
		ExpiresAt:    referral.ExpiresAt,
	}, nil
}

func generateCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
