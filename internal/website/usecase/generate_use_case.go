package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/dto"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
	"github.com/chems34/IA-webgen/internal/infrastructure/llm"
)

type WebsiteRepository interface {
	Insert(ctx context.Context, site *domain.Website) error
	FindByID(ctx context.Context, id string) (*domain.Website, error)
	UpdateContent(ctx context.Context, id string, html, css, js string) error
	MarkPaid(ctx context.Context, id string) error
}

type ReferralRepository interface {
	FindRedeemable(ctx context.Context, code string) (*domain.Referral, error)
	Redeem(ctx context.Context, code string) error
}

type SiteGenerator interface {
	GenerateSite(ctx context.Context, req llm.GenerationRequest) (*llm.GeneratedSite, error)
}

type GenerateUseCase struct {
	websiteRepo  WebsiteRepository
	referralRepo ReferralRepository
	generator    SiteGenerator
	logger       *zap.Logger
}

func NewGenerateUseCase(
	websiteRepo WebsiteRepository,
	referralRepo ReferralRepository,
	generator SiteGenerator,
	logger *zap.Logger,
) *GenerateUseCase {
	return &GenerateUseCase{
		websiteRepo:  websiteRepo,
		referralRepo: referralRepo,
		generator:    generator,
		logger:       logger,
	}
}

const defaultPrimaryColor = "#3B82F6"

// GenerateWebsite produces a site via the LLM, degrading to the static
// template for the requested site type when generation fails.
func (uc *GenerateUseCase) GenerateWebsite(ctx context.Context, req dto.GenerateWebsiteRequest) (*dto.WebsiteResponse, error) {
	color := req.PrimaryColor
	if color == "" {
		color = defaultPrimaryColor
	}

	price := uc.resolvePrice(ctx, req.ReferralCode)

	content, err := uc.generator.GenerateSite(ctx, llm.GenerationRequest{
		Description:  req.Description,
		SiteType:     req.SiteType,
		BusinessName: req.BusinessName,
		PrimaryColor: color,
	})
	if err != nil {
		uc.logger.Warn("AI generation failed, falling back to template",
			zap.String("siteType", req.SiteType), zap.Error(err))
		content, err = TemplateForSiteType(req.SiteType).Render(req.BusinessName, color)
		if err != nil {
			return nil, apperrors.NewInternalError("rendering fallback template", err)
		}
	}

	return uc.persist(ctx, req.Description, req.SiteType, req.BusinessName, color, req.ReferralCode, price, content)
}

// GenerateFromTemplate renders one of the built-in templates directly.
func (uc *GenerateUseCase) GenerateFromTemplate(ctx context.Context, req dto.GenerateFromTemplateRequest) (*dto.WebsiteResponse, error) {
	tmpl := TemplateByKey(req.TemplateKey)
	if tmpl == nil {
		return nil, apperrors.NewNotFoundError("template " + req.TemplateKey + " not found")
	}

	color := req.PrimaryColor
	if color == "" {
		color = defaultPrimaryColor
	}

	price := uc.resolvePrice(ctx, req.ReferralCode)

	content, err := tmpl.Render(req.BusinessName, color)
	if err != nil {
		return nil, apperrors.NewInternalError("rendering template", err)
	}

	return uc.persist(ctx, tmpl.Description, tmpl.SiteType, req.BusinessName, color, req.ReferralCode, price, content)
}

func (uc *GenerateUseCase) ListTemplates() *dto.TemplatesResponse {
	infos := make([]dto.TemplateInfo, 0, len(siteTemplates))
	for _, t := range siteTemplates {
		infos = append(infos, dto.TemplateInfo{
			Key:         t.Key,
			Name:        t.Name,
			SiteType:    t.SiteType,
			Description: t.Description,
		})
	}
	return &dto.TemplatesResponse{Templates: infos}
}

// resolvePrice applies the referral discount when the code is valid,
// unexpired and unused. An invalid code silently yields the normal price.
func (uc *GenerateUseCase) resolvePrice(ctx context.Context, code *string) float64 {
	if code == nil || *code == "" {
		return domain.PriceWebsite
	}

	referral, err := uc.referralRepo.FindRedeemable(ctx, *code)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); !ok {
			uc.logger.Warn("referral lookup failed", zap.Error(err))
		}
		return domain.PriceWebsite
	}
	if !referral.Redeemable(time.Now()) {
		return domain.PriceWebsite
	}
	return domain.PriceWebsiteReferral
}

func (uc *GenerateUseCase) persist(
	ctx context.Context,
	description, siteType, businessName, color string,
	referralCode *string,
	price float64,
	content *llm.GeneratedSite,
) (*dto.WebsiteResponse, error) {
	site := &domain.Website{
		ID:           uuid.New().String(),
		Description:  description,
		SiteType:     siteType,
		BusinessName: businessName,
		PrimaryColor: color,
		HTMLContent:  content.HTML,
		CSSContent:   content.CSS,
		JSContent:    content.JS,
		Price:        price,
		ReferralCode: referralCode,
		Paid:         false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.websiteRepo.Insert(ctx, site); err != nil {
		return nil, apperrors.NewInternalError("persisting website", err)
	}

	uc.logger.Info("website generated",
		zap.String("websiteId", site.ID),
		zap.String("siteType", siteType),
		zap.Float64("price", price))

	return &dto.WebsiteResponse{
		ID:          site.ID,
		HTMLContent: site.HTMLContent,
		CSSContent:  site.CSSContent,
		JSContent:   site.JSContent,
		PreviewURL:  "/preview/" + site.ID,
		Price:       site.Price,
		CreatedAt:   site.CreatedAt,
	}, nil
}
