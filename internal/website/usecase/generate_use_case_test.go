package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/dto"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
	"github.com/chems34/IA-webgen/internal/infrastructure/llm"
)

func strPtr(s string) *string { return &s }

func capturingWebsiteRepo(captured **domain.Website) *mockWebsiteRepository {
	return &mockWebsiteRepository{
		InsertFunc: func(ctx context.Context, site *domain.Website) error {
			*captured = site
			return nil
		},
	}
}

func validReferralRepo() *mockReferralRepository {
	return &mockReferralRepository{
		FindRedeemableFunc: func(ctx context.Context, code string) (*domain.Referral, error) {
			return &domain.Referral{
				Code:      code,
				ExpiresAt: time.Now().Add(time.Hour),
				Used:      false,
			}, nil
		},
	}
}

func noReferralRepo() *mockReferralRepository {
	return &mockReferralRepository{
		FindRedeemableFunc: func(ctx context.Context, code string) (*domain.Referral, error) {
			return nil, apperrors.NewNotFoundError("referral not found")
		},
	}
}

func TestGenerateWebsite_DefaultPrice(t *testing.T) {
	var saved *domain.Website
	gen := &mockSiteGenerator{
		GenerateSiteFunc: func(ctx context.Context, req llm.GenerationRequest) (*llm.GeneratedSite, error) {
			return &llm.GeneratedSite{HTML: "<h1>Ma Boutique</h1>", CSS: "body{}", JS: ""}, nil
		},
	}

	uc := NewGenerateUseCase(capturingWebsiteRepo(&saved), noReferralRepo(), gen, zap.NewNop())

	resp, err := uc.GenerateWebsite(context.Background(), dto.GenerateWebsiteRequest{
		Description:  "boutique de fleurs",
		SiteType:     domain.SiteTypeVitrine,
		BusinessName: "Ma Boutique",
	})
	require.NoError(t, err)

	assert.Equal(t, 15.0, resp.Price)
	assert.Contains(t, resp.HTMLContent, "Ma Boutique")
	assert.Equal(t, "/preview/"+resp.ID, resp.PreviewURL)
	require.NotNil(t, saved)
	assert.False(t, saved.Paid)
}

func TestGenerateWebsite_ReferralDiscount(t *testing.T) {
	var saved *domain.Website
	gen := &mockSiteGenerator{
		GenerateSiteFunc: func(ctx context.Context, req llm.GenerationRequest) (*llm.GeneratedSite, error) {
			return &llm.GeneratedSite{HTML: "<p>ok</p>"}, nil
		},
	}

	uc := NewGenerateUseCase(capturingWebsiteRepo(&saved), validReferralRepo(), gen, zap.NewNop())

	resp, err := uc.GenerateWebsite(context.Background(), dto.GenerateWebsiteRequest{
		SiteType:     domain.SiteTypeVitrine,
		BusinessName: "Ma Boutique",
		ReferralCode: strPtr("GOODCODE"),
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, resp.Price)
}

func TestGenerateWebsite_UsedReferralNoDiscount(t *testing.T) {
	var saved *domain.Website
	refRepo := &mockReferralRepository{
		FindRedeemableFunc: func(ctx context.Context, code string) (*domain.Referral, error) {
			return &domain.Referral{
				Code:      code,
				ExpiresAt: time.Now().Add(time.Hour),
				Used:      true,
			}, nil
		},
	}
	gen := &mockSiteGenerator{
		GenerateSiteFunc: func(ctx context.Context, req llm.GenerationRequest) (*llm.GeneratedSite, error) {
			return &llm.GeneratedSite{HTML: "<p>ok</p>"}, nil
		},
	}

	uc := NewGenerateUseCase(capturingWebsiteRepo(&saved), refRepo, gen, zap.NewNop())

	resp, err := uc.GenerateWebsite(context.Background(), dto.GenerateWebsiteRequest{
		SiteType:     domain.SiteTypeVitrine,
		BusinessName: "Ma Boutique",
		ReferralCode: strPtr("USEDCODE"),
	})
	require.NoError(t, err)
	assert.Equal(t, 15.0, resp.Price)
}

func TestGenerateWebsite_FallsBackToTemplateOnLLMFailure(t *testing.T) {
	var saved *domain.Website
	gen := &mockSiteGenerator{
		GenerateSiteFunc: func(ctx context.Context, req llm.GenerationRequest) (*llm.GeneratedSite, error) {
			return nil, apperrors.NewUpstreamError("llm", "quota exceeded", nil)
		},
	}

	uc := NewGenerateUseCase(capturingWebsiteRepo(&saved), noReferralRepo(), gen, zap.NewNop())

	resp, err := uc.GenerateWebsite(context.Background(), dto.GenerateWebsiteRequest{
		SiteType:     domain.SiteTypeVitrine,
		BusinessName: "Ma Boutique",
	})
	require.NoError(t, err)

	// Template fallback still carries the business name.
	assert.Contains(t, resp.HTMLContent, "Ma Boutique")
	assert.NotEmpty(t, resp.CSSContent)
	assert.Equal(t, 15.0, resp.Price)
}

func TestGenerateFromTemplate_Success(t *testing.T) {
	var saved *domain.Website
	uc := NewGenerateUseCase(capturingWebsiteRepo(&saved), noReferralRepo(), nil, zap.NewNop())

	resp, err := uc.GenerateFromTemplate(context.Background(), dto.GenerateFromTemplateRequest{
		TemplateKey:  "vitrine-simple",
		BusinessName: "Ma Boutique",
		PrimaryColor: "#FF5722",
	})
	require.NoError(t, err)

	assert.Contains(t, resp.HTMLContent, "Ma Boutique")
	assert.Contains(t, resp.CSSContent, "#FF5722")
	assert.Equal(t, 15.0, resp.Price)
	require.NotNil(t, saved)
	assert.Equal(t, domain.SiteTypeVitrine, saved.SiteType)
}

func TestGenerateFromTemplate_UnknownKey(t *testing.T) {
	uc := NewGenerateUseCase(nil, noReferralRepo(), nil, zap.NewNop())

	_, err := uc.GenerateFromTemplate(context.Background(), dto.GenerateFromTemplateRequest{
		TemplateKey:  "does-not-exist",
		BusinessName: "Ma Boutique",
	})
	require.Error(t, err)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestGenerateWebsite_InsertFailure(t *testing.T) {
	repo := &mockWebsiteRepository{
		InsertFunc: func(ctx context.Context, site *domain.Website) error {
			return errors.New("connection lost")
		},
	}
	gen := &mockSiteGenerator{
		GenerateSiteFunc: func(ctx context.Context, req llm.GenerationRequest) (*llm.GeneratedSite, error) {
			return &llm.GeneratedSite{HTML: "<p>ok</p>"}, nil
		},
	}

	uc := NewGenerateUseCase(repo, noReferralRepo(), gen, zap.NewNop())

	_, err := uc.GenerateWebsite(context.Background(), dto.GenerateWebsiteRequest{
		SiteType:     domain.SiteTypeVitrine,
		BusinessName: "Ma Boutique",
	})
	assert.Error(t, err)
}

func TestListTemplates(t *testing.T) {
	uc := NewGenerateUseCase(nil, nil, nil, zap.NewNop())

	resp := uc.ListTemplates()
	require.NotEmpty(t, resp.Templates)

	keys := make(map[string]bool)
	for _, tmpl := range resp.Templates {
		keys[tmpl.Key] = true
		assert.NotEmpty(t, tmpl.Name)
		assert.NotEmpty(t, tmpl.SiteType)
	}
	assert.True(t, keys["vitrine-simple"])
}
