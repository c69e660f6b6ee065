package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/dto"
	apperrors "github.com/chems34/IA-webgen/internal/errors"
)

// ManageUseCase covers everything on an existing website: preview, the
// paid-gated edit surface and the paid-gated ZIP download.
type ManageUseCase struct {
	websiteRepo WebsiteRepository
	logger      *zap.Logger
}

func NewManageUseCase(websiteRepo WebsiteRepository, logger *zap.Logger) *ManageUseCase {
	return &ManageUseCase{websiteRepo: websiteRepo, logger: logger}
}

func (uc *ManageUseCase) Preview(ctx context.Context, id string) (*dto.PreviewResponse, error) {
	site, err := uc.websiteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PreviewResponse{HTML: CombineDocument(site)}, nil
}

func (uc *ManageUseCase) GetForEdit(ctx context.Context, id string) (*dto.EditResponse, error) {
	site, err := uc.websiteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !site.Paid {
		return nil, apperrors.NewForbiddenError("payment required to edit website")
	}

	return &dto.EditResponse{
		ID:          site.ID,
		Editable:    true,
		HTMLContent: site.HTMLContent,
		CSSContent:  site.CSSContent,
		JSContent:   site.JSContent,
	}, nil
}

func (uc *ManageUseCase) Update(ctx context.Context, id string, req dto.UpdateWebsiteRequest) (*dto.EditResponse, error) {
	site, err := uc.websiteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !site.Paid {
		return nil, apperrors.NewForbiddenError("payment required to edit website")
	}

	html, css, js := site.HTMLContent, site.CSSContent, site.JSContent
	if req.HTMLContent != nil {
		html = *req.HTMLContent
	}
	if req.CSSContent != nil {
		css = *req.CSSContent
	}
	if req.JSContent != nil {
		js = *req.JSContent
	}

	if err := uc.websiteRepo.UpdateContent(ctx, id, html, css, js); err != nil {
		return nil, apperrors.NewInternalError("updating website content", err)
	}

	uc.logger.Info("website content updated", zap.String("websiteId", id))

	return &dto.EditResponse{
		ID:          id,
		Editable:    true,
		HTMLContent: html,
		CSSContent:  css,
		JSContent:   js,
	}, nil
}

// Download builds the deliverable ZIP. Forbidden until the site is paid.
func (uc *ManageUseCase) Download(ctx context.Context, id string) (archive []byte, filename string, err error) {
	site, err := uc.websiteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if !site.Paid {
		return nil, "", apperrors.NewForbiddenError("payment required to download website")
	}

	archive, err = BuildArchive(site)
	if err != nil {
		return nil, "", apperrors.NewInternalError("building website archive", err)
	}

	return archive, fmt.Sprintf("%s_website.zip", site.BusinessName), nil
}

// CombineDocument assembles a standalone HTML document with inlined CSS/JS.
func CombineDocument(site *domain.Website) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="fr">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        %s
    </style>
</head>
<body>
    %s
    <script>
        %s
    </script>
</body>
</html>`, site.BusinessName, site.CSSContent, site.HTMLContent, site.JSContent)
}

// BuildArchive packages index.html (linking the separate assets),
// styles.css, script.js and a README.
func BuildArchive(site *domain.Website) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	indexHTML := fmt.Sprintf(`<!DOCTYPE html>
<html lang="fr">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    %s
    <script src="script.js"></script>
</body>
</html>`, site.BusinessName, site.HTMLContent)

	readme := fmt.Sprintf(`# %s Website

Generated on: %s
Site Type: %s

## Files included:
- index.html - Main HTML file
- styles.css - CSS styles
- script.js - JavaScript functionality

## Usage:
1. Extract all files to a folder
2. Open index.html in a web browser
3. Upload to your web hosting service
`, site.BusinessName, site.CreatedAt.Format("2006-01-02 15:04:05"), site.SiteType)

	files := []struct {
		name    string
		content string
	}{
		{"index.html", indexHTML},
		{"styles.css", site.CSSContent},
		{"script.js", site.JSContent},
		{"README.md", readme},
	}

	for _, f := range files {
		entry, err := w.Create(f.name)
		if err != nil {
			return nil, fmt.Errorf("creating zip entry %s: %w", f.name, err)
		}
		if _, err := entry.Write([]byte(f.content)); err != nil {
			return nil, fmt.Errorf("writing zip entry %s: %w", f.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing zip archive: %w", err)
	}

	return buf.Bytes(), nil
}
