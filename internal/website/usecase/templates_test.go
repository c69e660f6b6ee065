package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chems34/IA-webgen/internal/domain"
)

func TestTemplateByKey(t *testing.T) {
	assert.NotNil(t, TemplateByKey("vitrine-simple"))
	assert.NotNil(t, TemplateByKey("boutique-moderne"))
	assert.NotNil(t, TemplateByKey("blog-epure"))
	assert.Nil(t, TemplateByKey("nope"))
}

func TestTemplateForSiteType(t *testing.T) {
	assert.Equal(t, domain.SiteTypeEcommerce, TemplateForSiteType(domain.SiteTypeEcommerce).SiteType)
	assert.Equal(t, domain.SiteTypeBlog, TemplateForSiteType(domain.SiteTypeBlog).SiteType)
	// Unknown site types fall back to the first template.
	assert.Equal(t, siteTemplates[0].Key, TemplateForSiteType("unknown").Key)
}

func TestTemplateRender_SubstitutesValues(t *testing.T) {
	for _, tmpl := range Templates() {
		site, err := tmpl.Render("Chez Ana", "#123456")
		require.NoError(t, err, tmpl.Key)

		assert.Contains(t, site.HTML, "Chez Ana", tmpl.Key)
		assert.Contains(t, site.CSS, "#123456", tmpl.Key)
		assert.NotEmpty(t, site.JS, tmpl.Key)
	}
}
