package domain

import "time"

const (
	SiteTypeVitrine   = "vitrine"
	SiteTypeEcommerce = "ecommerce"
	SiteTypeBlog      = "blog"
)

const (
	PriceWebsite         = 15.0
	PriceWebsiteReferral = 10.0
)

type Website struct {
	ID           string
	Description  string
	SiteType     string
	BusinessName string
	PrimaryColor string
	HTMLContent  string
	CSSContent   string
	JSContent    string
	Price        float64
	ReferralCode *string
	Paid         bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func IsValidSiteType(siteType string) bool {
	switch siteType {
	case SiteTypeVitrine, SiteTypeEcommerce, SiteTypeBlog:
		return true
	}
	return false
}
