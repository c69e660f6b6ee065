package dto

import "time"

type GenerateWebsiteRequest struct {
	Description  string  `json:"description"`
	SiteType     string  `json:"siteType"`
	BusinessName string  `json:"businessName"`
	PrimaryColor string  `json:"primaryColor"`
	ReferralCode *string `json:"referralCode,omitempty"`
}

type GenerateFromTemplateRequest struct {
	TemplateKey  string  `json:"templateKey"`
	BusinessName string  `json:"businessName"`
	PrimaryColor string  `json:"primaryColor"`
	ReferralCode *string `json:"referralCode,omitempty"`
}

type WebsiteResponse struct {
	ID          string    `json:"id"`
	HTMLContent string    `json:"htmlContent"`
	CSSContent  string    `json:"cssContent"`
	JSContent   string    `json:"jsContent"`
	PreviewURL  string    `json:"previewUrl"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PreviewResponse struct {
	HTML string `json:"html"`
}

type TemplateInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	SiteType    string `json:"siteType"`
	Description string `json:"description"`
}

type TemplatesResponse struct {
	Templates []TemplateInfo `json:"templates"`
}

type EditResponse struct {
	ID          string `json:"id"`
	Editable    bool   `json:"editable"`
	HTMLContent string `json:"htmlContent"`
	CSSContent  string `json:"cssContent"`
	JSContent   string `json:"jsContent"`
}

type UpdateWebsiteRequest struct {
	HTMLContent *string `json:"htmlContent,omitempty"`
	CSSContent  *string `json:"cssContent,omitempty"`
	JSContent   *string `json:"jsContent,omitempty"`
}

type CreatePaymentSessionRequest struct {
	WebsiteID    string  `json:"websiteId"`
	ReferralCode *string `json:"referralCode,omitempty"`
}

type PaymentSessionResponse struct {
	PaymentSessionID string  `json:"paymentSessionId"`
	Amount           float64 `json:"amount"`
	PaypalURL        string  `json:"paypalUrl"`
}

type ConfirmPaymentRequest struct {
	PaymentSessionID string `json:"paymentSessionId"`
}

type ConfirmPaymentResponse struct {
	Message string `json:"message"`
}
