package dto

import "time"

type ConciergeRequest struct {
	WebsiteID       string `json:"websiteId"`
	ContactEmail    string `json:"contactEmail"`
	PreferredDomain string `json:"preferredDomain"`
	Urgency         string `json:"urgency"`
}

type ConciergeResponse struct {
	OrderID      string   `json:"orderId"`
	Status       string   `json:"status"`
	Price        float64  `json:"price"`
	PaymentLink  string   `json:"paymentLink,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
	Message      string   `json:"message"`
}

type ConciergeStatusResponse struct {
	OrderID      string     `json:"orderId"`
	WebsiteID    string     `json:"websiteId"`
	Domain       string     `json:"domain"`
	Urgency      string     `json:"urgency"`
	Status       string     `json:"status"`
	Price        float64    `json:"price"`
	PaymentLink  *string    `json:"paymentLink,omitempty"`
	Alternatives []string   `json:"alternatives,omitempty"`
	LiveURL      *string    `json:"liveUrl,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	PaidAt       *time.Time `json:"paidAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

type ConciergeTransitionResponse struct {
	OrderID string  `json:"orderId"`
	Status  string  `json:"status"`
	LiveURL *string `json:"liveUrl,omitempty"`
	Message string  `json:"message"`
}
