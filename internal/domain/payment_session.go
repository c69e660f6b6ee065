package domain

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

type PaymentSession struct {
	ID           string
	WebsiteID    string
	Amount       float64
	ReferralCode *string
	Status       string
	CreatedAt    time.Time
}
