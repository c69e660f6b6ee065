package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending           OrderStatus = "pending"
	OrderStatusDomainUnavailable OrderStatus = "domain_unavailable"
	OrderStatusProcessing        OrderStatus = "processing"
	OrderStatusCompleted         OrderStatus = "completed"
	OrderStatusError             OrderStatus = "error"
)

const (
	UrgencyNormal = "normal"
	UrgencyUrgent = "urgent"
)

const (
	PriceConcierge       = 49.0
	PriceConciergeUrgent = 79.0
)

type ConciergeOrder struct {
	ID           string
	WebsiteID    string
	ContactEmail string
	Domain       string
	Urgency      string
	Status       OrderStatus
	Price        float64
	PaymentLink  *string
	Alternatives []string
	LiveURL      *string
	ErrorDetail  *string
	CreatedAt    time.Time
	PaidAt       *time.Time
	CompletedAt  *time.Time
}

// CanTransitionTo encodes the forward-only order lifecycle:
// pending -> domain_unavailable | processing, processing -> completed,
// error reachable from any non-terminal state. No reverse transitions.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusDomainUnavailable || next == OrderStatusError
	case OrderStatusProcessing:
		return next == OrderStatusCompleted || next == OrderStatusError
	default:
		return false
	}
}

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusDomainUnavailable, OrderStatusError:
		return true
	}
	return false
}

func ConciergePrice(urgency string) float64 {
	if urgency == UrgencyUrgent {
		return PriceConciergeUrgent
	}
	return PriceConcierge
}
