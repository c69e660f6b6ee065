package domain

import "time"

const (
	ActionWebsiteGenerated  = "website_generated"
	ActionReferralCreated   = "referral_created"
	ActionPaymentCreated    = "payment_created"
	ActionPaymentConfirmed  = "payment_confirmed"
	ActionWebsiteDownloaded = "website_downloaded"
	ActionWebsiteEdited     = "website_edited"
	ActionConciergeRequest  = "concierge_requested"
	ActionConciergePaid     = "concierge_paid"
	ActionConciergeDone     = "concierge_completed"
)

// HistoryEntry is an append-only audit record. Entries are never updated;
// old ones are removed by the age-based cleanup endpoint.
type HistoryEntry struct {
	ID          string
	Action      string
	WebsiteID   *string
	OrderID     *string
	UserSession string
	Details     map[string]any
	CreatedAt   time.Time
}
