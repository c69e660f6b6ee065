package domain

import "time"

// ReferralTTL is how long a referral code stays redeemable after creation.
const ReferralTTL = 24 * time.Hour

type Referral struct {
	ID        string
	Code      string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	Used      bool
}

func (r *Referral) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// Redeemable reports whether the code can still discount a price: not yet
// used and not expired. Once Used is set it is never cleared.
func (r *Referral) Redeemable(now time.Time) bool {
	return !r.Used && !r.IsExpired(now)
}
