package dto

import "time"

type CreateReferralRequest struct {
	UserID *string `json:"userId,omitempty"`
}

type CreateReferralResponse struct {
	ReferralCode string    `json:"referralCode"`
	ReferralLink string    `json:"referralLink"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
