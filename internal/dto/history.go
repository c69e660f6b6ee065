package dto

import "time"

type HistoryEntryDTO struct {
	ID          string         `json:"id"`
	Action      string         `json:"action"`
	WebsiteID   *string        `json:"websiteId,omitempty"`
	OrderID     *string        `json:"orderId,omitempty"`
	UserSession string         `json:"userSession"`
	Details     map[string]any `json:"details,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type HistoryResponse struct {
	History []HistoryEntryDTO `json:"history"`
	Total   int               `json:"total"`
}

type UserHistoryResponse struct {
	UserSession string            `json:"userSession"`
	History     []HistoryEntryDTO `json:"history"`
}

type HistoryStatsResponse struct {
	TotalActivities int            `json:"totalActivities"`
	ActionCounts    map[string]int `json:"actionCounts"`
}

type HistoryCleanupResponse struct {
	DeletedCount int `json:"deletedCount"`
}
