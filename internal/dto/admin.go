package dto

import "time"

type AdminStatsResponse struct {
	TotalWebsites   int     `json:"totalWebsites"`
	PaidWebsites    int     `json:"paidWebsites"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalOrders     int     `json:"totalOrders"`
	CompletedOrders int     `json:"completedOrders"`
}

type AdminWebsiteDTO struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"businessName"`
	SiteType     string    `json:"siteType"`
	Price        float64   `json:"price"`
	Paid         bool      `json:"paid"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AdminWebsitesResponse struct {
	Websites []AdminWebsiteDTO `json:"websites"`
}
