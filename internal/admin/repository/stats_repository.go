package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Stats aggregates the numbers behind the admin dashboard.
type Stats struct {
	TotalWebsites   int
	PaidWebsites    int
	TotalRevenue    float64
	TotalOrders     int
	CompletedOrders int
}

type MySQLStatsRepository struct {
	db *sql.DB
}

func NewMySQLStatsRepository(db *sql.DB) *MySQLStatsRepository {
	return &MySQLStatsRepository{db: db}
}

func (r *MySQLStatsRepository) Aggregate(ctx context.Context) (*Stats, error) {
	var stats Stats

	websiteQuery := `
		SELECT COUNT(*),
		       COALESCE(SUM(paid), 0),
		       COALESCE(SUM(CASE WHEN paid THEN price ELSE 0 END), 0)
		FROM Websites
	`
	if err := r.db.QueryRowContext(ctx, websiteQuery).Scan(
		&stats.TotalWebsites, &stats.PaidWebsites, &stats.TotalRevenue,
	); err != nil {
		return nil, fmt.Errorf("aggregating website stats: %w", err)
	}

	orderQuery := `
		SELECT COUNT(*),
		       COALESCE(SUM(status = 'completed'), 0)
		FROM ConciergeOrders
	`
	if err := r.db.QueryRowContext(ctx, orderQuery).Scan(
		&stats.TotalOrders, &stats.CompletedOrders,
	); err != nil {
		return nil, fmt.Errorf("aggregating order stats: %w", err)
	}

	return &stats, nil
}
