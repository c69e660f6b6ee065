package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chems34/IA-webgen/internal/domain"
)

type MySQLHistoryRepository struct {
	db *sql.DB
}

func NewMySQLHistoryRepository(db *sql.DB) *MySQLHistoryRepository {
	return &MySQLHistoryRepository{db: db}
}

func (r *MySQLHistoryRepository) Insert(ctx context.Context, entry *domain.HistoryEntry) error {
	var details []byte
	if entry.Details != nil {
		var err error
		details, err = json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("marshaling history details: %w", err)
		}
	}

	query := `
		INSERT INTO History (id, action, websiteId, orderId, userSession, details)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.Action, entry.WebsiteID, entry.OrderID, entry.UserSession, details,
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

func (r *MySQLHistoryRepository) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	query := `
		SELECT id, action, websiteId, orderId, userSession, details, createdAt
		FROM History
		ORDER BY createdAt DESC
		LIMIT ?
	`
	return r.queryEntries(ctx, query, limit)
}

func (r *MySQLHistoryRepository) ListByUserSession(ctx context.Context, session string) ([]domain.HistoryEntry, error) {
	query := `
		SELECT id, action, websiteId, orderId, userSession, details, createdAt
		FROM History
		WHERE userSession = ?
		ORDER BY createdAt DESC
	`
	return r.queryEntries(ctx, query, session)
}

func (r *MySQLHistoryRepository) CountTotal(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM History`).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting history entries: %w", err)
	}
	return total, nil
}

func (r *MySQLHistoryRepository) CountByAction(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT action, COUNT(*) FROM History GROUP BY action`)
	if err != nil {
		return nil, fmt.Errorf("counting history by action: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var action string
		var count int
		if err := rows.Scan(&action, &count); err != nil {
			return nil, fmt.Errorf("scanning action count: %w", err)
		}
		counts[action] = count
	}

	return counts, rows.Err()
}

// DeleteOlderThan prunes entries created before the cutoff and reports how
// many were removed.
func (r *MySQLHistoryRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM History WHERE createdAt < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting old history entries: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

func (r *MySQLHistoryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var details []byte
		if err := rows.Scan(
			&entry.ID, &entry.Action, &entry.WebsiteID, &entry.OrderID,
			&entry.UserSession, &details, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &entry.Details); err != nil {
				return nil, fmt.Errorf("unmarshaling history details: %w", err)
			}
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
