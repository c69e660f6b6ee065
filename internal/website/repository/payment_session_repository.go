package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/errors"
)

type MySQLPaymentSessionRepository struct {
	db *sql.DB
}

func NewMySQLPaymentSessionRepository(db *sql.DB) *MySQLPaymentSessionRepository {
	return &MySQLPaymentSessionRepository{db: db}
}

func (r *MySQLPaymentSessionRepository) Insert(ctx context.Context, session *domain.PaymentSession) error {
	query := `
		INSERT INTO PaymentSessions (id, websiteId, amount, referralCode, status)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.WebsiteID, session.Amount, session.ReferralCode, session.Status,
	)
	if err != nil {
		return fmt.Errorf("inserting payment session: %w", err)
	}
	return nil
}

func (r *MySQLPaymentSessionRepository) FindByID(ctx context.Context, id string) (*domain.PaymentSession, error) {
	query := `
		SELECT id, websiteId, amount, referralCode, status, createdAt
		FROM PaymentSessions
		WHERE id = ?
	`

	var session domain.PaymentSession
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID, &session.WebsiteID, &session.Amount, &session.ReferralCode,
		&session.Status, &session.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("payment session %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying payment session: %w", err)
	}

	return &session, nil
}

// MarkCompleted transitions pending -> completed. A session already
// completed (or failed) is not transitioned again.
func (r *MySQLPaymentSessionRepository) MarkCompleted(ctx context.Context, id string) error {
	query := `UPDATE PaymentSessions SET status = ? WHERE id = ? AND status = ?`

	result, err := r.db.ExecContext(ctx, query, domain.PaymentStatusCompleted, id, domain.PaymentStatusPending)
	if err != nil {
		return fmt.Errorf("completing payment session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		session, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		return errors.NewConflictError(fmt.Sprintf("payment session %s is already %s", id, session.Status))
	}

	return nil
}
