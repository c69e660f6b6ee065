package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/errors"
)

type MySQLReferralRepository struct {
	db *sql.DB
}

func NewMySQLReferralRepository(db *sql.DB) *MySQLReferralRepository {
	return &MySQLReferralRepository{db: db}
}

func (r *MySQLReferralRepository) Insert(ctx context.Context, referral *domain.Referral) error {
	query := `
		INSERT INTO Referrals (id, code, userId, expiresAt, used)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		referral.ID, referral.Code, referral.UserID, referral.ExpiresAt, referral.Used,
	)
	if err != nil {
		return fmt.Errorf("inserting referral: %w", err)
	}
	return nil
}

func (r *MySQLReferralRepository) FindRedeemable(ctx context.Context, code string) (*domain.Referral, error) {
	query := `
		SELECT id, code, userId, createdAt, expiresAt, used
		FROM Referrals
		WHERE code = ?
	`

	var referral domain.Referral
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&referral.ID, &referral.Code, &referral.UserID,
		&referral.CreatedAt, &referral.ExpiresAt, &referral.Used,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("referral code %s not found", code))
	}
	if err != nil {
		return nil, fmt.Errorf("querying referral by code: %w", err)
	}

	return &referral, nil
}

// Redeem burns the code atomically. The conditional UPDATE makes the
// operation one-shot: a second redemption, or a redemption after expiry,
// matches zero rows and fails with Conflict.
func (r *MySQLReferralRepository) Redeem(ctx context.Context, code string) error {
	query := `
		UPDATE Referrals
		SET used = TRUE
		WHERE code = ? AND used = FALSE AND expiresAt > NOW()
	`

	result, err := r.db.ExecContext(ctx, query, code)
	if err != nil {
		return fmt.Errorf("redeeming referral: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if _, err := r.FindRedeemable(ctx, code); err != nil {
			return err
		}
		return errors.NewConflictError(fmt.Sprintf("referral code %s already used or expired", code))
	}

	return nil
}
