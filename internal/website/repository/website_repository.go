package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/errors"
)

type MySQLWebsiteRepository struct {
	db *sql.DB
}

func NewMySQLWebsiteRepository(db *sql.DB) *MySQLWebsiteRepository {
	return &MySQLWebsiteRepository{db: db}
}

func (r *MySQLWebsiteRepository) Insert(ctx context.Context, site *domain.Website) error {
	query := `
		INSERT INTO Websites (id, description, siteType, businessName, primaryColor,
		                      htmlContent, cssContent, jsContent, price, referralCode, paid)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		site.ID, site.Description, site.SiteType, site.BusinessName, site.PrimaryColor,
		site.HTMLContent, site.CSSContent, site.JSContent, site.Price, site.ReferralCode, site.Paid,
	)
	if err != nil {
		return fmt.Errorf("inserting website: %w", err)
	}
	return nil
}

func (r *MySQLWebsiteRepository) FindByID(ctx context.Context, id string) (*domain.Website, error) {
	query := `
		SELECT id, description, siteType, businessName, primaryColor,
		       htmlContent, cssContent, jsContent, price, referralCode, paid,
		       createdAt, updatedAt
		FROM Websites
		WHERE id = ?
	`

	var site domain.Website
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&site.ID, &site.Description, &site.SiteType, &site.BusinessName, &site.PrimaryColor,
		&site.HTMLContent, &site.CSSContent, &site.JSContent, &site.Price, &site.ReferralCode,
		&site.Paid, &site.CreatedAt, &site.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("website %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying website by id: %w", err)
	}

	return &site, nil
}

func (r *MySQLWebsiteRepository) UpdateContent(ctx context.Context, id string, html, css, js string) error {
	query := `UPDATE Websites SET htmlContent = ?, cssContent = ?, jsContent = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, html, css, js, id)
	if err != nil {
		return fmt.Errorf("updating website content: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("website %s not found", id))
	}

	return nil
}

// MarkPaid only ever flips paid to true; there is no reverse operation.
func (r *MySQLWebsiteRepository) MarkPaid(ctx context.Context, id string) error {
	query := `UPDATE Websites SET paid = TRUE WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("marking website paid: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	// Zero rows also happens when the site is already paid, which is fine:
	// the flag is monotonic.
	if rowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

func (r *MySQLWebsiteRepository) List(ctx context.Context, limit, offset int) ([]domain.Website, error) {
	query := `
		SELECT id, description, siteType, businessName, primaryColor,
		       htmlContent, cssContent, jsContent, price, referralCode, paid,
		       createdAt, updatedAt
		FROM Websites
		ORDER BY createdAt DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing websites: %w", err)
	}
	defer rows.Close()

	var sites []domain.Website
	for rows.Next() {
		var site domain.Website
		if err := rows.Scan(
			&site.ID, &site.Description, &site.SiteType, &site.BusinessName, &site.PrimaryColor,
			&site.HTMLContent, &site.CSSContent, &site.JSContent, &site.Price, &site.ReferralCode,
			&site.Paid, &site.CreatedAt, &site.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning website row: %w", err)
		}
		sites = append(sites, site)
	}

	return sites, rows.Err()
}
