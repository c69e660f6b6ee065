package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, order *domain.ConciergeOrder) error {
	var alternatives []byte
	if order.Alternatives != nil {
		var err error
		alternatives, err = json.Marshal(order.Alternatives)
		if err != nil {
			return fmt.Errorf("marshaling alternatives: %w", err)
		}
	}

	query := `
		INSERT INTO ConciergeOrders (id, websiteId, contactEmail, domain, urgency,
		                             status, price, paymentLink, alternatives)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		order.ID, order.WebsiteID, order.ContactEmail, order.Domain, order.Urgency,
		string(order.Status), order.Price, order.PaymentLink, alternatives,
	)
	if err != nil {
		return fmt.Errorf("inserting concierge order: %w", err)
	}
	return nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.ConciergeOrder, error) {
	query := `
		SELECT id, websiteId, contactEmail, domain, urgency, status, price,
		       paymentLink, alternatives, liveUrl, errorDetail,
		       createdAt, paidAt, completedAt
		FROM ConciergeOrders
		WHERE id = ?
	`

	var order domain.ConciergeOrder
	var status string
	var alternatives []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.WebsiteID, &order.ContactEmail, &order.Domain, &order.Urgency,
		&status, &order.Price, &order.PaymentLink, &alternatives, &order.LiveURL,
		&order.ErrorDetail, &order.CreatedAt, &order.PaidAt, &order.CompletedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("concierge order %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying concierge order by id: %w", err)
	}

	order.Status = domain.OrderStatus(status)
	if len(alternatives) > 0 {
		if err := json.Unmarshal(alternatives, &order.Alternatives); err != nil {
			return nil, fmt.Errorf("unmarshaling alternatives: %w", err)
		}
	}

	return &order, nil
}

// MarkProcessing performs the pending -> processing transition, stamping
// paidAt. The conditional UPDATE makes the payment notification one-shot: a
// replay matches zero rows and fails with Conflict.
func (r *MySQLOrderRepository) MarkProcessing(ctx context.Context, id string, paidAt time.Time) error {
	query := `
		UPDATE ConciergeOrders
		SET status = ?, paidAt = ?
		WHERE id = ? AND status = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		string(domain.OrderStatusProcessing), paidAt, id, string(domain.OrderStatusPending))
	if err != nil {
		return fmt.Errorf("marking order processing: %w", err)
	}

	return r.checkTransition(ctx, result, id, domain.OrderStatusProcessing)
}

// MarkCompleted performs the processing -> completed transition with the
// published URL.
func (r *MySQLOrderRepository) MarkCompleted(ctx context.Context, id string, liveURL string, completedAt time.Time) error {
	query := `
		UPDATE ConciergeOrders
		SET status = ?, liveUrl = ?, completedAt = ?
		WHERE id = ? AND status = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		string(domain.OrderStatusCompleted), liveURL, completedAt, id, string(domain.OrderStatusProcessing))
	if err != nil {
		return fmt.Errorf("marking order completed: %w", err)
	}

	return r.checkTransition(ctx, result, id, domain.OrderStatusCompleted)
}

// MarkError moves a non-terminal order into the error state with a detail
// message. Terminal orders are left untouched.
func (r *MySQLOrderRepository) MarkError(ctx context.Context, id string, detail string) error {
	query := `
		UPDATE ConciergeOrders
		SET status = ?, errorDetail = ?
		WHERE id = ? AND status IN (?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		string(domain.OrderStatusError), detail, id,
		string(domain.OrderStatusPending), string(domain.OrderStatusProcessing))
	if err != nil {
		return fmt.Errorf("marking order errored: %w", err)
	}
	return nil
}

func (r *MySQLOrderRepository) checkTransition(ctx context.Context, result sql.Result, id string, target domain.OrderStatus) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	order, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return errors.NewConflictError(fmt.Sprintf(
		"concierge order %s is %s, cannot move to %s", id, order.Status, target))
}
