package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/errors"
	"github.com/chems34/IA-webgen/internal/testutil"
)

// Integration Tests

func TestPaymentSessionRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLPaymentSessionRepository(db)
	code := "GOODCODE"
	session := &domain.PaymentSession{
		ID:           uuid.New().String(),
		WebsiteID:    uuid.New().String(),
		Amount:       10.0,
		ReferralCode: &code,
		Status:       domain.PaymentStatusPending,
	}

	require.NoError(t, repo.Insert(context.Background(), session))

	found, err := repo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.WebsiteID, found.WebsiteID)
	assert.Equal(t, 10.0, found.Amount)
	assert.Equal(t, domain.PaymentStatusPending, found.Status)
	require.NotNil(t, found.ReferralCode)
	assert.Equal(t, "GOODCODE", *found.ReferralCode)
}

func TestPaymentSessionRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLPaymentSessionRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New().String())
	assert.Error(t, err)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestPaymentSessionRepository_MarkCompleted_Once(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLPaymentSessionRepository(db)
	session := &domain.PaymentSession{
		ID:        uuid.New().String(),
		WebsiteID: uuid.New().String(),
		Amount:    15.0,
		Status:    domain.PaymentStatusPending,
	}
	require.NoError(t, repo.Insert(context.Background(), session))

	require.NoError(t, repo.MarkCompleted(context.Background(), session.ID))

	found, err := repo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, found.Status)

	// The replay is rejected with Conflict.
	err = repo.MarkCompleted(context.Background(), session.ID)
	assert.Error(t, err)
	_, ok := errors.IsConflictError(err)
	assert.True(t, ok)
}
