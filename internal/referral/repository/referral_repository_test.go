package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/errors"
	"github.com/chems34/IA-webgen/internal/testutil"
)

// Integration Tests

func newTestReferral(expiresAt time.Time) *domain.Referral {
	return &domain.Referral{
		ID:        uuid.New().String(),
		Code:      uuid.New().String()[:8],
		UserID:    "anonymous",
		ExpiresAt: expiresAt,
		Used:      false,
	}
}

func TestReferralRepository_InsertAndFindRedeemable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLReferralRepository(db)
	referral := newTestReferral(time.Now().Add(domain.ReferralTTL))

	require.NoError(t, repo.Insert(context.Background(), referral))

	found, err := repo.FindRedeemable(context.Background(), referral.Code)
	require.NoError(t, err)
	assert.Equal(t, referral.Code, found.Code)
	assert.Equal(t, "anonymous", found.UserID)
	assert.False(t, found.Used)
	assert.True(t, found.Redeemable(time.Now()))
}

func TestReferralRepository_FindRedeemable_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLReferralRepository(db)

	_, err := repo.FindRedeemable(context.Background(), "NOPE")
	assert.Error(t, err)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestReferralRepository_Redeem_OneShot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLReferralRepository(db)
	referral := newTestReferral(time.Now().Add(domain.ReferralTTL))
	require.NoError(t, repo.Insert(context.Background(), referral))

	require.NoError(t, repo.Redeem(context.Background(), referral.Code))

	found, err := repo.FindRedeemable(context.Background(), referral.Code)
	require.NoError(t, err)
	assert.True(t, found.Used)

	// The second redemption is rejected with Conflict.
	err = repo.Redeem(context.Background(), referral.Code)
	assert.Error(t, err)
	_, ok := errors.IsConflictError(err)
	assert.True(t, ok)
}

func TestReferralRepository_Redeem_Expired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLReferralRepository(db)
	referral := newTestReferral(time.Now().Add(-time.Hour))
	require.NoError(t, repo.Insert(context.Background(), referral))

	err := repo.Redeem(context.Background(), referral.Code)
	assert.Error(t, err)

	_, ok := errors.IsConflictError(err)
	assert.True(t, ok)
}

func TestReferralRepository_Redeem_UnknownCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLReferralRepository(db)

	err := repo.Redeem(context.Background(), "NOPE")
	assert.Error(t, err)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
