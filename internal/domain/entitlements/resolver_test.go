package entitlements

import (
	"errors"
	"testing"

	"directory-app/internal/domain/subscriptions"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestResolveReturnsTierEntitlement(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE operator_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "operator_id", "tier"}).
			AddRow(1, 7, "pro"))

	ent, err := Resolve(db, 7)
	require.NoError(t, err)
	assert.Equal(t, subscriptions.TierPro, ent.Tier)
	assert.True(t, ent.HasInquiryForm)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveMissingRowIsFree(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE operator_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "operator_id", "tier"}))

	ent, err := Resolve(db, 42)
	require.NoError(t, err)
	assert.Equal(t, subscriptions.TierFree, ent.Tier)
	assert.False(t, ent.HasInquiryForm)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveCorruptTierFailsClosed(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE operator_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "operator_id", "tier"}).
			AddRow(1, 7, "premium"))

	ent, err := Resolve(db, 7)
	require.NoError(t, err)
	assert.Equal(t, subscriptions.TierFree, ent.Tier)
}

func TestResolveStoreErrorIsRetryableAndFree(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE operator_id = \$1`).
		WillReturnError(errors.New("connection refused"))

	ent, err := Resolve(db, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	// Even the error path hands back the most restrictive row, never a grant.
	assert.Equal(t, subscriptions.TierFree, ent.Tier)
}
