package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB builds statements without a server and records the last query SQL.
func newDryRunDB(t *testing.T) (*gorm.DB, *string) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN:                  "host=localhost user=stampcard dbname=stampcard sslmode=disable",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	var lastSQL string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(tx *gorm.DB) {
		lastSQL = tx.Statement.SQL.String()
	}))

	return db, &lastSQL
}

func TestCustomerRepository_LockCustomerSelectsForUpdate(t *testing.T) {
	db, lastSQL := newDryRunDB(t)
	repo := NewCustomerRepository(db)

	_, _ = repo.LockCustomer(context.Background(), uuid.New())

	assert.Contains(t, *lastSQL, `FROM "customers"`)
	assert.Contains(t, *lastSQL, "FOR UPDATE")
}

func TestCustomerRepository_FindCustomerByIDDoesNotLock(t *testing.T) {
	db, lastSQL := newDryRunDB(t)
	repo := NewCustomerRepository(db)

	_, _ = repo.FindCustomerByID(context.Background(), uuid.New())

	assert.Contains(t, *lastSQL, `FROM "customers"`)
	assert.NotContains(t, *lastSQL, "FOR UPDATE")
}
