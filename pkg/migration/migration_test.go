package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type widget struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:64"`
}

type createWidgetsTable struct{}

func (m *createWidgetsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&widget{})
}

func (m *createWidgetsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("widgets")
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

// withCleanRegistry isolates the global registry for one test.
func withCleanRegistry(t *testing.T) {
	t.Helper()
	old := registry
	registry = nil
	t.Cleanup(func() { registry = old })
}

func TestRunner_RunAppliesPendingOnce(t *testing.T) {
	withCleanRegistry(t)
	Register("20260301000000_create_widgets_table", &createWidgetsTable{})

	db := newTestDB(t)
	runner := New(db)

	require.NoError(t, runner.Run())
	assert.True(t, db.Migrator().HasTable("widgets"))

	// Second run finds nothing pending.
	pending, err := runner.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)
	require.NoError(t, runner.Run())
}

func TestRunner_RollbackRevertsLastBatch(t *testing.T) {
	withCleanRegistry(t)
	Register("20260301000000_create_widgets_table", &createWidgetsTable{})

	db := newTestDB(t)
	runner := New(db)

	require.NoError(t, runner.Run())
	require.True(t, db.Migrator().HasTable("widgets"))

	require.NoError(t, runner.Rollback())
	assert.False(t, db.Migrator().HasTable("widgets"))

	// The migration is pending again after rollback.
	pending, err := runner.Pending()
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestRunner_RollbackEmptyIsNoOp(t *testing.T) {
	withCleanRegistry(t)

	runner := New(newTestDB(t))
	assert.NoError(t, runner.Rollback())
}
