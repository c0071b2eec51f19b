package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/feedscope/internal/audit/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.AuditRun{}))
	return db
}

func TestCreateMapsDuplicateKey(t *testing.T) {
	db := newTestDB(t)
	r := Provide()

	run := &domain.AuditRun{ID: 1, ProductFileName: "export.csv", Language: "cs"}
	require.NoError(t, r.Create(context.Background(), db, run))

	again := &domain.AuditRun{ID: 1, ProductFileName: "export.csv", Language: "cs"}
	assert.ErrorIs(t, r.Create(context.Background(), db, again), domain.ErrConflict)
}

func TestFindByIDMissingRun(t *testing.T) {
	db := newTestDB(t)
	r := Provide()

	run, err := r.FindByID(context.Background(), db, 42)
	require.NoError(t, err)
	assert.Nil(t, run)
}
