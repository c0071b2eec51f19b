package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, run *AuditRun) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*AuditRun, error)
	List(ctx context.Context, db *gorm.DB, limit int) ([]AuditRun, error)
}
