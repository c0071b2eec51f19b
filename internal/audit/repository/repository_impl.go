package repository

import (
	"context"

	"github.com/smallbiznis/feedscope/internal/audit/domain"
	pkgdb "github.com/smallbiznis/feedscope/pkg/db"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, run *domain.AuditRun) error {
	if err := db.WithContext(ctx).Create(run).Error; err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.AuditRun, error) {
	var run domain.AuditRun
	err := db.WithContext(ctx).First(&run, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, limit int) ([]domain.AuditRun, error) {
	var items []domain.AuditRun
	stmt := db.WithContext(ctx).
		Model(&domain.AuditRun{}).
		Omit("report").
		Order("created_at DESC")
	if limit > 0 {
		stmt = stmt.Limit(limit)
	}
	if err := stmt.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
