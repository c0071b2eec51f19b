package domain

import (
	"time"

	"gorm.io/datatypes"
)

// AuditRun is one persisted audit: the request envelope plus the full
// report payload as JSON.
type AuditRun struct {
	ID               int64          `json:"id,string" gorm:"primaryKey"`
	ProductFileName  string         `json:"product_file_name"`
	CategoryFileName string         `json:"category_file_name,omitempty"`
	Language         string         `json:"language"`
	ProductCount     int            `json:"product_count"`
	CategoryCount    int            `json:"category_count"`
	ErrorCount       int            `json:"error_count"`
	WarningCount     int            `json:"warning_count"`
	OverallScore     int            `json:"overall_score"`
	Report           datatypes.JSON `json:"-"`
	CreatedAt        time.Time      `json:"created_at"`
}

func (AuditRun) TableName() string {
	return "audit_runs"
}
