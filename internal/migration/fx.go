package migration

import (
	auditdomain "github.com/smallbiznis/feedscope/internal/audit/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB) error {
		return conn.AutoMigrate(
			&auditdomain.AuditRun{},
		)
	}),
)
