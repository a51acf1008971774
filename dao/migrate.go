package dao

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/ramya-constructions/estate-backend/dao/model"
	"github.com/ramya-constructions/estate-backend/pkg/logutils"
)

// Migrate brings the schema to the latest version. Column-level checks
// and single-column indexes come from the model tags via AutoMigrate;
// the enum-domain constraints are Postgres-only statements because the
// sqlite dialector used in tests does not support ALTER TABLE ADD
// CONSTRAINT.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250801_initial_schema",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(
					&model.Admin{},
					&model.Project{},
					&model.InvestmentScheme{},
				); err != nil {
					return err
				}
				if tx.Dialector.Name() != "postgres" {
					return nil
				}
				for _, stmt := range []string{
					`ALTER TABLE projects ADD CONSTRAINT chk_projects_status
						CHECK (status IN ('available', 'sold_out', 'coming_soon'))`,
					`ALTER TABLE projects ADD CONSTRAINT chk_projects_property_type
						CHECK (property_type IN ('commercial', 'residential', 'plot', 'land', 'mixed_use'))`,
					`ALTER TABLE investment_schemes ADD CONSTRAINT chk_schemes_scheme_type
						CHECK (scheme_type IN ('single_payment', 'installment'))`,
				} {
					if err := tx.Exec(stmt).Error; err != nil {
						return err
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					&model.InvestmentScheme{},
					&model.Project{},
					&model.Admin{},
				)
			},
		},
	})

	if err := m.Migrate(); err != nil {
		return err
	}
	logutils.Log.Info("schema migrations applied")
	return nil
}
