package infra

import (
	"fmt"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express (partial indexes, FK delete rules).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies AutoMigrate plus the schema patches. Exposed separately
// so integration tests can migrate a fresh database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.PeriodoAcademico{},
		&model.Curso{},
		&model.Maestro{},
		&model.Clase{},
		&model.Grado{},
		&model.Estudiante{},
		&model.Cargo{},
		&model.Pago{},
		&model.Actividad{},
		&model.Entrega{},
		&model.Noticia{},
		&model.Notificacion{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle.
// Each statement uses IF NOT EXISTS / existence-guard semantics so re-running
// on an already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Partial index backing the notification retry cron query.
		{"partial index for pending notification retries", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_notificaciones_pending_retry') THEN
    CREATE INDEX idx_notificaciones_pending_retry
        ON notificaciones (next_retry_at)
        WHERE estado = 'pendiente' AND next_retry_at IS NOT NULL;
  END IF;
END $$`},
		// Deleting a cargo with pagos must fail at the DB level even if the
		// service-layer guard is raced. AutoMigrate leaves the FK with the
		// default NO ACTION name, so pin RESTRICT explicitly.
		{"pagos→cargos FK delete rule", `
DO $$ BEGIN
  IF EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_cargos_pagos') THEN
    ALTER TABLE pagos DROP CONSTRAINT fk_cargos_pagos;
  END IF;
  ALTER TABLE pagos
    ADD CONSTRAINT fk_cargos_pagos
    FOREIGN KEY (cargo_id) REFERENCES cargos(id) ON DELETE RESTRICT;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
