package database

import (
	"embed"
	"fmt"
	"log"
	"sort"

	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// RunMigrations applies the versioned schema scripts under migrations/ in
// filename order. Applied versions are recorded in schema_migrations so a
// restart never re-runs a script.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`).Error; err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		var count int64
		if err := db.Raw(
			"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", name,
		).Scan(&count).Error; err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if count > 0 {
			continue
		}

		sqlBytes, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(sqlBytes)).Error; err != nil {
				return err
			}
			return tx.Exec(
				"INSERT INTO schema_migrations (version) VALUES (?)", name,
			).Error
		}); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		log.Printf("[MIGRATE] applied %s", name)
	}
	return nil
}
