package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes beyond what AutoMigrate
// creates from the model tags. Postgres only.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Job indexes for filtering and ordering
		{"jobs", "idx_jobs_status", "status"},
		{"jobs", "idx_jobs_created_at", "created_at"},
		{"jobs", "idx_jobs_workplace_location", "workplace_location"},
		{"jobs", "idx_jobs_employment_type", "employment_type"},

		// Tag lookups during list filtering
		{"job_tags", "idx_job_tags_name", "name"},

		// Application lookups by job
		{"job_applications", "idx_job_applications_job_id", "job_id"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
