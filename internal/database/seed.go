package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/hireloop/job-board-api/internal/config"
	"github.com/hireloop/job-board-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// defaultDepartments are created on first boot when department seeding is
// enabled.
var defaultDepartments = []string{
	"Engineering",
	"Marketing",
	"Sales",
	"Design",
	"Human Resources",
}

// Seed bootstraps the singleton organization from the configured credentials
// and optionally the default departments. It is idempotent: existing rows are
// left untouched.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedOrganization(db, cfg); err != nil {
		return err
	}
	if cfg.SeedDepartments {
		if err := seedDepartments(db); err != nil {
			return err
		}
	}
	return nil
}

func seedOrganization(db *gorm.DB, cfg *config.Config) error {
	var existing models.Organization
	err := db.First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for organization: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.OrgPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash organization password: %w", err)
	}

	organization, err := models.NewOrganization(cfg.OrgEmail, string(hash), cfg.OrgName)
	if err != nil {
		return fmt.Errorf("invalid organization seed data: %w", err)
	}

	if err := db.Create(&organization).Error; err != nil {
		return fmt.Errorf("failed to seed organization: %w", err)
	}

	log.Printf("Seeded organization %q", organization.Name)
	return nil
}

func seedDepartments(db *gorm.DB) error {
	for _, name := range defaultDepartments {
		var existing models.Department
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for department %q: %w", name, err)
		}

		department, err := models.NewDepartment(name)
		if err != nil {
			return err
		}
		if err := db.Create(&department).Error; err != nil {
			return fmt.Errorf("failed to seed department %q: %w", name, err)
		}
	}
	return nil
}
