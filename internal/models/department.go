package models

import (
	"strings"

	"github.com/google/uuid"
)

// Department groups jobs under a unique, case-sensitive name.
type Department struct {
	ID   string `gorm:"type:char(36);primarykey" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
}

// NewDepartment creates a department with a fresh id and a trimmed name.
func NewDepartment(name string) (Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Department{}, newValidationError("name", "must not be empty")
	}
	return Department{
		ID:   uuid.NewString(),
		Name: name,
	}, nil
}

// Rename returns a copy with the new name.
func (d Department) Rename(name string) (Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Department{}, newValidationError("name", "must not be empty")
	}
	updated := d
	updated.Name = name
	return updated, nil
}

// Equals compares departments by identity.
func (d Department) Equals(other Department) bool {
	return d.ID == other.ID
}
