package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidSalaryRange is returned when a job would end up with
// salaryMin > salaryMax after a create or update.
var ErrInvalidSalaryRange = errors.New("minimum salary cannot be greater than maximum salary")

type WorkplaceLocation string

const (
	WorkplaceRemote WorkplaceLocation = "REMOTE"
	WorkplaceHybrid WorkplaceLocation = "HYBRID"
	WorkplaceOnSite WorkplaceLocation = "ON_SITE"
)

func (w WorkplaceLocation) IsValid() bool {
	switch w {
	case WorkplaceRemote, WorkplaceHybrid, WorkplaceOnSite:
		return true
	}
	return false
}

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentInternship EmploymentType = "INTERNSHIP"
	EmploymentContractor EmploymentType = "CONTRACTOR"
)

func (e EmploymentType) IsValid() bool {
	switch e {
	case EmploymentFullTime, EmploymentPartTime, EmploymentInternship, EmploymentContractor:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
)

func (s JobStatus) IsValid() bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

// JobTag is a label owned by a job. Names are deduplicated case-insensitively
// when added one at a time.
type JobTag struct {
	ID    string `gorm:"type:char(36);primarykey" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	JobID string `gorm:"type:char(36);index;not null" json:"-"`
}

// Job is a posting owned by a department. Every mutator returns a new Job
// value instead of mutating in place; UpdatedAt is refreshed on each one.
type Job struct {
	ID                  string            `gorm:"type:char(36);primarykey" json:"id"`
	Title               string            `gorm:"type:varchar(255);not null" json:"title"`
	DescriptionMarkdown string            `gorm:"type:text;not null" json:"description_markdown"`
	WorkplaceLocation   WorkplaceLocation `gorm:"type:varchar(20);not null" json:"workplace_location"`
	EmploymentType      EmploymentType    `gorm:"type:varchar(20);not null" json:"employment_type"`
	Country             string            `gorm:"type:varchar(255);not null" json:"country"`
	City                string            `gorm:"type:varchar(255);not null" json:"city"`
	ZipCode             *string           `gorm:"type:varchar(20)" json:"zip_code,omitempty"`
	SalaryMin           *float64          `json:"salary_min,omitempty"`
	SalaryMax           *float64          `json:"salary_max,omitempty"`
	Status              JobStatus         `gorm:"type:varchar(20);not null;default:'OPEN'" json:"status"`
	DepartmentID        string            `gorm:"type:char(36);index;not null" json:"department_id"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`

	// Relations
	Tags       []JobTag   `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"tags"`
	Department Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// NewJobInput carries everything needed to construct a job.
type NewJobInput struct {
	Title               string
	DescriptionMarkdown string
	WorkplaceLocation   WorkplaceLocation
	EmploymentType      EmploymentType
	Country             string
	City                string
	ZipCode             *string
	SalaryMin           *float64
	SalaryMax           *float64
	Status              JobStatus
	DepartmentID        string
	Tags                []string
}

// NewJob validates the input and constructs a job with a fresh id and
// timestamps. Status defaults to OPEN, tags to the empty set.
func NewJob(input NewJobInput) (Job, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return Job{}, newValidationError("title", "must not be empty")
	}
	description := strings.TrimSpace(input.DescriptionMarkdown)
	if description == "" {
		return Job{}, newValidationError("descriptionMarkdown", "must not be empty")
	}
	if !input.WorkplaceLocation.IsValid() {
		return Job{}, newValidationError("workplaceLocation", "must be one of REMOTE, HYBRID, ON_SITE")
	}
	if !input.EmploymentType.IsValid() {
		return Job{}, newValidationError("employmentType", "must be one of FULL_TIME, PART_TIME, INTERNSHIP, CONTRACTOR")
	}
	location, err := NewLocation(input.Country, input.City, input.ZipCode)
	if err != nil {
		return Job{}, err
	}
	if err := validateSalaryBounds(input.SalaryMin, input.SalaryMax); err != nil {
		return Job{}, err
	}
	status := input.Status
	if status == "" {
		status = JobStatusOpen
	}
	if !status.IsValid() {
		return Job{}, newValidationError("status", "must be one of OPEN, CLOSED")
	}
	if input.DepartmentID == "" {
		return Job{}, newValidationError("departmentId", "must not be empty")
	}

	now := time.Now()
	job := Job{
		ID:                  uuid.NewString(),
		Title:               title,
		DescriptionMarkdown: description,
		WorkplaceLocation:   input.WorkplaceLocation,
		EmploymentType:      input.EmploymentType,
		Country:             location.Country,
		City:                location.City,
		ZipCode:             location.ZipCode,
		SalaryMin:           input.SalaryMin,
		SalaryMax:           input.SalaryMax,
		Status:              status,
		DepartmentID:        input.DepartmentID,
		Tags:                []JobTag{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return job.SetTags(input.Tags), nil
}

func validateSalaryBounds(min, max *float64) error {
	if min != nil && *min <= 0 {
		return newValidationError("salaryMin", "must be a positive number")
	}
	if max != nil && *max <= 0 {
		return newValidationError("salaryMax", "must be a positive number")
	}
	if min != nil && max != nil && *min > *max {
		return ErrInvalidSalaryRange
	}
	return nil
}

// JobPatch carries the fields to change on an existing job. Nil pointers keep
// the current value; the Clear flags reset nullable fields to null.
type JobPatch struct {
	Title               *string
	DescriptionMarkdown *string
	WorkplaceLocation   *WorkplaceLocation
	EmploymentType      *EmploymentType
	Country             *string
	City                *string
	ZipCode             *string
	ClearZipCode        bool
	SalaryMin           *float64
	ClearSalaryMin      bool
	SalaryMax           *float64
	ClearSalaryMax      bool
	DepartmentID        *string
}

// Update applies a partial patch and returns the resulting job. The salary
// invariant is re-validated against the merged min/max before anything is
// applied.
func (j Job) Update(patch JobPatch) (Job, error) {
	mergedMin := j.SalaryMin
	if patch.ClearSalaryMin {
		mergedMin = nil
	} else if patch.SalaryMin != nil {
		mergedMin = patch.SalaryMin
	}
	mergedMax := j.SalaryMax
	if patch.ClearSalaryMax {
		mergedMax = nil
	} else if patch.SalaryMax != nil {
		mergedMax = patch.SalaryMax
	}
	if err := validateSalaryBounds(mergedMin, mergedMax); err != nil {
		return Job{}, err
	}

	updated := j.clone()
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return Job{}, newValidationError("title", "must not be empty")
		}
		updated.Title = title
	}
	if patch.DescriptionMarkdown != nil {
		description := strings.TrimSpace(*patch.DescriptionMarkdown)
		if description == "" {
			return Job{}, newValidationError("descriptionMarkdown", "must not be empty")
		}
		updated.DescriptionMarkdown = description
	}
	if patch.WorkplaceLocation != nil {
		if !patch.WorkplaceLocation.IsValid() {
			return Job{}, newValidationError("workplaceLocation", "must be one of REMOTE, HYBRID, ON_SITE")
		}
		updated.WorkplaceLocation = *patch.WorkplaceLocation
	}
	if patch.EmploymentType != nil {
		if !patch.EmploymentType.IsValid() {
			return Job{}, newValidationError("employmentType", "must be one of FULL_TIME, PART_TIME, INTERNSHIP, CONTRACTOR")
		}
		updated.EmploymentType = *patch.EmploymentType
	}
	if patch.Country != nil || patch.City != nil {
		country := updated.Country
		if patch.Country != nil {
			country = *patch.Country
		}
		city := updated.City
		if patch.City != nil {
			city = *patch.City
		}
		location, err := NewLocation(country, city, updated.ZipCode)
		if err != nil {
			return Job{}, err
		}
		updated.Country = location.Country
		updated.City = location.City
	}
	if patch.ClearZipCode {
		updated.ZipCode = nil
	} else if patch.ZipCode != nil {
		trimmed := strings.TrimSpace(*patch.ZipCode)
		updated.ZipCode = &trimmed
	}
	updated.SalaryMin = mergedMin
	updated.SalaryMax = mergedMax
	if patch.DepartmentID != nil {
		if *patch.DepartmentID == "" {
			return Job{}, newValidationError("departmentId", "must not be empty")
		}
		updated.DepartmentID = *patch.DepartmentID
	}
	updated.UpdatedAt = time.Now()
	return updated, nil
}

func (j Job) IsOpen() bool {
	return j.Status == JobStatusOpen
}

func (j Job) IsClosed() bool {
	return j.Status == JobStatusClosed
}

// Open returns a copy with status OPEN. Calling it on an already open job is
// allowed and simply re-stamps UpdatedAt.
func (j Job) Open() Job {
	updated := j.clone()
	updated.Status = JobStatusOpen
	updated.UpdatedAt = time.Now()
	return updated
}

// Close returns a copy with status CLOSED. Idempotent in the same way Open is.
func (j Job) Close() Job {
	updated := j.clone()
	updated.Status = JobStatusClosed
	updated.UpdatedAt = time.Now()
	return updated
}

// AddTag appends a tag unless an equal tag already exists, compared
// case-insensitively.
func (j Job) AddTag(name string) Job {
	name = strings.TrimSpace(name)
	for _, tag := range j.Tags {
		if strings.EqualFold(tag.Name, name) {
			return j
		}
	}
	updated := j.clone()
	updated.Tags = append(updated.Tags, JobTag{
		ID:    uuid.NewString(),
		Name:  name,
		JobID: j.ID,
	})
	updated.UpdatedAt = time.Now()
	return updated
}

// RemoveTag drops every tag whose name matches case-insensitively.
func (j Job) RemoveTag(name string) Job {
	updated := j.clone()
	kept := make([]JobTag, 0, len(updated.Tags))
	for _, tag := range updated.Tags {
		if !strings.EqualFold(tag.Name, name) {
			kept = append(kept, tag)
		}
	}
	updated.Tags = kept
	updated.UpdatedAt = time.Now()
	return updated
}

// SetTags replaces the whole tag set, deduplicating by trimmed name.
func (j Job) SetTags(names []string) Job {
	updated := j.clone()
	seen := make(map[string]struct{}, len(names))
	tags := make([]JobTag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		tags = append(tags, JobTag{
			ID:    uuid.NewString(),
			Name:  name,
			JobID: j.ID,
		})
	}
	updated.Tags = tags
	updated.UpdatedAt = time.Now()
	return updated
}

func (j Job) HasSalaryRange() bool {
	return j.SalaryMin != nil && j.SalaryMax != nil
}

// IsInSalaryRange reports whether the salary falls inside the job's range.
// Jobs without a full range accept any salary.
func (j Job) IsInSalaryRange(salary float64) bool {
	if !j.HasSalaryRange() {
		return true
	}
	return salary >= *j.SalaryMin && salary <= *j.SalaryMax
}

// FullLocation renders the job's address, zip code first when present.
func (j Job) FullLocation() string {
	location := Location{Country: j.Country, City: j.City, ZipCode: j.ZipCode}
	return location.FullAddress()
}

// JobFilterCriteria is the per-job filter predicate input. Zero values mean
// "no filter" for the corresponding field.
type JobFilterCriteria struct {
	JobTitle          string
	WorkplaceLocation WorkplaceLocation
	EmploymentType    EmploymentType
	Country           string
	City              string
	SalaryMin         *float64
	SalaryMax         *float64
	Tags              []string
}

// MatchesFilters reports whether the job satisfies every supplied criterion.
// Title matching is a case-sensitive substring test; country and city are
// case-insensitive substring tests. Salary criteria are a range-overlap test:
// a job with no salary data fails any active salary criterion. Tags match if
// the job carries any of the requested names, case-insensitively.
func (j Job) MatchesFilters(criteria JobFilterCriteria) bool {
	if criteria.JobTitle != "" && !strings.Contains(j.Title, criteria.JobTitle) {
		return false
	}
	if criteria.WorkplaceLocation != "" && j.WorkplaceLocation != criteria.WorkplaceLocation {
		return false
	}
	if criteria.EmploymentType != "" && j.EmploymentType != criteria.EmploymentType {
		return false
	}
	if criteria.Country != "" && !strings.Contains(strings.ToLower(j.Country), strings.ToLower(criteria.Country)) {
		return false
	}
	if criteria.City != "" && !strings.Contains(strings.ToLower(j.City), strings.ToLower(criteria.City)) {
		return false
	}
	if criteria.SalaryMin != nil && (j.SalaryMax == nil || *j.SalaryMax < *criteria.SalaryMin) {
		return false
	}
	if criteria.SalaryMax != nil && (j.SalaryMin == nil || *j.SalaryMin > *criteria.SalaryMax) {
		return false
	}
	if len(criteria.Tags) > 0 {
		matched := false
		for _, want := range criteria.Tags {
			for _, tag := range j.Tags {
				if strings.EqualFold(tag.Name, want) {
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func (j Job) clone() Job {
	copied := j
	copied.Tags = make([]JobTag, len(j.Tags))
	copy(copied.Tags, j.Tags)
	return copied
}
