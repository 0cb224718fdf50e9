package repository

import (
	"strings"

	"github.com/hireloop/job-board-api/internal/models"
	"gorm.io/gorm"
)

// GormJobsRepository is a GORM implementation of JobsRepository
type GormJobsRepository struct {
	db *gorm.DB
}

// NewJobsRepository creates a new JobsRepository
func NewJobsRepository(db *gorm.DB) JobsRepository {
	return &GormJobsRepository{db: db}
}

// Create persists a new job with its tags
func (r *GormJobsRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// FindByID finds a job by ID with tags and department loaded
func (r *GormJobsRepository) FindByID(id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.Preload("Tags").Preload("Department").
		Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves jobs matching the filter, ordered by creation time, with the
// pre-pagination total. Salary criteria are a range-overlap test: jobs whose
// own bound is null fail any active salary criterion.
func (r *GormJobsRepository) List(filter JobFilter) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{})

	if filter.DepartmentName != "" {
		departmentSubQuery := r.db.Model(&models.Department{}).
			Select("1").
			Where("departments.id = jobs.department_id").
			Where("departments.name = ?", filter.DepartmentName)
		query = query.Where("EXISTS (?)", departmentSubQuery)
	}
	if filter.JobTitle != "" {
		query = query.Where("jobs.title LIKE ?", "%"+filter.JobTitle+"%")
	}
	if filter.SalaryMin != nil {
		query = query.Where("jobs.salary_max IS NOT NULL AND jobs.salary_max >= ?", *filter.SalaryMin)
	}
	if filter.SalaryMax != nil {
		query = query.Where("jobs.salary_min IS NOT NULL AND jobs.salary_min <= ?", *filter.SalaryMax)
	}
	if filter.WorkplaceLocation != "" {
		query = query.Where("jobs.workplace_location = ?", filter.WorkplaceLocation)
	}
	if filter.EmploymentType != "" {
		query = query.Where("jobs.employment_type = ?", filter.EmploymentType)
	}
	if filter.Country != "" {
		query = query.Where("LOWER(jobs.country) LIKE ?", "%"+strings.ToLower(filter.Country)+"%")
	}
	if filter.City != "" {
		query = query.Where("LOWER(jobs.city) LIKE ?", "%"+strings.ToLower(filter.City)+"%")
	}
	if len(filter.Tags) > 0 {
		lowered := make([]string, len(filter.Tags))
		for i, tag := range filter.Tags {
			lowered[i] = strings.ToLower(strings.TrimSpace(tag))
		}
		tagSubQuery := r.db.Model(&models.JobTag{}).
			Select("1").
			Where("job_tags.job_id = jobs.id").
			Where("LOWER(job_tags.name) IN ?", lowered)
		query = query.Where("EXISTS (?)", tagSubQuery)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("jobs.created_at ASC")
	if filter.Page > 0 && filter.ItemsPerPage > 0 {
		offset := (filter.Page - 1) * filter.ItemsPerPage
		listQuery = listQuery.Offset(offset).Limit(filter.ItemsPerPage)
	}

	var jobs []models.Job
	if err := listQuery.Preload("Tags").Preload("Department").Find(&jobs).Error; err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// Update persists a job, replacing its tag set in a single transaction.
func (r *GormJobsRepository) Update(job *models.Job) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.JobTag{}).Error; err != nil {
			return err
		}

		if err := tx.Omit("Tags", "Department").Save(job).Error; err != nil {
			return err
		}

		if len(job.Tags) > 0 {
			if err := tx.Create(&job.Tags).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
