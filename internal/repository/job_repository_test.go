package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/hireloop/job-board-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// JobsRepositoryTestSuite defines the test suite for GormJobsRepository
type JobsRepositoryTestSuite struct {
	suite.Suite
	db          *gorm.DB
	repo        JobsRepository
	engineering models.Department
	marketing   models.Department
}

// SetupTest runs before each test
func (suite *JobsRepositoryTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.Department{},
		&models.Job{},
		&models.JobTag{},
	)
	suite.Require().NoError(err)

	suite.repo = NewJobsRepository(suite.db)

	suite.engineering, err = models.NewDepartment("Engineering")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.Create(&suite.engineering).Error)

	suite.marketing, err = models.NewDepartment("Marketing")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.Create(&suite.marketing).Error)
}

// TearDownTest runs after each test
func (suite *JobsRepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

type jobFixture struct {
	title      string
	department string
	workplace  models.WorkplaceLocation
	employment models.EmploymentType
	country    string
	city       string
	salaryMin  *float64
	salaryMax  *float64
	tags       []string
}

func (suite *JobsRepositoryTestSuite) createJob(index int, fixture jobFixture) models.Job {
	departmentID := suite.engineering.ID
	if fixture.department == "Marketing" {
		departmentID = suite.marketing.ID
	}

	input := models.NewJobInput{
		Title:               fixture.title,
		DescriptionMarkdown: "## About the role",
		WorkplaceLocation:   fixture.workplace,
		EmploymentType:      fixture.employment,
		Country:             fixture.country,
		City:                fixture.city,
		SalaryMin:           fixture.salaryMin,
		SalaryMax:           fixture.salaryMax,
		DepartmentID:        departmentID,
		Tags:                fixture.tags,
	}
	if input.WorkplaceLocation == "" {
		input.WorkplaceLocation = models.WorkplaceRemote
	}
	if input.EmploymentType == "" {
		input.EmploymentType = models.EmploymentFullTime
	}
	if input.Country == "" {
		input.Country = "Germany"
	}
	if input.City == "" {
		input.City = "Berlin"
	}

	job, err := models.NewJob(input)
	suite.Require().NoError(err)

	// Deterministic ordering for pagination assertions.
	job.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(index) * time.Minute)
	job.UpdatedAt = job.CreatedAt

	suite.Require().NoError(suite.repo.Create(&job))
	return job
}

func salary(v float64) *float64 {
	return &v
}

func (suite *JobsRepositoryTestSuite) TestFindByID_PreloadsRelations() {
	created := suite.createJob(0, jobFixture{title: "Backend Engineer", tags: []string{"golang"}})

	job, err := suite.repo.FindByID(created.ID)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), created.ID, job.ID)
	assert.Equal(suite.T(), "Engineering", job.Department.Name)
	suite.Require().Len(job.Tags, 1)
	assert.Equal(suite.T(), "golang", job.Tags[0].Name)
}

func (suite *JobsRepositoryTestSuite) TestFindByID_NotFound() {
	_, err := suite.repo.FindByID("missing")
	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *JobsRepositoryTestSuite) TestList_FilterByDepartmentName() {
	suite.createJob(0, jobFixture{title: "Backend Engineer"})
	suite.createJob(1, jobFixture{title: "Content Writer", department: "Marketing"})

	jobs, total, err := suite.repo.List(JobFilter{DepartmentName: "Marketing"})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(jobs, 1)
	assert.Equal(suite.T(), "Content Writer", jobs[0].Title)
}

func (suite *JobsRepositoryTestSuite) TestList_FilterByTitleSubstring() {
	suite.createJob(0, jobFixture{title: "Senior Backend Engineer"})
	suite.createJob(1, jobFixture{title: "Product Designer"})

	jobs, total, err := suite.repo.List(JobFilter{JobTitle: "Backend"})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(jobs, 1)
	assert.Equal(suite.T(), "Senior Backend Engineer", jobs[0].Title)
}

func (suite *JobsRepositoryTestSuite) TestList_FilterByEnums() {
	suite.createJob(0, jobFixture{title: "Remote Role", workplace: models.WorkplaceRemote})
	suite.createJob(1, jobFixture{title: "Office Role", workplace: models.WorkplaceOnSite})
	suite.createJob(2, jobFixture{title: "Intern Role", workplace: models.WorkplaceOnSite, employment: models.EmploymentInternship})

	jobs, total, err := suite.repo.List(JobFilter{WorkplaceLocation: models.WorkplaceOnSite})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(2), total)
	assert.Len(suite.T(), jobs, 2)

	jobs, total, err = suite.repo.List(JobFilter{
		WorkplaceLocation: models.WorkplaceOnSite,
		EmploymentType:    models.EmploymentInternship,
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(jobs, 1)
	assert.Equal(suite.T(), "Intern Role", jobs[0].Title)
}

func (suite *JobsRepositoryTestSuite) TestList_FilterByCountryCaseInsensitive() {
	suite.createJob(0, jobFixture{title: "Berlin Role", country: "Germany", city: "Berlin"})
	suite.createJob(1, jobFixture{title: "Paris Role", country: "France", city: "Paris"})

	jobs, total, err := suite.repo.List(JobFilter{Country: "GERMANY"})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(jobs, 1)
	assert.Equal(suite.T(), "Berlin Role", jobs[0].Title)

	jobs, total, err = suite.repo.List(JobFilter{City: "par"})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(jobs, 1)
	assert.Equal(suite.T(), "Paris Role", jobs[0].Title)
}

func (suite *JobsRepositoryTestSuite) TestList_FilterBySalaryOverlap() {
	suite.createJob(0, jobFixture{title: "Low Range", salaryMin: salary(50000), salaryMax: salary(80000)})
	suite.createJob(1, jobFixture{title: "High Range", salaryMin: salary(90000), salaryMax: salary(120000)})
	suite.createJob(2, jobFixture{title: "No Salary"})

	// Window 85000..125000 overlaps only the high range; jobs without salary
	// data never match an active salary criterion.
	jobs, total, err := suite.repo.List(JobFilter{
		SalaryMin: salary(85000),
		SalaryMax: salary(125000),
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(jobs, 1)
	assert.Equal(suite.T(), "High Range", jobs[0].Title)

	// Boundary overlap counts.
	jobs, total, err = suite.repo.List(JobFilter{SalaryMin: salary(80000)})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(2), total)
	assert.Len(suite.T(), jobs, 2)
}

func (suite *JobsRepositoryTestSuite) TestList_FilterByTagsCaseInsensitiveAny() {
	suite.createJob(0, jobFixture{title: "Go Role", tags: []string{"golang", "kubernetes"}})
	suite.createJob(1, jobFixture{title: "Rust Role", tags: []string{"rust"}})
	suite.createJob(2, jobFixture{title: "Untagged Role"})

	jobs, total, err := suite.repo.List(JobFilter{Tags: []string{"GOLANG", "python"}})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(jobs, 1)
	assert.Equal(suite.T(), "Go Role", jobs[0].Title)
}

func (suite *JobsRepositoryTestSuite) TestList_Pagination() {
	for i := 0; i < 22; i++ {
		suite.createJob(i, jobFixture{title: fmt.Sprintf("Job %02d", i)})
	}

	jobs, total, err := suite.repo.List(JobFilter{Page: 1, ItemsPerPage: 10})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(22), total)
	suite.Require().Len(jobs, 10)
	assert.Equal(suite.T(), "Job 00", jobs[0].Title)
	assert.Equal(suite.T(), "Job 09", jobs[9].Title)

	jobs, total, err = suite.repo.List(JobFilter{Page: 3, ItemsPerPage: 10})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(22), total)
	suite.Require().Len(jobs, 2)
	assert.Equal(suite.T(), "Job 20", jobs[0].Title)
	assert.Equal(suite.T(), "Job 21", jobs[1].Title)

	// A page past the data yields an empty slice, not an error.
	jobs, total, err = suite.repo.List(JobFilter{Page: 10, ItemsPerPage: 10})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(22), total)
	assert.Empty(suite.T(), jobs)
}

func (suite *JobsRepositoryTestSuite) TestUpdate_ReplacesTagSet() {
	created := suite.createJob(0, jobFixture{title: "Backend Engineer", tags: []string{"golang", "kubernetes"}})

	loaded, err := suite.repo.FindByID(created.ID)
	suite.Require().NoError(err)

	updated := loaded.SetTags([]string{"rust"})
	suite.Require().NoError(suite.repo.Update(&updated))

	reloaded, err := suite.repo.FindByID(created.ID)
	suite.Require().NoError(err)
	suite.Require().Len(reloaded.Tags, 1)
	assert.Equal(suite.T(), "rust", reloaded.Tags[0].Name)

	var count int64
	suite.db.Model(&models.JobTag{}).Where("job_id = ?", created.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func TestJobsRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(JobsRepositoryTestSuite))
}
