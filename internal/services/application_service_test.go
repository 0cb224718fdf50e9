package services

import (
	"testing"

	"github.com/hireloop/job-board-api/internal/models"
	"github.com/hireloop/job-board-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ApplicationServiceTestSuite defines the test suite for ApplicationService
type ApplicationServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ApplicationService
	job     *models.Job
}

// SetupTest runs before each test
func (suite *ApplicationServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.Department{},
		&models.Job{},
		&models.JobTag{},
		&models.JobApplication{},
	)
	suite.Require().NoError(err)

	jobsRepo := repository.NewJobsRepository(suite.db)
	suite.service = NewApplicationService(jobsRepo, repository.NewJobApplicationsRepository(suite.db))

	department, err := models.NewDepartment("Engineering")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.Create(&department).Error)

	job, err := models.NewJob(models.NewJobInput{
		Title:               "Backend Engineer",
		DescriptionMarkdown: "## About the role",
		WorkplaceLocation:   models.WorkplaceRemote,
		EmploymentType:      models.EmploymentFullTime,
		Country:             "Germany",
		City:                "Berlin",
		DepartmentID:        department.ID,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(jobsRepo.Create(&job))
	suite.job = &job
}

// TearDownTest runs after each test
func (suite *ApplicationServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ApplicationServiceTestSuite) validInput() ApplyToJobInput {
	return ApplyToJobInput{
		JobID:     suite.job.ID,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
	}
}

func (suite *ApplicationServiceTestSuite) TestApplyToJob_Success() {
	phone := "+1 555 123 4567"
	resume := "https://example.com/resume.pdf"
	input := suite.validInput()
	input.Phone = &phone
	input.ResumeURL = &resume

	application, err := suite.service.ApplyToJob(input)
	suite.Require().NoError(err)

	assert.NotEmpty(suite.T(), application.ID)
	assert.Equal(suite.T(), models.ApplicationPending, application.Status)
	assert.Equal(suite.T(), "jane.doe@example.com", application.Email)
	suite.Require().NotNil(application.Phone)
	assert.Equal(suite.T(), phone, *application.Phone)
	suite.Require().NotNil(application.ResumeURL)
	assert.Equal(suite.T(), resume, *application.ResumeURL)
}

func (suite *ApplicationServiceTestSuite) TestApplyToJob_NormalizesEmail() {
	input := suite.validInput()
	input.Email = "  Jane.Doe@Example.COM "

	application, err := suite.service.ApplyToJob(input)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "jane.doe@example.com", application.Email)
}

func (suite *ApplicationServiceTestSuite) TestApplyToJob_DuplicateEmail() {
	_, err := suite.service.ApplyToJob(suite.validInput())
	suite.Require().NoError(err)

	_, err = suite.service.ApplyToJob(suite.validInput())
	assert.ErrorIs(suite.T(), err, ErrApplicationAlreadySubmitted)
}

func (suite *ApplicationServiceTestSuite) TestApplyToJob_DuplicateEmailDifferentCase() {
	_, err := suite.service.ApplyToJob(suite.validInput())
	suite.Require().NoError(err)

	input := suite.validInput()
	input.Email = "JANE.DOE@example.com"
	_, err = suite.service.ApplyToJob(input)
	assert.ErrorIs(suite.T(), err, ErrApplicationAlreadySubmitted)
}

func (suite *ApplicationServiceTestSuite) TestApplyToJob_SameEmailDifferentJob() {
	_, err := suite.service.ApplyToJob(suite.validInput())
	suite.Require().NoError(err)

	other, err := models.NewJob(models.NewJobInput{
		Title:               "Frontend Engineer",
		DescriptionMarkdown: "## About the role",
		WorkplaceLocation:   models.WorkplaceHybrid,
		EmploymentType:      models.EmploymentFullTime,
		Country:             "Germany",
		City:                "Berlin",
		DepartmentID:        suite.job.DepartmentID,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.Create(&other).Error)

	input := suite.validInput()
	input.JobID = other.ID
	application, err := suite.service.ApplyToJob(input)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), other.ID, application.JobID)
}

func (suite *ApplicationServiceTestSuite) TestApplyToJob_ClosedJob() {
	closed := suite.job.Close()
	suite.Require().NoError(repository.NewJobsRepository(suite.db).Update(&closed))

	_, err := suite.service.ApplyToJob(suite.validInput())
	assert.ErrorIs(suite.T(), err, ErrJobClosed)
}

func (suite *ApplicationServiceTestSuite) TestApplyToJob_JobNotFound() {
	input := suite.validInput()
	input.JobID = "missing"

	_, err := suite.service.ApplyToJob(input)
	assert.ErrorIs(suite.T(), err, ErrJobNotFound)
}

func (suite *ApplicationServiceTestSuite) TestApplyToJob_InvalidEmail() {
	input := suite.validInput()
	input.Email = "not-an-email"

	_, err := suite.service.ApplyToJob(input)
	var validationErr *models.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
}

func (suite *ApplicationServiceTestSuite) TestApplyToJob_InvalidResumeURL() {
	resume := "not a url"
	input := suite.validInput()
	input.ResumeURL = &resume

	_, err := suite.service.ApplyToJob(input)
	var validationErr *models.ValidationError
	assert.ErrorAs(suite.T(), err, &validationErr)
}

func (suite *ApplicationServiceTestSuite) TestUpdateApplicationStatus_ValidTransition() {
	application, err := suite.service.ApplyToJob(suite.validInput())
	suite.Require().NoError(err)

	updated, err := suite.service.UpdateApplicationStatus(application.ID, models.ApplicationReviewing)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.ApplicationReviewing, updated.Status)

	var stored models.JobApplication
	suite.Require().NoError(suite.db.Where("id = ?", application.ID).First(&stored).Error)
	assert.Equal(suite.T(), models.ApplicationReviewing, stored.Status)
}

func (suite *ApplicationServiceTestSuite) TestUpdateApplicationStatus_InvalidTransition() {
	application, err := suite.service.ApplyToJob(suite.validInput())
	suite.Require().NoError(err)

	_, err = suite.service.UpdateApplicationStatus(application.ID, models.ApplicationHired)
	assert.ErrorIs(suite.T(), err, models.ErrInvalidStatusTransition)
}

func (suite *ApplicationServiceTestSuite) TestUpdateApplicationStatus_NotFound() {
	_, err := suite.service.UpdateApplicationStatus("missing", models.ApplicationReviewing)
	assert.ErrorIs(suite.T(), err, ErrApplicationNotFound)
}

func TestApplicationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}
