package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/job-board-api/internal/middleware"
	"github.com/hireloop/job-board-api/internal/models"
	"github.com/hireloop/job-board-api/internal/repository"
	"github.com/hireloop/job-board-api/internal/services"
	"github.com/hireloop/job-board-api/internal/token"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testOrgPassword = "supersecret"

type testEnv struct {
	db           *gorm.DB
	router       *gin.Engine
	tokens       *token.Manager
	organization models.Organization
	department   models.Department
}

// setupTestEnv builds an in-memory database, seeds the organization and one
// department, and wires the full route table the way the server does.
func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Organization{},
		&models.Department{},
		&models.Job{},
		&models.JobTag{},
		&models.JobApplication{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	hash, err := bcrypt.GenerateFromPassword([]byte(testOrgPassword), bcrypt.MinCost)
	require.NoError(t, err)
	organization, err := models.NewOrganization("admin@example.com", string(hash), "Acme")
	require.NoError(t, err)
	require.NoError(t, db.Create(&organization).Error)

	department, err := models.NewDepartment("Engineering")
	require.NoError(t, err)
	require.NoError(t, db.Create(&department).Error)

	tokens := token.NewManager("test-secret", 15*time.Minute, 30*24*time.Hour)

	organizationRepo := repository.NewOrganizationRepository(db)
	departmentsRepo := repository.NewDepartmentsRepository(db)
	jobsRepo := repository.NewJobsRepository(db)
	applicationsRepo := repository.NewJobApplicationsRepository(db)

	authHandler := NewAuthHandler(services.NewAuthService(organizationRepo, tokens))
	orgHandler := NewOrganizationHandler(services.NewOrganizationService(organizationRepo))
	departmentHandler := NewDepartmentHandler(services.NewDepartmentService(departmentsRepo))
	jobHandler := NewJobHandler(services.NewJobService(jobsRepo, departmentsRepo))
	applicationHandler := NewApplicationHandler(services.NewApplicationService(jobsRepo, applicationsRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/sessions", authHandler.Authenticate)
			auth.POST("/refresh", authHandler.Refresh)
		}

		org := api.Group("/organization")
		{
			org.GET("", orgHandler.GetOrganization)
			org.PATCH("", middleware.RequireAuth(tokens), orgHandler.UpdateOrganization)
		}

		departments := api.Group("/departments")
		{
			departments.GET("", departmentHandler.ListDepartments)
			departments.POST("", middleware.RequireAuth(tokens), departmentHandler.CreateDepartment)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.POST("", middleware.RequireAuth(tokens), jobHandler.CreateJob)
			jobs.PATCH("/:id", middleware.RequireAuth(tokens), jobHandler.UpdateJob)
			jobs.POST("/:id/apply", applicationHandler.ApplyToJob)
		}

		applications := api.Group("/applications")
		applications.Use(middleware.RequireAuth(tokens))
		{
			applications.PATCH("/:id/status", applicationHandler.UpdateStatus)
		}
	}

	return testEnv{
		db:           db,
		router:       r,
		tokens:       tokens,
		organization: organization,
		department:   department,
	}
}

// accessToken mints a valid access token for the seeded organization.
func (env testEnv) accessToken(t *testing.T) string {
	t.Helper()
	pair, err := env.tokens.GeneratePair(env.organization.ID)
	require.NoError(t, err)
	return pair.AccessToken
}

// request performs an HTTP request against the test router. A non-empty token
// is sent as a Bearer credential.
func (env testEnv) request(t *testing.T, method, url string, payload any, accessToken string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
