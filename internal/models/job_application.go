package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidStatusTransition is returned when an application status change is
// not allowed by the transition table.
var ErrInvalidStatusTransition = errors.New("invalid application status transition")

type ApplicationStatus string

const (
	ApplicationPending      ApplicationStatus = "PENDING"
	ApplicationReviewing    ApplicationStatus = "REVIEWING"
	ApplicationInterviewing ApplicationStatus = "INTERVIEWING"
	ApplicationHired        ApplicationStatus = "HIRED"
	ApplicationRejected     ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewing, ApplicationInterviewing, ApplicationHired, ApplicationRejected:
		return true
	}
	return false
}

// applicationTransitions is the full transition table. HIRED and REJECTED are
// terminal.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:      {ApplicationReviewing, ApplicationRejected},
	ApplicationReviewing:    {ApplicationInterviewing, ApplicationHired, ApplicationRejected},
	ApplicationInterviewing: {ApplicationHired, ApplicationRejected},
	ApplicationHired:        {},
	ApplicationRejected:     {},
}

// JobApplication is a candidate's submission against a job, tracked through
// the review pipeline. At most one application exists per (email, job) pair,
// enforced by a composite unique index.
type JobApplication struct {
	ID        string            `gorm:"type:char(36);primarykey" json:"id"`
	Email     string            `gorm:"type:varchar(255);not null;uniqueIndex:idx_job_applications_email_job" json:"email"`
	FirstName string            `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string            `gorm:"type:varchar(255);not null" json:"last_name"`
	Phone     *string           `gorm:"type:varchar(50)" json:"phone,omitempty"`
	ResumeURL *string           `gorm:"type:varchar(2048)" json:"resume_url,omitempty"`
	JobID     string            `gorm:"type:char(36);not null;uniqueIndex:idx_job_applications_email_job" json:"job_id"`
	Status    ApplicationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewJobApplicationInput carries everything needed to construct an
// application. Email, Phone and ResumeURL must already have passed through
// their value objects.
type NewJobApplicationInput struct {
	Email     Email
	FirstName string
	LastName  string
	Phone     *Phone
	ResumeURL *URL
	JobID     string
}

// NewJobApplication constructs a PENDING application with a fresh id.
func NewJobApplication(input NewJobApplicationInput) (JobApplication, error) {
	if input.JobID == "" {
		return JobApplication{}, newValidationError("jobId", "must not be empty")
	}
	application := JobApplication{
		ID:        uuid.NewString(),
		Email:     input.Email.String(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		JobID:     input.JobID,
		Status:    ApplicationPending,
		CreatedAt: time.Now(),
	}
	if input.Phone != nil {
		phone := input.Phone.String()
		application.Phone = &phone
	}
	if input.ResumeURL != nil {
		resume := input.ResumeURL.String()
		application.ResumeURL = &resume
	}
	return application, nil
}

// CanTransitionTo is a pure predicate over the transition table.
func (a JobApplication) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[a.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// UpdateStatus moves the application to the next status, failing when the
// transition table does not allow the edge.
func (a JobApplication) UpdateStatus(next ApplicationStatus) (JobApplication, error) {
	if !next.IsValid() {
		return JobApplication{}, newValidationError("status", "must be one of PENDING, REVIEWING, INTERVIEWING, HIRED, REJECTED")
	}
	if !a.CanTransitionTo(next) {
		return JobApplication{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, a.Status, next)
	}
	updated := a
	updated.Status = next
	return updated, nil
}

// StartReview moves a pending application into review.
func (a JobApplication) StartReview() (JobApplication, error) {
	return a.UpdateStatus(ApplicationReviewing)
}

// StartInterview moves an application in review into interviewing.
func (a JobApplication) StartInterview() (JobApplication, error) {
	return a.UpdateStatus(ApplicationInterviewing)
}

// Hire marks the application as hired. Only applications in REVIEWING or
// INTERVIEWING can be hired.
func (a JobApplication) Hire() (JobApplication, error) {
	if a.Status != ApplicationReviewing && a.Status != ApplicationInterviewing {
		return JobApplication{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, a.Status, ApplicationHired)
	}
	return a.UpdateStatus(ApplicationHired)
}

// Reject marks the application as rejected. Rejecting an already rejected
// application is a permitted no-op; rejecting a hired one always fails.
func (a JobApplication) Reject() (JobApplication, error) {
	if a.Status == ApplicationRejected {
		return a, nil
	}
	if a.Status == ApplicationHired {
		return JobApplication{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, a.Status, ApplicationRejected)
	}
	return a.UpdateStatus(ApplicationRejected)
}
