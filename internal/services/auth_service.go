package services

import (
	"errors"
	"fmt"

	"github.com/hireloop/job-board-api/internal/models"
	"github.com/hireloop/job-board-api/internal/repository"
	"github.com/hireloop/job-board-api/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthorized    = errors.New("unauthorized")
)

// AuthService authenticates the organization and manages token pairs.
type AuthService struct {
	organizationRepo repository.OrganizationRepository
	tokens           *token.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(organizationRepo repository.OrganizationRepository, tokens *token.Manager) *AuthService {
	return &AuthService{
		organizationRepo: organizationRepo,
		tokens:           tokens,
	}
}

// Authenticate verifies the password against the stored bcrypt hash and mints
// an access/refresh pair for the organization.
func (s *AuthService) Authenticate(password string) (*models.Organization, token.Pair, error) {
	organization, err := s.organizationRepo.GetOrganizationInfo()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, token.Pair{}, ErrOrganizationNotCreated
		}
		return nil, token.Pair{}, fmt.Errorf("failed to load organization: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(organization.PasswordHash), []byte(password)); err != nil {
		return nil, token.Pair{}, ErrInvalidPassword
	}

	pair, err := s.tokens.GeneratePair(organization.ID)
	if err != nil {
		return nil, token.Pair{}, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return organization, pair, nil
}

// Refresh verifies a refresh token and mints a new pair. Any verification
// failure surfaces as ErrUnauthorized.
func (s *AuthService) Refresh(refreshToken string) (token.Pair, error) {
	organizationID, err := s.tokens.Verify(refreshToken, token.TypeRefresh)
	if err != nil {
		return token.Pair{}, ErrUnauthorized
	}

	pair, err := s.tokens.GeneratePair(organizationID)
	if err != nil {
		return token.Pair{}, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return pair, nil
}
