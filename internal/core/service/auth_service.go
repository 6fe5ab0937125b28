package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobportal/job-portal/internal/core/domain"
	"github.com/jobportal/job-portal/internal/core/ports"
)

// AuthService implements registration and login for companies and employees.
//
// Registration creates the identity first and the profile second; if the
// profile write fails the identity is rolled back with a compensating
// delete, so no passworded identity is ever left without a profile.
type AuthService struct {
	identities ports.IdentityRepository
	companies  ports.CompanyRepository
	employees  ports.EmployeeRepository

	jwtSecret   string
	tokenTTL    time.Duration
	minPassword int
	log         zerolog.Logger
}

const defaultMinPassword = 2

func NewAuthService(
	identities ports.IdentityRepository,
	companies ports.CompanyRepository,
	employees ports.EmployeeRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	minPassword int,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if minPassword <= 0 {
		minPassword = defaultMinPassword
	}
	return &AuthService{
		identities:  identities,
		companies:   companies,
		employees:   employees,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		minPassword: minPassword,
		log:         log,
	}
}

func (s *AuthService) RegisterCompany(ctx context.Context, in ports.RegisterCompanyInput) (*domain.Company, error) {
	email := normalizeEmail(in.Email)

	identity, err := s.createIdentity(ctx, email, in.Password, domain.RoleCompany)
	if err != nil {
		return nil, err
	}

	company := &domain.Company{
		ID:          newID(),
		Name:        in.Name,
		Industry:    in.Industry,
		Email:       email,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.companies.Create(ctx, company); err != nil {
		s.rollbackIdentity(ctx, identity.Email)
		return nil, err
	}

	s.log.Info().Str("company_id", company.ID).Str("email", email).Msg("company registered")
	return company, nil
}

func (s *AuthService) RegisterEmployee(ctx context.Context, in ports.RegisterEmployeeInput) (*domain.Employee, error) {
	email := normalizeEmail(in.Email)

	identity, err := s.createIdentity(ctx, email, in.Password, domain.RoleEmployee)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		ID:        newID(),
		FullName:  in.FullName,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		s.rollbackIdentity(ctx, identity.Email)
		return nil, err
	}

	s.log.Info().Str("employee_id", employee.ID).Str("email", email).Msg("employee registered")
	return employee, nil
}

func (s *AuthService) LoginCompany(ctx context.Context, email, password string) (*ports.CompanyLogin, error) {
	identity, err := s.verifyCredentials(ctx, email, password, domain.RoleCompany)
	if err != nil {
		return nil, err
	}

	company, err := s.companies.FindByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			s.log.Error().Str("email", identity.Email).Msg("identity has no company profile")
			return nil, domain.ErrProfileMissing
		}
		return nil, err
	}

	// Token subject is the profile id, not the identity id: it is what
	// downstream handlers key resources on.
	token, err := s.issueToken(company.ID, identity.Email, domain.RoleCompany, company.Name)
	if err != nil {
		return nil, err
	}
	return &ports.CompanyLogin{Token: token, Company: company}, nil
}

func (s *AuthService) LoginEmployee(ctx context.Context, email, password string) (*ports.EmployeeLogin, error) {
	identity, err := s.verifyCredentials(ctx, email, password, domain.RoleEmployee)
	if err != nil {
		return nil, err
	}

	employee, err := s.employees.FindByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			s.log.Error().Str("email", identity.Email).Msg("identity has no employee profile")
			return nil, domain.ErrProfileMissing
		}
		return nil, err
	}

	token, err := s.issueToken(employee.ID, identity.Email, domain.RoleEmployee, employee.FullName)
	if err != nil {
		return nil, err
	}
	return &ports.EmployeeLogin{Token: token, Employee: employee}, nil
}

// createIdentity hashes the password and persists the credential record.
// Email uniqueness is enforced by the store, not checked here first.
func (s *AuthService) createIdentity(ctx context.Context, email, password, role string) (*domain.Identity, error) {
	if len(password) < s.minPassword {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.identities.Create(ctx, &domain.Identity{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// verifyCredentials resolves and checks an identity. Every failure mode
// (unknown email, wrong password, wrong role) collapses into
// ErrInvalidCredentials so callers cannot probe which field was wrong.
func (s *AuthService) verifyCredentials(ctx context.Context, email, password, role string) (*domain.Identity, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.identities.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if identity.Role != role {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return identity, nil
}

func (s *AuthService) rollbackIdentity(ctx context.Context, email string) {
	if err := s.identities.Delete(ctx, email); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("failed to roll back orphaned identity")
	}
}

func (s *AuthService) issueToken(subjectID, email, role, displayName string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subjectID,
		"email": email,
		"role":  role,
		"name":  displayName,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
