package auth

import (
	"context"
	"errors"
	"time"

	"diatrack.example/go-diatrack/internal/models"
	"diatrack.example/go-diatrack/internal/repository"
	"diatrack.example/go-diatrack/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// The demo account created at startup when it does not already exist.
const (
	seedUsername      = "testuser"
	seedPassword      = "testpassword"
	seedFHIRPatientID = "622898"
)

// AuthService owns credential verification and token issuance/resolution.
type AuthService struct {
	users      repository.UserRepository
	jwtSecret  []byte
	defaultTTL time.Duration
	loginTTL   time.Duration
}

func NewAuthService(users repository.UserRepository, secretKey string, defaultTTL, loginTTL time.Duration) (*AuthService, error) {
	if users == nil {
		return nil, errors.New("auth service: user repository cannot be nil")
	}
	if secretKey == "" {
		return nil, errors.New("auth service: jwt secret key cannot be empty")
	}
	if defaultTTL <= 0 || loginTTL <= 0 {
		return nil, errors.New("auth service: token ttl must be positive")
	}
	return &AuthService{
		users:      users,
		jwtSecret:  []byte(secretKey),
		defaultTTL: defaultTTL,
		loginTTL:   loginTTL,
	}, nil
}

// HashPassword returns a salted bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Authenticate looks up the user and verifies the password. Any failure maps
// to ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken mints a signed token for subject. A non-positive ttl falls back
// to the configured default.
func (s *AuthService) IssueToken(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	return jwt.GenerateToken(subject, s.jwtSecret, ttl)
}

// Login authenticates and, on success, issues a token with the login TTL.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.IssueToken(user.Username, s.loginTTL)
}

// ResolveToken verifies the token and returns the user it names. Every
// failure mode collapses into ErrUnauthenticated.
func (s *AuthService) ResolveToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := jwt.ValidateToken(tokenString, s.jwtSecret)
	if err != nil || claims.Subject == "" {
		return nil, ErrUnauthenticated
	}
	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// EnsureSeedUser creates the demo account if it is missing. Safe to call on
// every startup.
func (s *AuthService) EnsureSeedUser(ctx context.Context) error {
	_, err := s.users.FindByUsername(ctx, seedUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := HashPassword(seedPassword)
	if err != nil {
		return err
	}
	patientID := seedFHIRPatientID
	user := &models.User{
		Username:       seedUsername,
		HashedPassword: hashed,
		FHIRPatientID:  &patientID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Another instance may have seeded concurrently.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return err
	}
	return nil
}
