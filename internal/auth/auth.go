// Package auth signs users in and registers new accounts. Sessions are
// stateless bearer tokens issued by middleware.SignJWT.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"campusfund/internal/domain"
	"campusfund/internal/middleware"
)

const minPasswordLength = 6

// RegisterInput is the sign-up payload.
type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	StudentID       string `json:"studentId,omitempty"`
	Department      string `json:"department,omitempty"`
}

// Validate checks the sign-up payload.
func (in RegisterInput) Validate() error {
	var ve domain.ValidationError
	if utf8.RuneCountInString(strings.TrimSpace(in.Name)) < 2 {
		ve.Add("name", "Name must be at least 2 characters long")
	}
	if !domain.ValidEmail(in.Email) {
		ve.Add("email", "Please enter a valid email address")
	}
	if len(in.Password) < minPasswordLength {
		ve.Add("password", "Password must be at least 6 characters long")
	}
	if in.Password != in.ConfirmPassword {
		ve.Add("confirmPassword", "Passwords don't match")
	}
	switch domain.UserRole(in.Role) {
	case domain.UserRoleStudent, domain.UserRoleFaculty, domain.UserRoleDonor:
	default:
		ve.Add("role", "Role must be student, faculty or donor")
	}
	return ve.OrNil()
}

// Session is a signed-in user and their bearer token.
type Session struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// Service implements login, registration and profile lookup.
type Service struct {
	users  domain.UserRepository
	secret string
	ttl    time.Duration
	logger zerolog.Logger
	now    func() time.Time
}

// NewService wires the auth service. Tokens are signed with secret and live
// for ttl.
func NewService(users domain.UserRepository, secret string, ttl time.Duration, logger zerolog.Logger) *Service {
	return &Service{users: users, secret: secret, ttl: ttl, logger: logger, now: time.Now}
}

// Login checks the credentials and issues a token. Unknown emails and wrong
// passwords both yield domain.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Debug().Str("user_id", user.ID).Msg("password mismatch")
		return nil, domain.ErrInvalidCredentials
	}
	return s.issue(user)
}

// Register creates an unverified account and signs it in.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Role:         domain.UserRole(in.Role),
		StudentID:    strings.TrimSpace(in.StudentID),
		Department:   strings.TrimSpace(in.Department),
		PasswordHash: string(hash),
		IsVerified:   false,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return s.issue(user)
}

// Me returns the profile of the signed-in user.
func (s *Service) Me(ctx context.Context, userID string) (*domain.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) issue(user *domain.User) (*Session, error) {
	token, err := middleware.SignJWT(s.secret, user.ID, string(user.Role), user.Name, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	out := *user
	out.PasswordHash = ""
	return &Session{User: &out, Token: token, ExpiresAt: s.now().Add(s.ttl).UTC()}, nil
}
