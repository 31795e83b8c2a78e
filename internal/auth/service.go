package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"painterflow/internal/database"
	"painterflow/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrNotConfirmed        = errors.New("email address not confirmed")
	ErrConfirmationPending = errors.New("check your email to confirm your account")
	ErrEmailTaken          = errors.New("an account with this email already exists")
	ErrWeakPassword        = errors.New("password must be at least 6 characters")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidToken        = errors.New("invalid or expired confirmation link")
)

const MinPasswordLength = 6

// Users is the account storage the service needs.
type Users interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)
	UserByConfirmToken(ctx context.Context, token string) (*models.User, error)
	ConfirmUser(ctx context.Context, id string) error
}

type Service struct {
	users               Users
	requireConfirmation bool
	cost                int
	now                 func() time.Time
}

func NewService(users Users, requireConfirmation bool) *Service {
	return &Service{
		users:               users,
		requireConfirmation: requireConfirmation,
		cost:                bcrypt.DefaultCost,
		now:                 time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) session(u *models.User) *Session {
	return &Session{UserID: u.ID, Email: u.Email, SignedInAt: s.now().UTC()}
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.users.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.Confirmed {
		return nil, ErrNotConfirmed
	}
	return s.session(u), nil
}

// SignUp creates an account. When confirmation is required the account stays
// pending and ErrConfirmationPending is returned instead of a session.
func (s *Service) SignUp(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Confirmed:    !s.requireConfirmation,
	}
	if s.requireConfirmation {
		token := uuid.NewString()
		u.ConfirmToken = &token
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.requireConfirmation {
		log.Printf("confirmation link for %s: /confirm?token=%s", u.Email, *u.ConfirmToken)
		return nil, ErrConfirmationPending
	}
	return s.session(u), nil
}

// Confirm activates the account holding token and signs it in.
func (s *Service) Confirm(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	u, err := s.users.UserByConfirmToken(ctx, token)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if err := s.users.ConfirmUser(ctx, u.ID); err != nil {
		return nil, fmt.Errorf("confirm user: %w", err)
	}
	return s.session(u), nil
}

// Exists reports whether the account behind a session is still there.
func (s *Service) Exists(ctx context.Context, userID string) (bool, error) {
	_, err := s.users.UserByID(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}
