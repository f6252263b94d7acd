package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"medscanapi/internal/auth"
	"medscanapi/internal/config"
	"medscanapi/internal/model"
	"medscanapi/internal/repository"
)

// LoginResult is the payload returned on a successful login.
type LoginResult struct {
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
	ExpiresIn int         `json:"expires_in"`
	User      *model.User `json:"user"`
}

// AuthService authenticates users and resolves the current account.
type AuthService interface {
	// Login verifies credentials and issues an access token. Unknown email
	// and wrong password both return ErrInvalidCredentials; suspended or
	// inactive accounts return ErrAccountInactive.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// CurrentUser returns the account behind an authenticated request.
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	audit  repository.AuditRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService constructs an AuthService signing tokens with the configured
// secret.
func NewAuthService(users repository.UserRepository, audit repository.AuditRepository, cfg config.AuthConfig) AuthService {
	return &authService{
		users:  users,
		audit:  audit,
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.TokenExpiryHours) * time.Hour,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Status != model.StatusActive {
		return nil, ErrAccountInactive
	}

	token, err := auth.Sign(s.secret, user.ID, user.Role, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		logJSON(map[string]any{"level": "warn", "msg": "update last_login failed", "user_id": user.ID, "error": err.Error()})
	}
	s.recordAudit(ctx, user.ID, model.AuditLogin, "user", user.ID, map[string]any{"email": user.Email})

	last := now
	user.LastLogin = &last

	return &LoginResult{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int(s.ttl.Seconds()),
		User:      user,
	}, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// recordAudit appends to the audit trail without failing the caller.
func (s *authService) recordAudit(ctx context.Context, userID, action, entityType, entityID string, detail map[string]any) {
	entry := &model.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}
	if err := s.audit.Insert(ctx, entry); err != nil {
		logJSON(map[string]any{"level": "warn", "msg": "audit write failed", "action": action, "error": err.Error()})
	}
}
