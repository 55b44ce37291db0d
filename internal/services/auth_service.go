package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshua-takyi/hallbook/internal/helpers"
	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/supabase-community/gotrue-go/types"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	AdminDisplayName     = "Administrator"
)

var (
	ErrMissingCredentials = errors.New("please enter both username and password")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Authenticator checks a credential pair and reports who signed in.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*models.Identity, error)
}

// StaticAuthenticator knows one admin account; every other non-empty pair
// signs in as a regular user under the given username.
type StaticAuthenticator struct {
	adminUsername string
	adminPassword string
}

func NewStaticAuthenticator(adminUsername, adminPassword string) *StaticAuthenticator {
	if adminUsername == "" {
		adminUsername = DefaultAdminUsername
	}
	if adminPassword == "" {
		adminPassword = DefaultAdminPassword
	}
	return &StaticAuthenticator{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

func (sa *StaticAuthenticator) Authenticate(ctx context.Context, username, password string) (*models.Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if username == sa.adminUsername && password == sa.adminPassword {
		return &models.Identity{Username: AdminDisplayName, Role: models.RoleAdmin}, nil
	}
	return &models.Identity{Username: username, Role: models.RoleUser}, nil
}

// PasswordSignIn is the Supabase call the authenticator depends on.
type PasswordSignIn interface {
	AuthenticateUser(ctx context.Context, email, password string) (*types.TokenResponse, error)
}

// SupabaseAuthenticator signs in through Supabase Auth. Users whose
// app_metadata carries role "admin" get the admin role.
type SupabaseAuthenticator struct {
	client PasswordSignIn
}

func NewSupabaseAuthenticator(client PasswordSignIn) *SupabaseAuthenticator {
	return &SupabaseAuthenticator{client: client}
}

func (sa *SupabaseAuthenticator) Authenticate(ctx context.Context, email, password string) (*models.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidCredentials)
	}

	resp, err := sa.client.AuthenticateUser(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	identity := &models.Identity{
		Username: resp.User.Email,
		Email:    resp.User.Email,
		Role:     models.RoleUser,
	}
	if name, ok := resp.User.UserMetadata["username"].(string); ok && name != "" {
		identity.Username = name
	}
	if role, ok := resp.User.AppMetadata["role"].(string); ok && role == string(models.RoleAdmin) {
		identity.Role = models.RoleAdmin
	}
	return identity, nil
}

type LoginResult struct {
	Session   models.Session `json:"session"`
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// AuthService keeps the signed-in identity in its own slot, separate from
// the booking data, and issues a signed token per login.
type AuthService struct {
	authenticator Authenticator
	repo          models.SlotRepo
	tokens        *helpers.TokenManager
	logger        *slog.Logger
}

func NewAuthService(authenticator Authenticator, repo models.SlotRepo, tokens *helpers.TokenManager, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		authenticator: authenticator,
		repo:          repo,
		tokens:        tokens,
		logger:        logger,
	}
}

func (as *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	identity, err := as.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	session := models.Session{
		Type:            identity.Role,
		Username:        identity.Username,
		IsAuthenticated: true,
	}
	blob, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	if err := as.repo.SetSlot(ctx, models.UserAuthKey, blob); err != nil {
		as.logger.Error("Failed to persist session", "username", session.Username, "error", err)
	}

	token, expiresAt, err := as.tokens.Issue(*identity)
	if err != nil {
		return nil, err
	}

	as.logger.Info("User signed in", "username", session.Username, "role", session.Type)
	return &LoginResult{
		Session:   session,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (as *AuthService) Logout(ctx context.Context) error {
	if err := as.repo.DeleteSlot(ctx, models.UserAuthKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentSession returns the persisted identity, or nil when nobody is
// signed in. An unreadable slot is removed.
func (as *AuthService) CurrentSession(ctx context.Context) (*models.Session, error) {
	blob, err := as.repo.GetSlot(ctx, models.UserAuthKey)
	if errors.Is(err, models.ErrSlotNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(blob, &session); err != nil || !validSession(session) {
		as.logger.Warn("Removing corrupt session slot", "error", err)
		if delErr := as.repo.DeleteSlot(ctx, models.UserAuthKey); delErr != nil {
			as.logger.Error("Failed to remove corrupt session slot", "error", delErr)
		}
		return nil, nil
	}
	return &session, nil
}

func validSession(s models.Session) bool {
	return s.IsAuthenticated && s.Username != "" && (s.Type == models.RoleAdmin || s.Type == models.RoleUser)
}

func (as *AuthService) ValidateToken(token string) (*helpers.Claims, error) {
	return as.tokens.ValidateToken(token)
}
