// Package services contains the application services of the MindAnalyzer
// client. This file defines the session service: register, login, logout,
// restoring a persisted token and forced expiry.
package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/mindanalyzer/internal/client/client"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/models"
	"github.com/dmitrijs2005/mindanalyzer/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mindanalyzer/internal/common"
	"github.com/dmitrijs2005/mindanalyzer/internal/i18n"
	"github.com/dmitrijs2005/mindanalyzer/internal/logging"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SessionStore is the part of AuthService other services depend on.
type SessionStore interface {
	Session() models.Session
	// Expire clears the session if it still holds token.
	Expire(ctx context.Context, token string)
}

// AuthService manages the single client session.
//
// Contract:
//   - Register/Login: validate input locally, call the backend, keep the
//     returned token and user in memory and persist the token.
//   - Logout: clear memory and storage unconditionally; idempotent.
//   - Restore: load a persisted token without any network call.
//   - Session/State: snapshot of the current session.
//   - LastUsername: the username of the last successful login, for prompts.
//   - TokenExpiry: expiry read from the token's claims, display only.
type AuthService interface {
	SessionStore
	Register(ctx context.Context, username, email string, password []byte, lang i18n.Language) (models.Session, error)
	Login(ctx context.Context, username string, password []byte, lang i18n.Language) (models.Session, error)
	Logout(ctx context.Context)
	Restore(ctx context.Context) (models.Session, error)
	State() models.AuthState
	LastUsername(ctx context.Context) string
	TokenExpiry() (time.Time, bool)
}

type authService struct {
	client client.Client
	store  metadata.Repository
	logger logging.Logger

	mu      sync.RWMutex
	session models.Session
}

// NewAuthService constructs an AuthService bound to the API client and the
// durable store.
func NewAuthService(c client.Client, store metadata.Repository, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &authService{client: c, store: store, logger: logger}
}

// Register validates that all fields are present and the email looks like
// an address, then creates the account and starts a session.
func (a *authService) Register(ctx context.Context, username, email string, password []byte, lang i18n.Language) (models.Session, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	switch {
	case username == "":
		return models.Session{}, required(FieldUsername)
	case email == "":
		return models.Session{}, required(FieldEmail)
	case !emailPattern.MatchString(email):
		return models.Session{}, &ValidationError{Field: FieldEmail, Reason: ReasonInvalidEmail}
	case len(password) == 0:
		return models.Session{}, required(FieldPassword)
	}

	resp, err := a.client.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: string(password),
		Language: lang.String(),
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("register: %w", err)
	}

	return a.start(ctx, username, resp), nil
}

// Login validates that both fields are present, then authenticates.
func (a *authService) Login(ctx context.Context, username string, password []byte, lang i18n.Language) (models.Session, error) {
	username = strings.TrimSpace(username)

	switch {
	case username == "":
		return models.Session{}, required(FieldUsername)
	case len(password) == 0:
		return models.Session{}, required(FieldPassword)
	}

	resp, err := a.client.Login(ctx, models.LoginRequest{
		Username: username,
		Password: string(password),
		Language: lang.String(),
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	return a.start(ctx, username, resp), nil
}

// start installs the session from an auth response and persists the token.
// A storage failure only costs the session across restarts, so it is
// logged and the in-memory session is kept.
func (a *authService) start(ctx context.Context, username string, resp *models.AuthResponse) models.Session {
	user := resp.User
	if user == nil || user.Username == "" {
		user = &models.User{Username: username}
	}
	s := models.Session{Token: resp.Token, User: user}

	a.mu.Lock()
	a.session = s
	a.mu.Unlock()

	err := a.store.SetMany(ctx, map[string][]byte{
		common.AuthTokenKey:    []byte(s.Token),
		common.LastUsernameKey: []byte(user.Username),
	})
	if err != nil {
		a.logger.Warn(ctx, "failed to persist session", "error", err)
	}

	a.logger.Info(ctx, "session started", "username", user.Username)
	return s
}

func (a *authService) Logout(ctx context.Context) {
	a.clear(ctx)
	a.logger.Info(ctx, "logged out")
}

func (a *authService) Expire(ctx context.Context, token string) {
	a.mu.RLock()
	current := a.session.Token
	a.mu.RUnlock()

	if current == "" || current != token {
		return
	}
	a.clear(ctx)
	a.logger.Info(ctx, "session expired")
}

func (a *authService) clear(ctx context.Context) {
	a.mu.Lock()
	a.session = models.Session{}
	a.mu.Unlock()

	if err := a.store.Delete(ctx, common.AuthTokenKey); err != nil {
		a.logger.Warn(ctx, "failed to remove persisted token", "error", err)
	}
}

// Restore loads a persisted token. Only the token survives restarts, so
// the restored session has no user until the next login.
func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	token, err := a.store.Get(ctx, common.AuthTokenKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	s := models.Session{Token: strings.TrimSpace(string(token))}

	a.mu.Lock()
	a.session = s
	a.mu.Unlock()

	return s, nil
}

func (a *authService) Session() models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

func (a *authService) State() models.AuthState {
	return a.Session().State()
}

func (a *authService) LastUsername(ctx context.Context) string {
	v, err := a.store.Get(ctx, common.LastUsernameKey)
	if err != nil {
		a.logger.Warn(ctx, "failed to read last username", "error", err)
		return ""
	}
	return string(v)
}

func (a *authService) TokenExpiry() (time.Time, bool) {
	return TokenExpiry(a.Session().Token)
}
