package auth

import (
	"context"
	"log/slog"
	"time"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/platform/ids"
)

type LoginResult struct {
	Token string        `json:"token"`
	User  core.Employee `json:"user"`
}

// Service implements the placeholder authentication scheme: any employee on
// file may log in with the one shared demo secret. Credential verification is
// a two-outcome check, never an error.
type Service struct {
	Directory    *core.Store
	Sessions     *SessionStore
	secret       string
	tokenTTL     time.Duration
	passwordHash string
}

func NewService(directory *core.Store, sessions *SessionStore, secret, sharedPassword string, tokenTTL time.Duration) (*Service, error) {
	hash, err := HashPassword(sharedPassword)
	if err != nil {
		return nil, err
	}
	return &Service{
		Directory:    directory,
		Sessions:     sessions,
		secret:       secret,
		tokenTTL:     tokenTTL,
		passwordHash: hash,
	}, nil
}

// Authenticate matches the email exactly against the employee collection and
// the password against the shared secret.
func (s *Service) Authenticate(ctx context.Context, email, password string) (core.Employee, bool) {
	user, ok := s.Directory.GetEmployeeByEmail(ctx, email)
	if !ok {
		return core.Employee{}, false
	}
	if err := CheckPassword(s.passwordHash, password); err != nil {
		return core.Employee{}, false
	}
	return user, true
}

// Login authenticates and, on success, starts a persisted session and issues
// a bearer token. On failure nothing changes.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, bool) {
	user, ok := s.Authenticate(ctx, email, password)
	if !ok {
		return LoginResult{}, false
	}

	token, err := s.startSession(user)
	if err != nil {
		slog.Warn("token issue failed", "userId", user.ID, "err", err)
		return LoginResult{}, false
	}
	return LoginResult{Token: token, User: user}, true
}

// Logout revokes the session. It always succeeds, even for an unknown id.
func (s *Service) Logout(ctx context.Context, sessionID string) {
	s.Sessions.Delete(sessionID)
}

// SessionFromToken resolves a bearer token to a live Session: the token must
// verify, the session record must still exist, and the user must still be on
// file. The user snapshot is read fresh from the directory so role changes
// take effect immediately.
func (s *Service) SessionFromToken(ctx context.Context, token string) (Session, bool) {
	claims, err := ParseToken(s.secret, token)
	if err != nil {
		return Session{}, false
	}
	rec, ok := s.Sessions.Get(claims.SessionID)
	if !ok || rec.UserID != claims.UserID {
		return Session{}, false
	}
	user, err := s.Directory.GetEmployee(ctx, claims.UserID)
	if err != nil {
		return Session{}, false
	}
	return Session{User: &user, SessionID: claims.SessionID}, true
}

// Refresh rotates a valid session: the old record is revoked and a new token
// is issued.
func (s *Service) Refresh(ctx context.Context, token string) (LoginResult, bool) {
	session, ok := s.SessionFromToken(ctx, token)
	if !ok {
		return LoginResult{}, false
	}
	s.Sessions.Delete(session.SessionID)

	fresh, err := s.startSession(*session.User)
	if err != nil {
		slog.Warn("token refresh failed", "userId", session.User.ID, "err", err)
		return LoginResult{}, false
	}
	return LoginResult{Token: fresh, User: *session.User}, true
}

func (s *Service) startSession(user core.Employee) (string, error) {
	sessionID := ids.New()
	token, err := GenerateToken(s.secret, Claims{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		SessionID: sessionID,
	}, s.tokenTTL)
	if err != nil {
		return "", err
	}
	s.Sessions.Put(SessionRecord{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.tokenTTL),
	})
	return token, nil
}
