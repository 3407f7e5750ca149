package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"hrdesk/internal/domain/core"
)

func newDirectory() *core.Store {
	s := core.NewStore()
	s.Seed([]core.Employee{
		{ID: "1", Name: "John Anderson", Email: "john.anderson@company.com", Role: core.RoleAdmin, Status: core.StatusActive},
		{ID: "4", Name: "Emily Rodriguez", Email: "emily.rodriguez@company.com", Role: core.RoleEmployee, Status: core.StatusActive},
	}, nil, nil)
	return s
}

func newService(t *testing.T, sessionFile string) *Service {
	t.Helper()
	svc, err := NewService(newDirectory(), NewSessionStore(sessionFile), "test-secret", "demo123", time.Hour)
	if err != nil {
		t.Fatalf("service init failed: %v", err)
	}
	return svc
}

func TestLoginSuccess(t *testing.T) {
	svc := newService(t, "")
	ctx := context.Background()

	result, ok := svc.Login(ctx, "john.anderson@company.com", "demo123")
	if !ok {
		t.Fatal("expected login to succeed")
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.User.ID != "1" || result.User.Role != core.RoleAdmin {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	session, ok := svc.SessionFromToken(ctx, result.Token)
	if !ok {
		t.Fatal("expected session from fresh token")
	}
	if !session.IsAuthenticated() {
		t.Fatal("expected authenticated session")
	}
}

func TestLoginFailures(t *testing.T) {
	svc := newService(t, "")
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "john.anderson@company.com", password: "nope"},
		{name: "unknown email", email: "ghost@company.com", password: "demo123"},
		{name: "empty credentials", email: "", password: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := svc.Login(ctx, tc.email, tc.password); ok {
				t.Fatal("expected login to fail")
			}
		})
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := newService(t, "")
	ctx := context.Background()

	result, ok := svc.Login(ctx, "john.anderson@company.com", "demo123")
	if !ok {
		t.Fatal("login failed")
	}
	session, ok := svc.SessionFromToken(ctx, result.Token)
	if !ok {
		t.Fatal("expected live session")
	}

	svc.Logout(ctx, session.SessionID)
	if _, ok := svc.SessionFromToken(ctx, result.Token); ok {
		t.Fatal("expected token to be dead after logout")
	}

	// Logging out twice is fine.
	svc.Logout(ctx, session.SessionID)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := newService(t, "")
	ctx := context.Background()

	result, ok := svc.Login(ctx, "emily.rodriguez@company.com", "demo123")
	if !ok {
		t.Fatal("login failed")
	}

	fresh, ok := svc.Refresh(ctx, result.Token)
	if !ok {
		t.Fatal("expected refresh to succeed")
	}
	if fresh.Token == result.Token {
		t.Fatal("expected a rotated token")
	}
	if _, ok := svc.SessionFromToken(ctx, result.Token); ok {
		t.Fatal("expected old token to be revoked")
	}
	if _, ok := svc.SessionFromToken(ctx, fresh.Token); !ok {
		t.Fatal("expected new token to work")
	}
}

func TestSessionFromTokenRejectsGarbage(t *testing.T) {
	svc := newService(t, "")
	if _, ok := svc.SessionFromToken(context.Background(), "not-a-token"); ok {
		t.Fatal("expected garbage token to be rejected")
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	svc := newService(t, path)
	ctx := context.Background()

	result, ok := svc.Login(ctx, "john.anderson@company.com", "demo123")
	if !ok {
		t.Fatal("login failed")
	}

	// A second service instance with the same snapshot file stands in for a
	// process restart.
	restarted, err := NewService(newDirectory(), NewSessionStore(path), "test-secret", "demo123", time.Hour)
	if err != nil {
		t.Fatalf("service init failed: %v", err)
	}
	if _, ok := restarted.SessionFromToken(ctx, result.Token); !ok {
		t.Fatal("expected session restored from snapshot")
	}
}

func TestHasRole(t *testing.T) {
	admin := &core.Employee{ID: "1", Role: core.RoleAdmin}

	tests := []struct {
		name    string
		session Session
		roles   []core.Role
		want    bool
	}{
		{name: "unauthenticated always false", session: Session{}, roles: []core.Role{core.RoleAdmin, core.RoleHR, core.RoleManager, core.RoleEmployee}, want: false},
		{name: "role in set", session: Session{User: admin}, roles: []core.Role{core.RoleAdmin, core.RoleHR}, want: true},
		{name: "role not in set", session: Session{User: admin}, roles: []core.Role{core.RoleEmployee}, want: false},
		{name: "empty set", session: Session{User: admin}, roles: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.session.HasRole(tc.roles...); got != tc.want {
				t.Fatalf("HasRole = %v, want %v", got, tc.want)
			}
		})
	}
}
