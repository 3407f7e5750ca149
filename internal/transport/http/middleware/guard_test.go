package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/core"
)

type stubResolver struct {
	sessions map[string]auth.Session
}

func (s stubResolver) SessionFromToken(ctx context.Context, token string) (auth.Session, bool) {
	session, ok := s.sessions[token]
	return session, ok
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func sessionFor(role core.Role) auth.Session {
	return auth.Session{User: &core.Employee{ID: "1", Role: role}, SessionID: "s1"}
}

func TestAuthMiddlewarePassesThroughWithoutToken(t *testing.T) {
	var sawSession bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawSession = GetSession(r.Context())
	})

	handler := Auth(stubResolver{})(inner)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if sawSession {
		t.Fatal("expected no session without a token")
	}
}

func TestAuthMiddlewareResolvesBearerToken(t *testing.T) {
	resolver := stubResolver{sessions: map[string]auth.Session{
		"good-token": sessionFor(core.RoleHR),
	}}

	var got auth.Session
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetSession(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	Auth(resolver)(inner).ServeHTTP(httptest.NewRecorder(), req)

	if !got.IsAuthenticated() || got.User.Role != core.RoleHR {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestRequireAuth(t *testing.T) {
	handler := RequireAuth(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous request: got %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), ctxKeySession, sessionFor(core.RoleEmployee)))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated request: got %d, want 200", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		session *auth.Session
		roles   []core.Role
		want    int
	}{
		{name: "anonymous gets 401", session: nil, roles: []core.Role{core.RoleAdmin}, want: http.StatusUnauthorized},
		{name: "wrong role gets 403", session: ptr(sessionFor(core.RoleEmployee)), roles: []core.Role{core.RoleAdmin, core.RoleHR}, want: http.StatusForbidden},
		{name: "allowed role passes", session: ptr(sessionFor(core.RoleHR)), roles: []core.Role{core.RoleAdmin, core.RoleHR}, want: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := RequireRole(tc.roles...)(okHandler())
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.session != nil {
				req = req.WithContext(context.WithValue(req.Context(), ctxKeySession, *tc.session))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("got %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
