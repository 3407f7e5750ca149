package auth

import (
	"encoding/json"
	"log/slog"
	"os"
	"slices"
	"sync"
	"time"

	"hrdesk/internal/domain/core"
)

// Session is the caller's authenticated identity for one request. A zero
// Session is unauthenticated.
type Session struct {
	User      *core.Employee
	SessionID string
}

func (s Session) IsAuthenticated() bool {
	return s.User != nil
}

// HasRole reports whether an authenticated user's role is in the allowed set.
// It is always false without a user, whatever the argument.
func (s Session) HasRole(roles ...core.Role) bool {
	if s.User == nil {
		return false
	}
	return slices.Contains(roles, s.User.Role)
}

type SessionRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionStore keeps the active session records, optionally mirrored to one
// JSON snapshot file so sessions survive a restart. A missing or unreadable
// snapshot just means starting empty.
type SessionStore struct {
	mu      sync.Mutex
	records map[string]SessionRecord
	path    string
}

func NewSessionStore(path string) *SessionStore {
	s := &SessionStore{records: map[string]SessionRecord{}, path: path}
	s.load()
	return s
}

func (s *SessionStore) load() {
	if s.path == "" {
		return
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var records []SessionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		slog.Warn("session snapshot unreadable, starting empty", "path", s.path, "err", err)
		return
	}
	now := time.Now()
	for _, rec := range records {
		if rec.ExpiresAt.After(now) {
			s.records[rec.ID] = rec
		}
	}
}

func (s *SessionStore) Put(rec SessionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
	s.persistLocked()
}

func (s *SessionStore) Get(id string) (SessionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return SessionRecord{}, false
	}
	if time.Now().After(rec.ExpiresAt) {
		delete(s.records, id)
		s.persistLocked()
		return SessionRecord{}, false
	}
	return rec, true
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return
	}
	delete(s.records, id)
	s.persistLocked()
}

func (s *SessionStore) persistLocked() {
	if s.path == "" {
		return
	}
	records := make([]SessionRecord, 0, len(s.records))
	for _, rec := range s.records {
		records = append(records, rec)
	}
	raw, err := json.Marshal(records)
	if err != nil {
		slog.Warn("session snapshot encode failed", "err", err)
		return
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		slog.Warn("session snapshot write failed", "path", s.path, "err", err)
	}
}
