// Package session tracks documents that are open for editing.
package session

import (
	"sync"
	"time"

	"github.com/dgallion1/doclink/internal/doc"
)

// Session is one open document.
type Session struct {
	mu sync.Mutex

	ID       string
	Filename string
	Doc      *doc.Document

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Touch marks the session as recently used.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdatedAt = time.Now()
}

// Store is a thread-safe in-memory session registry with TTL eviction.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Open registers a freshly parsed document and returns its session.
func (s *Store) Open(filename string, d *doc.Document) *Session {
	now := time.Now()
	sess := &Session{
		ID:        NewID(),
		Filename:  filename,
		Doc:       d,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Cleanup removes sessions idle past the TTL.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, sess := range s.sessions {
		if now.Sub(sess.UpdatedAt) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
