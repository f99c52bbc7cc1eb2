package client

import (
	"context"
	"sync"
)

// Session owns the locally stored session credential and the identity
// collaborator sign-out. The deletion controller clears it only after the
// server has confirmed deletion; on failure the credential stays so the
// user can retry or reach support while still signed in.
type Session interface {
	// Token returns the stored credential, or false if signed out.
	Token() (string, bool)
	// UserID returns the identity identifier the credential is bound to.
	// It doubles as the external entitlement alias.
	UserID() string
	// Teardown clears the stored credential and signs out of the identity
	// collaborator. Sign-out failures are returned for logging only; the
	// local credential is cleared regardless.
	Teardown(ctx context.Context) error
}

// LocalSession is the in-process Session implementation.
type LocalSession struct {
	mu      sync.Mutex
	token   string
	userID  string
	signOut func(ctx context.Context) error
}

// NewLocalSession wraps a stored credential. signOut may be nil when the
// identity collaborator needs no explicit local sign-out.
func NewLocalSession(token, userID string, signOut func(ctx context.Context) error) *LocalSession {
	return &LocalSession{token: token, userID: userID, signOut: signOut}
}

func (s *LocalSession) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", false
	}
	return s.token, true
}

func (s *LocalSession) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

func (s *LocalSession) Teardown(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if s.signOut != nil {
		return s.signOut(ctx)
	}
	return nil
}
