package service

import (
	"sync"
	"time"

	"casino/games"
)

// BlackjackSession is one in-progress hand, owned by the registry from
// start until it reaches a terminal state or times out. The mutex
// serializes player actions and the timeout for this session.
type BlackjackSession struct {
	mu       sync.Mutex
	GameID   string
	UserID   string
	Username string
	Game     *games.Blackjack
	timer    *time.Timer
	deadline time.Time
}

// Lock acquires the session's action lock
func (s *BlackjackSession) Lock() { s.mu.Lock() }

// Unlock releases the session's action lock
func (s *BlackjackSession) Unlock() { s.mu.Unlock() }

// SessionRegistry enforces at most one active blackjack hand per user
// and fires the timeout callback when a hand sits idle too long.
type SessionRegistry struct {
	mu        sync.Mutex
	timeout   time.Duration
	onTimeout func(userID string)
	sessions  map[string]*BlackjackSession
}

// NewSessionRegistry creates a registry. onTimeout runs on its own
// goroutine when a session's idle deadline expires.
func NewSessionRegistry(timeout time.Duration, onTimeout func(userID string)) *SessionRegistry {
	return &SessionRegistry{
		timeout:   timeout,
		onTimeout: onTimeout,
		sessions:  make(map[string]*BlackjackSession),
	}
}

// Reserve claims the user's slot before any money moves. It fails with
// ErrGameAlreadyActive while a session (or reservation) exists, so a
// second start cannot debit anything. The caller must either Put a
// session or Release the slot.
func (r *SessionRegistry) Reserve(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[userID]; exists {
		return ErrGameAlreadyActive
	}
	r.sessions[userID] = &BlackjackSession{UserID: userID}
	return nil
}

// Put fills a reserved slot with a live session and arms its idle timer.
func (r *SessionRegistry) Put(sess *BlackjackSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timeout > 0 && r.onTimeout != nil {
		userID := sess.UserID
		sess.deadline = time.Now().Add(r.timeout)
		sess.timer = time.AfterFunc(r.timeout, func() {
			r.expire(userID)
		})
	}
	r.sessions[sess.UserID] = sess
}

// expire runs on the timer goroutine. A Touch can land after the timer
// fired but before this ran; the moved deadline exposes such stale
// firings and they are dropped, the re-armed timer will come back.
func (r *SessionRegistry) expire(userID string) {
	r.mu.Lock()
	sess, exists := r.sessions[userID]
	stale := !exists || time.Now().Before(sess.deadline)
	r.mu.Unlock()

	if stale {
		return
	}
	r.onTimeout(userID)
}

// Get returns the active session for userID after verifying the actor
// owns it. A reservation that was never filled counts as no game.
func (r *SessionRegistry) Get(userID, actorID string) (*BlackjackSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, exists := r.sessions[userID]
	if !exists || sess.Game == nil {
		return nil, ErrNoActiveGame
	}
	if sess.UserID != actorID {
		return nil, ErrNotYourGame
	}
	return sess, nil
}

// lookup returns the session regardless of actor, for the timeout path.
func (r *SessionRegistry) lookup(userID string) (*BlackjackSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, exists := r.sessions[userID]
	if !exists || sess.Game == nil {
		return nil, false
	}
	return sess, true
}

// Touch re-arms the idle timer after a player action
func (r *SessionRegistry) Touch(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, exists := r.sessions[userID]; exists && sess.timer != nil {
		sess.deadline = time.Now().Add(r.timeout)
		sess.timer.Reset(r.timeout)
	}
}

// Release frees the user's slot and stops any pending timer
func (r *SessionRegistry) Release(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, exists := r.sessions[userID]; exists {
		if sess.timer != nil {
			sess.timer.Stop()
		}
		delete(r.sessions, userID)
	}
}
