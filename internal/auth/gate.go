// Package auth implements the single shared-secret admin session.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/looplab/fsm"
)

const (
	// StateAnonymous is the state of every session that has not logged in.
	StateAnonymous = "anonymous"
	// StatePrivileged is the state of a session that authenticated as admin.
	StatePrivileged = "privileged"

	eventLogin  = "login"
	eventLogout = "logout"

	sessionKey = "is_admin"
)

var (
	// ErrInvalidCredentials is returned when the submitted pair does not match the configured one.
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
	// ErrForbidden is returned when a privileged action is attempted by an anonymous session.
	ErrForbidden = errors.New("auth: admin privileges required")
)

// Credentials is the configured admin pair. An empty field disables login.
type Credentials struct {
	Username string
	Password string
}

// Configured reports whether both halves of the pair are set.
func (c Credentials) Configured() bool {
	return c.Username != "" && c.Password != ""
}

// Match compares both fields in constant time.
func (c Credentials) Match(username, password string) bool {
	if !c.Configured() || username == "" || password == "" {
		return false
	}
	u := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password))
	return u&p == 1
}

// Gate moves sessions between the anonymous and privileged states.
type Gate struct {
	creds Credentials
}

// NewGate creates a gate checking logins against creds.
func NewGate(creds Credentials) *Gate {
	return &Gate{creds: creds}
}

// IsPrivileged reports whether the session belongs to a logged in admin.
func IsPrivileged(s sessions.Session) bool {
	v, ok := s.Get(sessionKey).(bool)
	return ok && v
}

// State returns the current state name of the session.
func State(s sessions.Session) string {
	if IsPrivileged(s) {
		return StatePrivileged
	}
	return StateAnonymous
}

func machine(s sessions.Session) *fsm.FSM {
	return fsm.NewFSM(
		State(s),
		fsm.Events{
			{Name: eventLogin, Src: []string{StateAnonymous}, Dst: StatePrivileged},
			{Name: eventLogout, Src: []string{StatePrivileged}, Dst: StateAnonymous},
		},
		fsm.Callbacks{
			"enter_" + StatePrivileged: func(_ context.Context, _ *fsm.Event) {
				s.Set(sessionKey, true)
			},
			"enter_" + StateAnonymous: func(_ context.Context, _ *fsm.Event) {
				s.Clear()
			},
		},
	)
}

// Login promotes the session when username and password match the configured pair.
// Logging in again while privileged is a no-op. The caller saves the session.
func (g *Gate) Login(ctx context.Context, s sessions.Session, username, password string) error {
	if !g.creds.Match(username, password) {
		return ErrInvalidCredentials
	}

	if err := machine(s).Event(ctx, eventLogin); err != nil {
		var invalid fsm.InvalidEventError
		if errors.As(err, &invalid) {
			return nil
		}
		return fmt.Errorf("auth: login: %w", err)
	}
	return nil
}

// Logout returns the session to anonymous and drops everything stored in it. The caller saves the session.
func (g *Gate) Logout(ctx context.Context, s sessions.Session) error {
	if err := machine(s).Event(ctx, eventLogout); err != nil {
		var invalid fsm.InvalidEventError
		if errors.As(err, &invalid) {
			s.Clear()
			return nil
		}
		return fmt.Errorf("auth: logout: %w", err)
	}
	return nil
}

// Authorize returns ErrForbidden unless the session is privileged.
func (g *Gate) Authorize(s sessions.Session) error {
	if !IsPrivileged(s) {
		return ErrForbidden
	}
	return nil
}
