// Package session holds the client-side authentication state machine
// and the protocol engine that issues portal operations through it.
//
// The session is the single authority on request legality: every
// operation is checked against the current state before any bytes are
// written to the wire. The original client relied on menu structure to
// keep a student away from admin commands; here the guard is explicit
// and testable on its own.
package session

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/danmuck/acadctl/internal/protocol"
)

// State is the lifecycle position of the client session.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
	StateTerminated      State = "terminated"
)

// transportErrorDetail is the uniform detail text surfaced to the
// presentation layer when an exchange dies mid-flight.
const transportErrorDetail = "connection failure"

// Conn is the transport surface the session needs: one synchronous
// request/response exchange plus teardown. Satisfied by
// *transport.Client; tests substitute an in-memory fake.
type Conn interface {
	Exchange(request string) (string, error)
	Close() error
}

// Session is the one per-process record of connection and
// authentication state. Not safe for concurrent use; the client is
// single-threaded by design and nothing here is locked.
type Session struct {
	conn   Conn
	state  State
	role   protocol.Role
	userID int
	log    zerolog.Logger
}

// New wraps an established connection in an unauthenticated session.
func New(conn Conn, log zerolog.Logger) *Session {
	return &Session{
		conn:   conn,
		state:  StateUnauthenticated,
		userID: -1,
		log:    log,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Role returns the authenticated role, or "" when unauthenticated.
func (s *Session) Role() protocol.Role {
	return s.role
}

// UserID returns the authenticated numeric user id, or -1.
func (s *Session) UserID() int {
	return s.userID
}

// CanIssue reports whether a request of the given class is legal in
// the current state. LOGIN is only legal before authentication, role
// classes must match the authenticated role, and EXIT is legal from
// any live state.
func (s *Session) CanIssue(class protocol.Class) bool {
	switch s.state {
	case StateUnauthenticated:
		return class == protocol.ClassLogin || class == protocol.ClassExit
	case StateAuthenticated:
		if class == protocol.ClassExit {
			return true
		}
		return s.role != "" && class == s.role.Class()
	}
	return false
}

// guard converts an illegal class for the current state into the
// matching sentinel error. Called before every encode so that no bytes
// leave the process for a rejected request.
func (s *Session) guard(class protocol.Class) error {
	if s.CanIssue(class) {
		return nil
	}
	switch s.state {
	case StateTerminated:
		return ErrTerminated
	case StateUnauthenticated:
		return ErrNotAuthenticated
	default:
		if class == protocol.ClassLogin {
			return ErrAlreadyAuthenticated
		}
		return ErrRoleMismatch
	}
}

// Login performs the authentication handshake. On LOGIN_SUCCESS the
// session transitions to Authenticated with the role and id the server
// reported; on failure the state is untouched and the caller may retry
// indefinitely.
func (s *Session) Login(username, password string) (protocol.LoginResult, error) {
	if err := s.guard(protocol.ClassLogin); err != nil {
		return protocol.LoginResult{}, err
	}
	req, err := protocol.EncodeLogin(username, password)
	if err != nil {
		return protocol.LoginResult{}, err
	}
	line, err := s.conn.Exchange(req)
	if err != nil {
		return protocol.LoginResult{ErrorDetail: transportErrorDetail},
			fmt.Errorf("%w: %v", ErrTransport, err)
	}
	res := protocol.DecodeLogin(line)
	if res.OK {
		s.state = StateAuthenticated
		s.role = res.Role
		s.userID = res.UserID
		s.log.Info().
			Str("role", string(res.Role)).
			Int("user_id", res.UserID).
			Msg("authenticated")
	}
	return res, nil
}

// Logout is a client-local transition: the server is not notified and
// no request is sent. The session forgets its role and id and returns
// to the login state.
func (s *Session) Logout() error {
	if s.state != StateAuthenticated {
		return ErrNotAuthenticated
	}
	s.log.Info().Str("role", string(s.role)).Int("user_id", s.userID).Msg("logged out")
	s.state = StateUnauthenticated
	s.role = ""
	s.userID = -1
	return nil
}

// Exit notifies the server, discards whatever it answers, closes the
// transport, and terminates the session. Legal from any live state and
// idempotent once terminated. Exchange failures during the
// notification are deliberately ignored; the connection is going away
// either way.
func (s *Session) Exit() error {
	if s.state == StateTerminated {
		return nil
	}
	if _, err := s.conn.Exchange(protocol.EncodeExit()); err != nil {
		s.log.Debug().Err(err).Msg("exit notification failed")
	}
	err := s.conn.Close()
	s.state = StateTerminated
	s.role = ""
	s.userID = -1
	s.log.Info().Msg("session terminated")
	return err
}

// do runs one guarded role-command round trip. State never changes:
// every role operation is a self-loop on Authenticated.
func (s *Session) do(class protocol.Class, verb string, args ...string) (protocol.GenericResult, error) {
	if err := s.guard(class); err != nil {
		return protocol.GenericResult{}, err
	}
	req, err := protocol.EncodeCommand(class, s.userID, verb, args...)
	if err != nil {
		return protocol.GenericResult{}, err
	}
	return s.exchange(req)
}

// exchange sends an already-encoded request and decodes the generic
// outcome. Transport failures surface both ways: a renderable failure
// result for the UI and a wrapped error for the caller's control flow.
// Session state is not reset on transport failure; the caller decides
// whether to retry or exit.
func (s *Session) exchange(req string) (protocol.GenericResult, error) {
	line, err := s.conn.Exchange(req)
	if err != nil {
		return protocol.GenericResult{ErrorDetail: transportErrorDetail},
			fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return protocol.DecodeGeneric(line), nil
}
