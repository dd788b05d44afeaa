package session

import "errors"

var (
	ErrNotAuthenticated     = errors.New("session: not authenticated")
	ErrAlreadyAuthenticated = errors.New("session: already authenticated")
	ErrRoleMismatch         = errors.New("session: command class not permitted for role")
	ErrTerminated           = errors.New("session: terminated")
	ErrTransport            = errors.New("session: transport failure")
)
