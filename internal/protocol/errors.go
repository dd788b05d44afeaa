package protocol

import "errors"

var (
	ErrBadToken    = errors.New("protocol: token is empty or contains whitespace")
	ErrUnknownVerb = errors.New("protocol: unknown verb for command class")
	ErrBadClass    = errors.New("protocol: class does not take role commands")
)
