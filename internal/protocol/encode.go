package protocol

import (
	"strconv"
	"strings"
)

// EncodeLogin builds a LOGIN request line.
func EncodeLogin(username, password string) (string, error) {
	if err := checkToken(username); err != nil {
		return "", err
	}
	if err := checkToken(password); err != nil {
		return "", err
	}
	return join(string(ClassLogin), username, password), nil
}

// EncodeCommand builds a role-scoped request line of the form
// "<CLASS> <userID> <VERB> [args...]". Every argument is a strict
// single token; use EncodeAddCourse for the rest-of-line case.
func EncodeCommand(class Class, userID int, verb string, args ...string) (string, error) {
	if class != ClassAdmin && class != ClassStudent && class != ClassFaculty {
		return "", ErrBadClass
	}
	if !KnownVerb(class, verb) {
		return "", ErrUnknownVerb
	}
	tokens := make([]string, 0, 3+len(args))
	tokens = append(tokens, string(class), strconv.Itoa(userID), verb)
	for _, arg := range args {
		if err := checkToken(arg); err != nil {
			return "", err
		}
		tokens = append(tokens, arg)
	}
	return join(tokens...), nil
}

// EncodeAddCourse builds the FACULTY ADD_COURSE request. The course
// name is the final argument and is carried as rest-of-line: it may
// contain spaces but not newlines, and the server parses it greedily.
func EncodeAddCourse(userID int, code string, seats int, name string) (string, error) {
	if err := checkToken(code); err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "\r\n") {
		return "", ErrBadToken
	}
	return join(string(ClassFaculty), strconv.Itoa(userID), VerbAddCourse,
		code, strconv.Itoa(seats), name), nil
}

// EncodeExit builds the EXIT notification request.
func EncodeExit() string {
	return string(ClassExit)
}

func join(tokens ...string) string {
	return strings.Join(tokens, " ")
}

// checkToken rejects values that cannot survive the space-delimited
// frame. The protocol has no quoting mechanism, so this is the only
// line of defense against a corrupted request.
func checkToken(tok string) error {
	if tok == "" {
		return ErrBadToken
	}
	if strings.ContainsAny(tok, " \t\r\n") {
		return ErrBadToken
	}
	return nil
}
