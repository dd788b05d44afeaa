package protocol

import (
	"strconv"
	"strings"
)

// Response outcome keywords.
const (
	keywordLoginSuccess = "LOGIN_SUCCESS"
	keywordError        = "ERROR"

	unknownErrorDetail = "Unknown error"
)

// DecodeLogin decodes the response to a LOGIN request.
//
// Decoding is tolerant: a LOGIN_SUCCESS line missing its role or id
// tokens yields an empty role and a -1 id rather than an error, and any
// line that is neither LOGIN_SUCCESS nor ERROR is reported as a failure
// with the generic detail. The session layer decides what to do with a
// degenerate success.
func DecodeLogin(line string) LoginResult {
	line = strings.TrimRight(line, "\r\n")
	switch first(line) {
	case keywordLoginSuccess:
		res := LoginResult{OK: true, UserID: -1}
		if role, ok := ParseRole(token(line, 1)); ok {
			res.Role = role
		}
		if id, err := strconv.Atoi(token(line, 2)); err == nil {
			res.UserID = id
		}
		return res
	case keywordError:
		return LoginResult{ErrorDetail: errorDetail(line)}
	}
	return LoginResult{ErrorDetail: unknownErrorDetail}
}

// DecodeGeneric decodes the response to any role-scoped request or
// status exchange. An ERROR status line becomes a failure with its
// detail text; everything else is an opaque data blob passed through
// verbatim for display.
func DecodeGeneric(line string) GenericResult {
	trimmed := strings.TrimRight(line, "\r\n")
	if first(trimmed) == keywordError {
		return GenericResult{ErrorDetail: errorDetail(trimmed)}
	}
	return GenericResult{OK: true, Body: trimmed}
}

// errorDetail returns the text after the first space of an ERROR line,
// or the generic detail when the server sent a bare "ERROR".
func errorDetail(line string) string {
	if i := strings.IndexByte(line, ' '); i >= 0 && i+1 < len(line) {
		return line[i+1:]
	}
	return unknownErrorDetail
}

// first returns the first whitespace-delimited token of line.
func first(line string) string {
	return token(line, 0)
}

// token returns the i-th whitespace-delimited token, or "" when the
// line has fewer tokens. Mirrors the positional field convention of
// the wire grammar.
func token(line string, i int) string {
	fields := strings.Fields(line)
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}
