package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danmuck/acadctl/internal/testutil/testlog"
)

func TestDecodeLoginSuccess(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		line string
		role Role
		id   int
	}{
		{"LOGIN_SUCCESS ADMIN 1", RoleAdmin, 1},
		{"LOGIN_SUCCESS STUDENT 42", RoleStudent, 42},
		{"LOGIN_SUCCESS FACULTY 7", RoleFaculty, 7},
		{"LOGIN_SUCCESS FACULTY 7\n", RoleFaculty, 7},
	}
	for _, tc := range cases {
		res := DecodeLogin(tc.line)
		require.True(t, res.OK, tc.line)
		require.Equal(t, tc.role, res.Role, tc.line)
		require.Equal(t, tc.id, res.UserID, tc.line)
		require.Empty(t, res.ErrorDetail, tc.line)
	}
}

func TestDecodeLoginTolerantOnMissingFields(t *testing.T) {
	testlog.Start(t)
	// Missing role and id: still a success, with empty/invalid fields
	// rather than a hard failure.
	res := DecodeLogin("LOGIN_SUCCESS")
	require.True(t, res.OK)
	require.Equal(t, Role(""), res.Role)
	require.Equal(t, -1, res.UserID)

	// Missing id only.
	res = DecodeLogin("LOGIN_SUCCESS STUDENT")
	require.True(t, res.OK)
	require.Equal(t, RoleStudent, res.Role)
	require.Equal(t, -1, res.UserID)

	// Unknown role token and non-numeric id degrade the same way.
	res = DecodeLogin("LOGIN_SUCCESS WIZARD abc")
	require.True(t, res.OK)
	require.Equal(t, Role(""), res.Role)
	require.Equal(t, -1, res.UserID)
}

func TestDecodeLoginError(t *testing.T) {
	testlog.Start(t)
	res := DecodeLogin("ERROR Invalid credentials")
	require.False(t, res.OK)
	require.Equal(t, "Invalid credentials", res.ErrorDetail)

	res = DecodeLogin("ERROR")
	require.False(t, res.OK)
	require.Equal(t, "Unknown error", res.ErrorDetail)
}

func TestDecodeLoginUnrecognizedLine(t *testing.T) {
	testlog.Start(t)
	res := DecodeLogin("HELLO THERE")
	require.False(t, res.OK)
	require.Equal(t, "Unknown error", res.ErrorDetail)

	res = DecodeLogin("")
	require.False(t, res.OK)
	require.Equal(t, "Unknown error", res.ErrorDetail)
}

func TestDecodeGenericError(t *testing.T) {
	testlog.Start(t)
	res := DecodeGeneric("ERROR Course is full")
	require.False(t, res.OK)
	require.Equal(t, "Course is full", res.ErrorDetail)
	require.Empty(t, res.Body)

	res = DecodeGeneric("ERROR")
	require.False(t, res.OK)
	require.Equal(t, "Unknown error", res.ErrorDetail)
}

func TestDecodeGenericDataBlobPassthrough(t *testing.T) {
	testlog.Start(t)
	// Any non-ERROR line is opaque display payload, returned verbatim.
	listing := "CS101 | Intro to CS | 30 seats\nMA201 | Calculus | 45 seats"
	res := DecodeGeneric(listing)
	require.True(t, res.OK)
	require.Equal(t, listing, res.Body)

	res = DecodeGeneric("COURSE_ADDED")
	require.True(t, res.OK)
	require.Equal(t, "COURSE_ADDED", res.Body)

	// ERROR only counts as a status keyword in first position.
	res = DecodeGeneric("Deleted course with ERROR flag")
	require.True(t, res.OK)
}

func TestParseRole(t *testing.T) {
	testlog.Start(t)
	for _, role := range []Role{RoleAdmin, RoleStudent, RoleFaculty} {
		got, ok := ParseRole(string(role))
		require.True(t, ok)
		require.Equal(t, role, got)
	}
	_, ok := ParseRole("WIZARD")
	require.False(t, ok)
	_, ok = ParseRole("")
	require.False(t, ok)
}

func TestRoleClassMapping(t *testing.T) {
	testlog.Start(t)
	require.Equal(t, ClassAdmin, RoleAdmin.Class())
	require.Equal(t, ClassStudent, RoleStudent.Class())
	require.Equal(t, ClassFaculty, RoleFaculty.Class())
	require.Equal(t, Class(""), Role("").Class())
}
