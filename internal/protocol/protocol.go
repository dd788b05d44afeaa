// Package protocol implements the Academia Portal wire grammar: building
// space-delimited request lines and decoding the server's status lines
// and data blobs.
//
// The wire format has no escaping or quoting. Tokens that contain
// whitespace would corrupt the frame, so encoders reject them up front
// rather than sending a broken request. The one exception is the course
// name in ADD_COURSE, which is defined as rest-of-line and may contain
// spaces.
package protocol

// MaxFrameSize bounds a single request or response frame, terminator
// included. Responses longer than this are truncated by the transport.
const MaxFrameSize = 1024

// Role identifies an authenticated account type.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
	RoleFaculty Role = "FACULTY"
)

// ParseRole maps a wire token to a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleStudent, RoleFaculty:
		return Role(s), true
	}
	return "", false
}

// Class is the first token of a request line.
type Class string

const (
	ClassLogin   Class = "LOGIN"
	ClassAdmin   Class = "ADMIN"
	ClassStudent Class = "STUDENT"
	ClassFaculty Class = "FACULTY"
	ClassExit    Class = "EXIT"
)

// Class returns the command class an authenticated role may issue.
func (r Role) Class() Class {
	switch r {
	case RoleAdmin:
		return ClassAdmin
	case RoleStudent:
		return ClassStudent
	case RoleFaculty:
		return ClassFaculty
	}
	return ""
}

// Sub-operation verbs, by class.
const (
	VerbAddStudent     = "ADD_STUDENT"
	VerbAddFaculty     = "ADD_FACULTY"
	VerbToggleStudent  = "TOGGLE_STUDENT"
	VerbUpdateUser     = "UPDATE_USER"
	VerbViewUsers      = "VIEW_USERS"
	VerbViewCourses    = "VIEW_COURSES"
	VerbEnroll         = "ENROLL"
	VerbUnenroll       = "UNENROLL"
	VerbViewEnrolled   = "VIEW_ENROLLED"
	VerbChangePassword = "CHANGE_PASSWORD"
	VerbAddCourse      = "ADD_COURSE"
	VerbRemoveCourse   = "REMOVE_COURSE"
	VerbViewEnrollment = "VIEW_ENROLLMENTS"
)

var verbsByClass = map[Class][]string{
	ClassAdmin: {
		VerbAddStudent, VerbAddFaculty, VerbToggleStudent,
		VerbUpdateUser, VerbViewUsers, VerbViewCourses,
	},
	ClassStudent: {
		VerbViewCourses, VerbViewEnrolled, VerbEnroll,
		VerbUnenroll, VerbChangePassword,
	},
	ClassFaculty: {
		VerbAddCourse, VerbRemoveCourse, VerbViewCourses,
		VerbViewEnrollment, VerbChangePassword,
	},
}

// KnownVerb reports whether verb is valid for the given command class.
func KnownVerb(class Class, verb string) bool {
	for _, v := range verbsByClass[class] {
		if v == verb {
			return true
		}
	}
	return false
}

// LoginResult is the decoded outcome of a LOGIN exchange.
type LoginResult struct {
	OK          bool
	Role        Role
	UserID      int
	ErrorDetail string
}

// GenericResult is the decoded outcome of any non-login exchange.
// Body carries the server's response verbatim when OK; listings and
// status texts are opaque display payload, never parsed structurally.
type GenericResult struct {
	OK          bool
	Body        string
	ErrorDetail string
}
