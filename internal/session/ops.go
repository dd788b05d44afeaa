package session

import (
	"strconv"

	"github.com/danmuck/acadctl/internal/protocol"
)

// Admin operations.

// AddStudent registers a new student account.
func (s *Session) AddStudent(username, password string) (protocol.GenericResult, error) {
	return s.do(protocol.ClassAdmin, protocol.VerbAddStudent, username, password)
}

// AddFaculty registers a new faculty account.
func (s *Session) AddFaculty(username, password string) (protocol.GenericResult, error) {
	return s.do(protocol.ClassAdmin, protocol.VerbAddFaculty, username, password)
}

// ToggleStudent flips a student account between active and inactive.
func (s *Session) ToggleStudent(studentID int) (protocol.GenericResult, error) {
	return s.do(protocol.ClassAdmin, protocol.VerbToggleStudent, strconv.Itoa(studentID))
}

// UpdateUser changes one field (username or password) of any account.
func (s *Session) UpdateUser(userID int, field, value string) (protocol.GenericResult, error) {
	return s.do(protocol.ClassAdmin, protocol.VerbUpdateUser, strconv.Itoa(userID), field, value)
}

// ViewUsers fetches the server-rendered listing of all accounts.
func (s *Session) ViewUsers() (protocol.GenericResult, error) {
	return s.do(protocol.ClassAdmin, protocol.VerbViewUsers)
}

// Student operations.

// Enroll joins the course with the given code.
func (s *Session) Enroll(courseCode string) (protocol.GenericResult, error) {
	return s.do(protocol.ClassStudent, protocol.VerbEnroll, courseCode)
}

// Unenroll leaves a previously joined course.
func (s *Session) Unenroll(courseCode string) (protocol.GenericResult, error) {
	return s.do(protocol.ClassStudent, protocol.VerbUnenroll, courseCode)
}

// ViewEnrolled fetches the listing of courses the student is in.
func (s *Session) ViewEnrolled() (protocol.GenericResult, error) {
	return s.do(protocol.ClassStudent, protocol.VerbViewEnrolled)
}

// Faculty operations.

// AddCourse offers a new course. The name rides as the trailing
// rest-of-line argument and may contain spaces.
func (s *Session) AddCourse(code string, seats int, name string) (protocol.GenericResult, error) {
	if err := s.guard(protocol.ClassFaculty); err != nil {
		return protocol.GenericResult{}, err
	}
	req, err := protocol.EncodeAddCourse(s.userID, code, seats, name)
	if err != nil {
		return protocol.GenericResult{}, err
	}
	return s.exchange(req)
}

// RemoveCourse withdraws an offered course.
func (s *Session) RemoveCourse(courseCode string) (protocol.GenericResult, error) {
	return s.do(protocol.ClassFaculty, protocol.VerbRemoveCourse, courseCode)
}

// ViewEnrollments fetches enrollment listings for the faculty's
// courses.
func (s *Session) ViewEnrollments() (protocol.GenericResult, error) {
	return s.do(protocol.ClassFaculty, protocol.VerbViewEnrollment)
}

// Shared operations. VIEW_COURSES and CHANGE_PASSWORD exist in more
// than one class grammar; the request is issued under the session's
// own role.

// ViewCourses fetches the course catalog listing for the current role.
func (s *Session) ViewCourses() (protocol.GenericResult, error) {
	return s.do(s.role.Class(), protocol.VerbViewCourses)
}

// ChangePassword rotates the caller's own password. A success does not
// force re-authentication: the server trusts the continued session.
func (s *Session) ChangePassword(oldPassword, newPassword string) (protocol.GenericResult, error) {
	return s.do(s.role.Class(), protocol.VerbChangePassword, oldPassword, newPassword)
}
