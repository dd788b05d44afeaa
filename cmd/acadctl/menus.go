package main

import (
	"fmt"

	"github.com/danmuck/acadctl/internal/protocol"
)

// Each menu returns nil when the user logs out (back to the login
// screen), ErrNavigateExit when the user exits the client, or a
// transport error when the connection is gone.

func (a *App) adminMenu() error {
	for {
		a.clearIfEnabled()
		a.title("Admin Dashboard")
		fmt.Println("1. Add Student")
		fmt.Println("2. Add Faculty")
		fmt.Println("3. Activate/Deactivate Student")
		fmt.Println("4. Update Student/Faculty details")
		fmt.Println("5. View All Users")
		fmt.Println("6. View All Courses")
		fmt.Println("7. Logout")
		fmt.Println("8. Exit")
		fmt.Println()

		choice, err := a.promptInt("Enter your choice", 1, 8)
		if err != nil {
			return err
		}
		a.clearIfEnabled()

		switch choice {
		case 1:
			err = a.addUser("Add New Student", a.sess.AddStudent)
		case 2:
			err = a.addUser("Add New Faculty", a.sess.AddFaculty)
		case 3:
			err = a.toggleStudent()
		case 4:
			err = a.updateUser()
		case 5:
			a.title("All Users")
			err = a.showListing(a.sess.ViewUsers())
		case 6:
			a.title("All Courses")
			err = a.showListing(a.sess.ViewCourses())
		case 7:
			return a.logout()
		case 8:
			return ErrNavigateExit
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) studentMenu() error {
	for {
		a.clearIfEnabled()
		a.title("Student Dashboard")
		fmt.Println("1. Enroll to new Courses")
		fmt.Println("2. Unenroll from already enrolled Courses")
		fmt.Println("3. View enrolled Courses")
		fmt.Println("4. View all available Courses")
		fmt.Println("5. Change Password")
		fmt.Println("6. Logout")
		fmt.Println("7. Exit")
		fmt.Println()

		choice, err := a.promptInt("Enter your choice", 1, 7)
		if err != nil {
			return err
		}
		a.clearIfEnabled()

		switch choice {
		case 1:
			err = a.enroll()
		case 2:
			err = a.unenroll()
		case 3:
			a.title("Your Enrolled Courses")
			err = a.showListing(a.sess.ViewEnrolled())
		case 4:
			a.title("All Available Courses")
			err = a.showListing(a.sess.ViewCourses())
		case 5:
			err = a.changePassword()
		case 6:
			return a.logout()
		case 7:
			return ErrNavigateExit
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) facultyMenu() error {
	for {
		a.clearIfEnabled()
		a.title("Faculty Dashboard")
		fmt.Println("1. Add new Course")
		fmt.Println("2. Remove offered Course")
		fmt.Println("3. View enrollments in Courses")
		fmt.Println("4. View your Courses")
		fmt.Println("5. Change Password")
		fmt.Println("6. Logout")
		fmt.Println("7. Exit")
		fmt.Println()

		choice, err := a.promptInt("Enter your choice", 1, 7)
		if err != nil {
			return err
		}
		a.clearIfEnabled()

		switch choice {
		case 1:
			err = a.addCourse()
		case 2:
			err = a.removeCourse()
		case 3:
			a.title("Course Enrollments")
			err = a.showListing(a.sess.ViewEnrollments())
		case 4:
			a.title("Your Courses")
			err = a.showListing(a.sess.ViewCourses())
		case 5:
			err = a.changePassword()
		case 6:
			return a.logout()
		case 7:
			return ErrNavigateExit
		}
		if err != nil {
			return err
		}
	}
}

// Admin workflows.

func (a *App) addUser(heading string, op func(string, string) (protocol.GenericResult, error)) error {
	a.title(heading)
	username, err := a.promptToken("Enter username")
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Enter password")
	if err != nil {
		return err
	}
	return a.runOp(op(username, password))
}

func (a *App) toggleStudent() error {
	a.title("Activate/Deactivate Student")
	id, err := a.promptInt("Enter student ID", 0, 1<<30)
	if err != nil {
		return err
	}
	return a.runOp(a.sess.ToggleStudent(id))
}

func (a *App) updateUser() error {
	a.title("Update User Details")
	id, err := a.promptInt("Enter user ID", 0, 1<<30)
	if err != nil {
		return err
	}
	field, err := a.promptToken("What to update (username/password)")
	if err != nil {
		return err
	}
	var value string
	if field == "password" {
		value, err = a.promptPassword("Enter new password")
	} else {
		value, err = a.promptToken("Enter new value")
	}
	if err != nil {
		return err
	}
	return a.runOp(a.sess.UpdateUser(id, field, value))
}

// Student workflows.

func (a *App) enroll() error {
	a.title("Enroll to New Course")
	if err := a.listBeforePrompt(a.sess.ViewCourses()); err != nil {
		return err
	}
	code, err := a.promptToken("Enter course code to enroll")
	if err != nil {
		return err
	}
	return a.runOp(a.sess.Enroll(code))
}

func (a *App) unenroll() error {
	a.title("Unenroll from Course")
	if err := a.listBeforePrompt(a.sess.ViewEnrolled()); err != nil {
		return err
	}
	code, err := a.promptToken("Enter course code to unenroll")
	if err != nil {
		return err
	}
	return a.runOp(a.sess.Unenroll(code))
}

// Faculty workflows.

func (a *App) addCourse() error {
	a.title("Add New Course")
	code, err := a.promptToken("Enter course code")
	if err != nil {
		return err
	}
	seats, err := a.promptInt("Enter total seats", 1, 1<<30)
	if err != nil {
		return err
	}
	name, err := a.promptFreeText("Enter course name")
	if err != nil {
		return err
	}
	return a.runOp(a.sess.AddCourse(code, seats, name))
}

func (a *App) removeCourse() error {
	a.title("Remove Course")
	if err := a.listBeforePrompt(a.sess.ViewCourses()); err != nil {
		return err
	}
	code, err := a.promptToken("Enter course code to remove")
	if err != nil {
		return err
	}
	return a.runOp(a.sess.RemoveCourse(code))
}

// Shared workflows.

func (a *App) changePassword() error {
	a.title("Change Password")
	oldPassword, err := a.promptPassword("Enter current password")
	if err != nil {
		return err
	}
	newPassword, err := a.promptPassword("Enter new password")
	if err != nil {
		return err
	}
	return a.runOp(a.sess.ChangePassword(oldPassword, newPassword))
}
