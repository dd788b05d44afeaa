package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/danmuck/acadctl/internal/protocol"
	"github.com/danmuck/acadctl/internal/session"
)

// App hosts the interactive menu loop around one portal session.
type App struct {
	in          *bufio.Reader
	sess        *session.Session
	clearScreen bool
	log         zerolog.Logger
}

func NewApp(sess *session.Session, clearScreen bool, log zerolog.Logger) *App {
	return &App{
		in:          bufio.NewReader(os.Stdin),
		sess:        sess,
		clearScreen: clearScreen,
		log:         log,
	}
}

// Run drives login and the role dashboards until the user exits or the
// transport dies. Always leaves the session terminated.
func (a *App) Run() error {
	defer func() {
		if err := a.sess.Exit(); err != nil {
			a.log.Debug().Err(err).Msg("exit cleanup")
		}
	}()

	for {
		if err := a.loginScreen(); err != nil {
			return navigationResult(err)
		}

		var err error
		switch a.sess.Role() {
		case protocol.RoleAdmin:
			err = a.adminMenu()
		case protocol.RoleStudent:
			err = a.studentMenu()
		case protocol.RoleFaculty:
			err = a.facultyMenu()
		default:
			// Degenerate LOGIN_SUCCESS without a usable role token.
			a.log.Warn().Msg("login succeeded without a recognized role")
			fmt.Println("Server reported an unknown role; logging out.")
			err = a.sess.Logout()
		}
		if err != nil {
			return navigationResult(err)
		}
	}
}

// loginScreen loops until authentication succeeds. Login failures are
// retried indefinitely; transport failures abort the client.
func (a *App) loginScreen() error {
	for a.sess.State() == session.StateUnauthenticated {
		a.clearIfEnabled()
		a.title("Academia Portal - Login")

		username, err := a.promptToken("Username")
		if err != nil {
			return err
		}
		password, err := a.promptPassword("Password")
		if err != nil {
			return err
		}

		res, err := a.sess.Login(username, password)
		if err != nil {
			if errors.Is(err, session.ErrTransport) {
				return err
			}
			a.showError(err.Error())
			continue
		}
		if res.OK {
			a.showSuccess("Login successful!")
			continue
		}
		a.showError("Login failed: " + res.ErrorDetail)
	}
	return nil
}

// runOp renders one operation outcome. Transport failures propagate so
// the menu loop can abort; everything else is displayed and absorbed.
func (a *App) runOp(res protocol.GenericResult, err error) error {
	if err != nil {
		if errors.Is(err, session.ErrTransport) {
			a.showError("Connection to the server was lost.")
			return err
		}
		a.showError(err.Error())
		return nil
	}
	if res.OK {
		a.showSuccess(res.Body)
		return nil
	}
	a.showError(res.ErrorDetail)
	return nil
}

// showListing prints a data blob verbatim and waits for Enter.
func (a *App) showListing(res protocol.GenericResult, err error) error {
	if err != nil {
		if errors.Is(err, session.ErrTransport) {
			a.showError("Connection to the server was lost.")
			return err
		}
		a.showError(err.Error())
		return nil
	}
	if !res.OK {
		a.showError(res.ErrorDetail)
		return nil
	}
	fmt.Println(res.Body)
	a.waitForEnter()
	return nil
}

// listBeforePrompt prints a listing inline, without the
// press-enter pause, so the user can pick from it in the next prompt.
func (a *App) listBeforePrompt(res protocol.GenericResult, err error) error {
	if err != nil {
		if errors.Is(err, session.ErrTransport) {
			a.showError("Connection to the server was lost.")
			return err
		}
		a.showError(err.Error())
		return nil
	}
	if !res.OK {
		a.showError(res.ErrorDetail)
		return nil
	}
	fmt.Println(res.Body)
	fmt.Println()
	return nil
}

func (a *App) logout() error {
	if err := a.sess.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out successfully.")
	a.waitForEnter()
	return nil
}

func (a *App) title(text string) {
	fmt.Printf("\n=== %s ===\n\n", text)
}

func (a *App) showSuccess(message string) {
	fmt.Printf("SUCCESS: %s\n", message)
	a.waitForEnter()
}

func (a *App) showError(message string) {
	fmt.Printf("ERROR: %s\n", message)
	a.waitForEnter()
}

func (a *App) waitForEnter() {
	fmt.Print("(Press Enter to continue...)")
	_, _ = a.in.ReadString('\n')
	fmt.Println()
}

func (a *App) clearIfEnabled() {
	if a.clearScreen {
		// ANSI clear plus cursor home.
		fmt.Print("\033[2J\033[H")
	}
}

// navigationResult maps a user-requested exit to a clean return.
func navigationResult(err error) error {
	if errors.Is(err, ErrNavigateExit) {
		return nil
	}
	return err
}
