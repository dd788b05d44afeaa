package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ErrNavigateExit signals caller-intent to leave the interactive
// client.
var ErrNavigateExit = errors.New("navigate exit")

// promptLine reads one trimmed line. EOF on stdin maps to
// ErrNavigateExit so every menu unwinds to a clean shutdown.
func (a *App) promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return "", ErrNavigateExit
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptToken reads a non-empty single token, re-prompting until the
// input is valid. Values containing spaces cannot ride the wire
// format, so they are rejected here at the presentation boundary.
func (a *App) promptToken(label string) (string, error) {
	for {
		v, err := a.promptLine(label)
		if err != nil {
			return "", err
		}
		if v == "" {
			fmt.Println("Value must not be empty.")
			continue
		}
		if strings.ContainsAny(v, " \t") {
			fmt.Println("Value must be a single word without spaces.")
			continue
		}
		return v, nil
	}
}

// promptInt reads a digit-only integer in [min, max], re-prompting on
// bad input.
func (a *App) promptInt(label string, min, max int) (int, error) {
	for {
		v, err := a.promptLine(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < min || n > max {
			fmt.Printf("Enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// promptPassword reads a password without echo when stdin is a
// terminal, falling back to a plain line read otherwise (piped input,
// tests).
func (a *App) promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return a.promptToken(label)
	}
	for {
		fmt.Printf("%s: ", label)
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		v := strings.TrimSpace(string(raw))
		if v == "" {
			fmt.Println("Password must not be empty.")
			continue
		}
		if strings.ContainsAny(v, " \t") {
			fmt.Println("Password must not contain spaces.")
			continue
		}
		return v, nil
	}
}

// promptFreeText reads a non-empty line that may contain spaces. Used
// only for the rest-of-line course name argument.
func (a *App) promptFreeText(label string) (string, error) {
	for {
		v, err := a.promptLine(label)
		if err != nil {
			return "", err
		}
		if v == "" {
			fmt.Println("Value must not be empty.")
			continue
		}
		return v, nil
	}
}
