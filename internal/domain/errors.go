package domain

import (
	"errors"
	"fmt"
)

var (
	ErrJWTKeyNotSet     = errors.New("jwt key is not configured")
	ErrInvalidAuthFile  = errors.New("auth file has neither a private key nor a refresh token")
	ErrAuthFileNotFound = errors.New("auth file not found")
	ErrEmptyAuthURL     = errors.New("org display returned no auth url")
)

// ExternalToolError reports a nonzero exit from the external auth CLI.
type ExternalToolError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExternalToolError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Command, e.ExitCode, e.Stderr)
}
