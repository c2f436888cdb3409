package user

import (
	"strings"

	"netcard-manager/internal/pkg/errs"
)

var (
	ErrInvalidUsername = errs.New("username is required")
	ErrInvalidPassword = errs.New("password is required")
	ErrInvalidRole     = errs.New("invalid role")
)

// Credentials is a login attempt for the given role.
type Credentials struct {
	username string
	password string
	role     Role
}

func NewCredentials(username, password, role string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Credentials{}, ErrInvalidUsername
	}
	if password == "" {
		return Credentials{}, ErrInvalidPassword
	}
	r, err := NewRole(role)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{username: username, password: password, role: r}, nil
}

func (c Credentials) Username() string { return c.username }
func (c Credentials) Password() string { return c.password }
func (c Credentials) Role() Role       { return c.role }
