package admin

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyCredentials = errors.New("admin user and password must be set")

// Gate decides whether a user name and password unlock the admin area.
type Gate interface {
	Authorize(user, password string) bool
}

// PasswordGate checks a single fixed account. Only the bcrypt hash of the
// password is kept.
type PasswordGate struct {
	user string
	hash []byte
}

func NewPasswordGate(user, password string, cost int) (*PasswordGate, error) {
	if user == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	return &PasswordGate{user: user, hash: hash}, nil
}

func (g *PasswordGate) Authorize(user, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(g.user)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(g.hash, []byte(password)) == nil

	return userOK && passwordOK
}
