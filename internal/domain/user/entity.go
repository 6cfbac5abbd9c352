package user

import (
	"shareit/internal/pkg/errs"
)

var ErrNameRequired = errs.New("user name is required")

// User identity record. Identity on the wire is caller-asserted via the
// X-Sharer-User-Id header; there is no credential material here.
type User struct {
	id    int64
	name  string
	email Email
}

func NewUser(name string, email Email) (*User, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	return &User{
		name:  name,
		email: email,
	}, nil
}

func (u *User) ID() int64    { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() Email { return u.email }
