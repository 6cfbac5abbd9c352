package user

import (
	"regexp"
	"strings"

	"shareit/internal/pkg/errs"
)

var (
	ErrEmailRequired = errs.New("email is required")
	ErrInvalidEmail  = errs.New("invalid email format")
)

// Conservative RFC-lite pattern: ASCII only, no consecutive dots, TLD required.
var emailRegex = regexp.MustCompile(`^[_A-Za-z0-9+-]+(\.[_A-Za-z0-9-]+)*@[A-Za-z0-9-]+(\.[A-Za-z0-9]+)*(\.[A-Za-z]{2,})$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Email{}, ErrEmailRequired
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}
