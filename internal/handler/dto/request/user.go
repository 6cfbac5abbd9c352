package request

import (
	"strings"

	"shareit/internal/domain/user"
)

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r CreateUserRequest) ToDomain() (*user.User, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(strings.TrimSpace(r.Name), email)
}

// UpdateUserRequest is a partial update; absent fields keep their stored
// values.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
