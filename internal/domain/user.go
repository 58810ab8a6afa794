package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"

	MinPasswordLength = 6
)

// userNamespace scopes the UUIDv5 ids derived from emails.
var userNamespace = uuid.MustParse("6f1c2a8e-4b7d-5c3e-9a10-2d8e7f6b5a41")

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"min=6"`
}

func (c Credentials) IsDemo() bool {
	return c.Email == DemoEmail && c.Password == DemoPassword
}

// UserIDFor returns the stable user id for an email address.
func UserIDFor(email string) string {
	return uuid.NewSHA1(userNamespace, []byte(strings.ToLower(email))).String()
}

func NewUser(email string, now time.Time) User {
	return User{
		ID:        UserIDFor(email),
		Email:     email,
		CreatedAt: now,
	}
}
