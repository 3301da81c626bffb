package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidName  = errors.New("invalid guest name")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email string

func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if !emailRegex.MatchString(value) {
		return "", ErrInvalidEmail
	}
	return Email(value), nil
}

func (e Email) String() string {
	return string(e)
}

// FullName is the guest name printed on vouchers; it may mix Latin and
// Arabic script, so no character-class restriction is applied.
type FullName string

func NewFullName(value string) (FullName, error) {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > 200 {
		return "", ErrInvalidName
	}
	return FullName(value), nil
}

func (n FullName) String() string {
	return string(n)
}
