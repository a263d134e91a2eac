package cinema

import (
	"strings"
	"unicode"

	"github.com/multiplexhq/cinema-reservation-system/internal/domain"
)

// UserValidator rejects clearly malformed booking party names before anything
// is persisted.
type UserValidator struct{}

// Validate checks name and surname together; the request fails as a whole if
// either is malformed.
func (UserValidator) Validate(name, surname string) error {
	if !validNameToken(name) || !validSurname(surname) {
		return &domain.InvalidUserNameOrSurnameError{Name: name, Surname: surname}
	}

	return nil
}

// A bare token is valid when, after trimming surrounding whitespace, it is at
// least three runes long and starts with an uppercase letter.
func validNameToken(token string) bool {
	runes := []rune(strings.TrimSpace(token))

	return len(runes) >= 3 && unicode.IsUpper(runes[0])
}

// A surname may contain at most one hyphen; each part must independently pass
// the bare token rule. Both parts need an uppercase first letter, including
// the part after the hyphen.
func validSurname(surname string) bool {
	parts := strings.Split(surname, "-")
	if len(parts) > 2 {
		return false
	}

	for _, part := range parts {
		if !validNameToken(part) {
			return false
		}
	}

	return true
}
