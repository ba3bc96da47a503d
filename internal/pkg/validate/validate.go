// Package validate provides the request validator with the application's
// custom rules registered, plus input normalization helpers.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// specialChars is the set a password must draw at least one character from.
const specialChars = "!@#$%^&*"

// New returns a validator with the password_complexity rule registered.
// Handlers hold one instance each, mirroring how they hold their service.
func New() *validator.Validate {
	v := validator.New()

	// Go's regexp has no lookahead, so the compound rule is a plain func:
	// at least one ASCII uppercase letter and one special character.
	// Length bounds stay in min/max tags so they report separately.
	must := v.RegisterValidation("password_complexity", func(fl validator.FieldLevel) bool {
		password := fl.Field().String()
		var hasUpper, hasSpecial bool
		for _, r := range password {
			switch {
			case r >= 'A' && r <= 'Z':
				hasUpper = true
			case strings.ContainsRune(specialChars, r):
				hasSpecial = true
			}
		}
		return hasUpper && hasSpecial
	})
	if must != nil {
		panic(must)
	}

	return v
}

// NormalizeText trims surrounding whitespace and applies Unicode NFC so that
// visually identical names and addresses compare and store identically.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
