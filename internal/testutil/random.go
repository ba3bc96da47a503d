package testutil

import (
	"strings"

	"github.com/google/uuid"
)

// RandomEmail returns a unique email address for test fixtures.
func RandomEmail() string {
	return "user-" + uuid.NewString()[:8] + "@example.com"
}

// RandomName returns a unique user name long enough to pass the 20-character
// minimum used for account names.
func RandomName(prefix string) string {
	name := prefix + " " + uuid.NewString()
	name = strings.ReplaceAll(name, "-", " ")
	if len(name) < 20 {
		name += strings.Repeat(" x", (20-len(name)+1)/2)
	}
	if len(name) > 60 {
		name = name[:60]
	}
	return name
}

// RandomStoreName returns a unique store name.
func RandomStoreName(prefix string) string {
	return prefix + " " + uuid.NewString()[:8]
}
