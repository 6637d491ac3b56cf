package validators

import (
	"strings"
	"unicode/utf8"
)

const MinPasswordLength = 6

func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}
	return strings.TrimSpace(password) != ""
}
