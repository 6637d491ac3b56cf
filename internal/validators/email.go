package validators

import (
	"net"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NormalizeEmail trims and lower-cases an address; emails are stored in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
