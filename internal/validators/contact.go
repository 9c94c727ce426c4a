package validators

import (
	"net/mail"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9(][0-9 ()-]{5,18}[0-9]$`)

// IsEmail checks address syntax only; IsEmailDomainValid also resolves the domain.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s, ".")
}

func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsContact accepts either an e-mail address or a phone number.
func IsContact(s string) bool {
	s = strings.TrimSpace(s)
	return IsEmail(s) || IsPhone(s)
}
