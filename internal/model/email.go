package model

import (
	"net/mail"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

func init() {
	// replaces the default checker, which accepts display names and
	// dotless domains
	gojsonschema.FormatCheckers.Add("email", EmailFormatChecker{})
}

// EmailFormatChecker accepts a bare addr-spec with a dotted domain.
type EmailFormatChecker struct{}

func (EmailFormatChecker) IsFormat(input interface{}) bool {
	s, ok := input.(string)
	if !ok {
		return true
	}
	return IsEmail(s)
}

func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}
	domain := s[strings.LastIndex(s, "@")+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.Contains(domain, "..")
}
