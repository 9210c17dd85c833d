package validation

import (
	"regexp"
	"time"
)

// Form field bounds
var (
	UsernameMinLength = 4
	UsernameMaxLength = 20
	PasswordMinLength = 6
	BioMaxLength      = 500

	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// DateFormat is the calendar date layout used on certification forms
	DateFormat = "2006-01-02"
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// ValidUsername checks the username length bounds
func ValidUsername(username string) bool {
	return len(username) >= UsernameMinLength && len(username) <= UsernameMaxLength
}

// ValidEmail checks the email shape
func ValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// ParseDate parses a calendar date in the form layout
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateFormat, value)
}
