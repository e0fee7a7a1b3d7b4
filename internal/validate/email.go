package validate

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether addr has the local@domain.tld shape.
func IsEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// EmailList splits a comma-separated recipient string into trimmed entries.
// If any entry is not an address, nothing is returned except an
// *InvalidRecipientsError naming all of the bad entries.
func EmailList(raw string) ([]string, error) {
	parts := strings.Split(raw, ",")

	recipients := make([]string, 0, len(parts))
	var invalid []string
	for _, part := range parts {
		addr := strings.TrimSpace(part)
		if !IsEmail(addr) {
			invalid = append(invalid, addr)
			continue
		}
		recipients = append(recipients, addr)
	}

	if len(invalid) > 0 {
		return nil, &InvalidRecipientsError{Entries: invalid}
	}
	return recipients, nil
}
