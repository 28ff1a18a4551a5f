package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address has a domain which
// resolves to at least one MX or A record. Booking emails are
// optional, so this runs only when one is provided.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
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
