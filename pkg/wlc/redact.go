package wlc

import "regexp"

// The password field sits between the literal tokens "add <username> " and
// " wlan" in the netuser add command; the anchored match keeps all
// surrounding bytes intact.
var passwordPattern = regexp.MustCompile(`(add \S+ )\S{8}( wlan)`)

// Redact replaces the 8-character password in command or response text with
// a fixed-width placeholder. Safe to call on text without a password.
func Redact(s string) string {
	return passwordPattern.ReplaceAllString(s, "${1}********${2}")
}
