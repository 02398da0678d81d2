package errs

import "strings"

// sanitize removes line breaks from error message fragments so that a single
// error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
