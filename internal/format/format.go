// Package format holds the named string formats the validator understands.
package format

import (
	"net"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neume-network/schema/internal/durationlex"
)

// Checker reports whether a string satisfies a format.
type Checker func(string) bool

// Registry maps format names to checkers.
type Registry map[string]Checker

var (
	schemePattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*$`)
	hostnamePattern = regexp.MustCompile(`^(?i:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)(?:\.(?i:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?))*\.?$`)
)

// Default returns a fresh registry with every built-in format.
func Default() Registry {
	return Registry{
		"uri":           URI,
		"uri-reference": URIReference,
		"duration":      durationlex.Valid,
		"date-time":     DateTime,
		"date":          Date,
		"uuid":          UUID,
		"hostname":      Hostname,
		"regex":         Regex,
	}
}

// Lookup returns the checker for name.
func (r Registry) Lookup(name string) (Checker, bool) {
	c, ok := r[name]
	return c, ok
}

// URI accepts absolute URIs: a scheme followed by a parseable remainder.
func URI(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	scheme, _, ok := strings.Cut(s, ":")
	if !ok || !schemePattern.MatchString(scheme) {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	if u.Host != "" {
		if _, port, err := net.SplitHostPort(u.Host); err == nil && port == "" {
			return false
		}
	}
	return true
}

// URIReference accepts absolute or relative references.
func URIReference(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	_, err := url.Parse(s)
	return err == nil
}

// DateTime accepts RFC 3339 timestamps.
func DateTime(s string) bool {
	_, err := time.Parse(time.RFC3339Nano, s)
	return err == nil
}

// Date accepts RFC 3339 full-date values.
func Date(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// UUID accepts the canonical 36 character hyphenated form.
func UUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Hostname accepts RFC 1123 host names.
func Hostname(s string) bool {
	return len(s) <= 253 && hostnamePattern.MatchString(s)
}

// Regex accepts patterns the Go regexp engine compiles.
func Regex(s string) bool {
	_, err := regexp.Compile(s)
	return err == nil
}
