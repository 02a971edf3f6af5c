package durationlex

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// datePattern matches date components: Y, M, D.
	datePattern = regexp.MustCompile(`(\d+)Y|(\d+)M|(\d+)D`)

	// timePattern matches time components: H, M, S.
	timePattern = regexp.MustCompile(`(\d+)H|(\d+)M|(\d+)S`)

	// durationPattern validates the RFC 3339 Appendix A duration grammar.
	durationPattern = regexp.MustCompile(`^P(?:(\d+Y)?(\d+M)?(\d+D)?(T(\d+H)?(\d+M)?(\d+S)?)?|(\d+W))$`)
)

// Duration is a parsed ISO 8601 duration. Weeks never combine with other components.
type Duration struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Parse parses a duration such as "PT2M1S", "P1Y2M" or "P3W".
func Parse(s string) (Duration, error) {
	if s == "" {
		return Duration{}, fmt.Errorf("empty duration")
	}
	if s[0] != 'P' {
		return Duration{}, fmt.Errorf("duration must start with P")
	}
	if !durationPattern.MatchString(s) {
		return Duration{}, fmt.Errorf("invalid duration format: %s", s)
	}

	body := s[1:]
	if body == "" {
		return Duration{}, fmt.Errorf("duration must have at least one component")
	}

	maxComponent := uint64(^uint(0) >> 1)
	parseComponent := func(value, label string) (int, error) {
		u, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, fmt.Errorf("%s value too large", label)
			}
			return 0, fmt.Errorf("invalid %s value: %w", label, err)
		}
		if u > maxComponent {
			return 0, fmt.Errorf("%s value too large", label)
		}
		return int(u), nil
	}

	if weeks, ok := strings.CutSuffix(body, "W"); ok {
		val, err := parseComponent(weeks, "week")
		if err != nil {
			return Duration{}, err
		}
		return Duration{Weeks: val}, nil
	}

	datePart := body
	timePart := ""
	if before, after, ok := strings.Cut(body, "T"); ok {
		datePart = before
		timePart = after
		if timePart == "" {
			return Duration{}, fmt.Errorf("time designator present but no time components specified")
		}
	}

	var d Duration
	for _, match := range datePattern.FindAllStringSubmatch(datePart, -1) {
		var err error
		switch {
		case match[1] != "":
			d.Years, err = parseComponent(match[1], "year")
		case match[2] != "":
			d.Months, err = parseComponent(match[2], "month")
		case match[3] != "":
			d.Days, err = parseComponent(match[3], "day")
		}
		if err != nil {
			return Duration{}, err
		}
	}
	for _, match := range timePattern.FindAllStringSubmatch(timePart, -1) {
		var err error
		switch {
		case match[1] != "":
			d.Hours, err = parseComponent(match[1], "hour")
		case match[2] != "":
			d.Minutes, err = parseComponent(match[2], "minute")
		case match[3] != "":
			d.Seconds, err = parseComponent(match[3], "second")
		}
		if err != nil {
			return Duration{}, err
		}
	}
	return d, nil
}

// Valid reports whether s is a well-formed duration.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// String formats d in canonical form, omitting zero components.
func (d Duration) String() string {
	if d.Weeks != 0 {
		return "P" + strconv.Itoa(d.Weeks) + "W"
	}

	var buf strings.Builder
	buf.Grow(24)
	buf.WriteByte('P')
	hasDate := false
	for _, c := range []struct {
		v      int
		suffix byte
	}{{d.Years, 'Y'}, {d.Months, 'M'}, {d.Days, 'D'}} {
		if c.v != 0 {
			buf.WriteString(strconv.Itoa(c.v))
			buf.WriteByte(c.suffix)
			hasDate = true
		}
	}

	hasTime := d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0
	if !hasDate && !hasTime {
		return "PT0S"
	}
	if !hasTime {
		return buf.String()
	}
	buf.WriteByte('T')
	for _, c := range []struct {
		v      int
		suffix byte
	}{{d.Hours, 'H'}, {d.Minutes, 'M'}, {d.Seconds, 'S'}} {
		if c.v != 0 {
			buf.WriteString(strconv.Itoa(c.v))
			buf.WriteByte(c.suffix)
		}
	}
	return buf.String()
}
