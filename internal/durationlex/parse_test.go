package durationlex

import (
	"strconv"
	"strings"
	"testing"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		input string
		want  Duration
	}{
		{input: "PT2M1S", want: Duration{Minutes: 2, Seconds: 1}},
		{input: "PT3M", want: Duration{Minutes: 3}},
		{input: "P1Y2M3DT4H5M6S", want: Duration{Years: 1, Months: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6}},
		{input: "P3W", want: Duration{Weeks: 3}},
		{input: "P10D", want: Duration{Days: 10}},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
			if got.String() != tc.input {
				t.Fatalf("String() = %q, want %q", got.String(), tc.input)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"",
		"invalid duration",
		"P",
		"PT",
		"P1DT",
		"-PT1S",
		"PT1.5S",
		"P1W2D",
		"PT1S2M",
		"p1d",
		"P1H",
	}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Fatalf("Parse(%q) error = nil, want error", input)
			}
			if Valid(input) {
				t.Fatalf("Valid(%q) = true, want false", input)
			}
		})
	}
}

func TestParseComponentTooLarge(t *testing.T) {
	tooLarge := strconv.FormatUint(uint64(^uint(0)>>1)+1, 10)
	cases := []struct {
		name  string
		input string
	}{
		{name: "years", input: "P" + tooLarge + "Y"},
		{name: "weeks", input: "P" + tooLarge + "W"},
		{name: "hours", input: "PT" + tooLarge + "H"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), "too large") {
				t.Fatalf("error = %v, want contains 'too large'", err)
			}
		})
	}
}

func TestStringZero(t *testing.T) {
	if got := (Duration{}).String(); got != "PT0S" {
		t.Fatalf("String() = %q, want PT0S", got)
	}
}
