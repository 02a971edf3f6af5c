package mimetype

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	// ErrSelfCheck reports that a generated pattern failed its known-value checks.
	ErrSelfCheck = errors.New("mimetype pattern self-check failed")
	// ErrEmptySelection reports that no registry key fell into the allowed categories.
	ErrEmptySelection = errors.New("no media types selected")
)

// DefaultCategories are the top-level types treated as shareable media.
// application, model, message and multipart are left out as too broad.
var DefaultCategories = []string{"audio", "font", "image", "text", "video"}

// Option configures Generate.
type Option func(*generator)

type generator struct {
	categories []string
	accept     []string
	reject     []string
	selfCheck  bool
}

// WithCategories replaces the category allow-list.
func WithCategories(categories ...string) Option {
	return func(g *generator) {
		g.categories = categories
	}
}

// WithSelfCheck replaces the values the pattern must accept and reject.
func WithSelfCheck(accept, reject []string) Option {
	return func(g *generator) {
		g.accept = accept
		g.reject = reject
		g.selfCheck = true
	}
}

// Generate assembles an anchored alternation matching every registry key whose
// top-level type is allowed. Keys are sorted, regexp-quoted and have "/"
// escaped so the result embeds safely in a larger expression. The pattern is
// only returned after it accepts and rejects the self-check values. The
// default check expects audio/mp3 to match only when audio is selected.
func Generate(reg Registry, opts ...Option) (string, error) {
	g := generator{
		categories: DefaultCategories,
		accept:     []string{"audio/mp3"},
		reject:     []string{"audio/non-existent"},
	}
	for _, opt := range opts {
		opt(&g)
	}
	if !g.selfCheck && !slices.Contains(g.categories, "audio") {
		// audio/mp3 cannot match a selection without audio.
		g.accept = nil
	}

	keys := Select(reg, g.categories)
	if len(keys) == 0 {
		return "", fmt.Errorf("generate pattern for %s: %w", strings.Join(g.categories, ","), ErrEmptySelection)
	}

	quoted := make([]string, len(keys))
	for i, key := range keys {
		quoted[i] = Escape(key)
	}
	pattern := "^(?:" + strings.Join(quoted, "|") + ")$"

	if err := check(pattern, g.accept, g.reject); err != nil {
		return "", err
	}
	return pattern, nil
}

// Select returns the sorted registry keys whose segment before "/" is one of categories.
func Select(reg Registry, categories []string) []string {
	keys := make([]string, 0, len(reg))
	for key := range reg {
		top, _, ok := strings.Cut(key, "/")
		if !ok || !slices.Contains(categories, top) {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Escape quotes regexp metacharacters in a media type and escapes "/".
func Escape(mediaType string) string {
	return strings.ReplaceAll(regexp.QuoteMeta(mediaType), "/", `\/`)
}

func check(pattern string, accept, reject []string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%w: compile: %w", ErrSelfCheck, err)
	}
	for _, s := range accept {
		if !re.MatchString(s) {
			return fmt.Errorf("%w: %q not matched", ErrSelfCheck, s)
		}
	}
	for _, s := range reject {
		if re.MatchString(s) {
			return fmt.Errorf("%w: %q unexpectedly matched", ErrSelfCheck, s)
		}
	}
	return nil
}
