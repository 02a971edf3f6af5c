package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/neume-network/schema/internal/format"
	"github.com/neume-network/schema/rule"
)

// Options configures compilation and evaluation.
type Options struct {
	Formats  format.Registry
	FailFast bool
}

// Validator evaluates candidates against one compiled rule tree.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	root     *node
	failFast bool
}

type node struct {
	path string

	types    rule.Types
	hasConst bool
	constVal any
	enum     []any

	format     string
	checker    format.Checker
	pattern    *regexp.Regexp
	patternSrc string
	minLength  *int
	minimum    *float64

	minItems *int
	items    *node
	tuple    []*node
	contains *node

	required      []string
	properties    []namedNode
	patternProps  []patternNode
	propertyNames *node
	closed        bool
	deps          []dependency

	tag      string
	branches map[string]int
	oneOf    []*node
}

type namedNode struct {
	name string
	node *node
}

type patternNode struct {
	src  string
	re   *regexp.Regexp
	node *node
}

type dependency struct {
	property string
	requires []string
}

// New compiles r. Unknown formats, invalid patterns and ambiguous
// discriminator mappings are compile errors.
func New(r *rule.Rule, opts Options) (*Validator, error) {
	if r == nil {
		return nil, fmt.Errorf("compile rule: nil rule")
	}
	formats := opts.Formats
	if formats == nil {
		formats = format.Default()
	}
	c := compiler{formats: formats}
	root, err := c.compile(r, "#")
	if err != nil {
		return nil, err
	}
	return &Validator{root: root, failFast: opts.FailFast}, nil
}

type compiler struct {
	formats  format.Registry
	patterns map[string]*regexp.Regexp
}

func (c *compiler) regexp(path, src string) (*regexp.Regexp, error) {
	if re, ok := c.patterns[src]; ok {
		return re, nil
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile rule %s: invalid pattern: %w", path, err)
	}
	if c.patterns == nil {
		c.patterns = make(map[string]*regexp.Regexp)
	}
	c.patterns[src] = re
	return re, nil
}

func (c *compiler) compile(r *rule.Rule, path string) (*node, error) {
	n := &node{
		path:      path,
		types:     r.Type,
		enum:      r.Enum,
		format:    r.Format,
		minLength: r.MinLength,
		minimum:   r.Minimum,
		minItems:  r.MinItems,
		required:  r.Required,
	}
	for _, t := range r.Type {
		if !knownType(t) {
			return nil, fmt.Errorf("compile rule %s: unknown type %q", path, t)
		}
	}
	if r.Const != nil {
		n.hasConst = true
		n.constVal = r.Const
	}
	if r.Format != "" {
		checker, ok := c.formats.Lookup(r.Format)
		if !ok {
			return nil, fmt.Errorf("compile rule %s: unknown format %q", path, r.Format)
		}
		n.checker = checker
	}
	if r.Pattern != "" {
		re, err := c.regexp(path, r.Pattern)
		if err != nil {
			return nil, err
		}
		n.pattern = re
		n.patternSrc = r.Pattern
	}

	if r.Items != nil {
		if r.Items.Tuple != nil {
			for i, item := range r.Items.Tuple {
				child, err := c.compileChild(item, path+"/items/"+strconv.Itoa(i))
				if err != nil {
					return nil, err
				}
				n.tuple = append(n.tuple, child)
			}
		} else if r.Items.Each != nil {
			child, err := c.compileChild(r.Items.Each, path+"/items")
			if err != nil {
				return nil, err
			}
			n.items = child
		}
	}
	if r.Contains != nil {
		child, err := c.compileChild(r.Contains, path+"/contains")
		if err != nil {
			return nil, err
		}
		n.contains = child
	}

	for _, prop := range r.Properties {
		child, err := c.compileChild(prop.Rule, path+"/properties/"+escapePointer(prop.Name))
		if err != nil {
			return nil, err
		}
		n.properties = append(n.properties, namedNode{name: prop.Name, node: child})
	}
	for _, prop := range r.PatternProperties {
		childPath := path + "/patternProperties/" + escapePointer(prop.Name)
		re, err := c.regexp(childPath, prop.Name)
		if err != nil {
			return nil, err
		}
		child, err := c.compileChild(prop.Rule, childPath)
		if err != nil {
			return nil, err
		}
		n.patternProps = append(n.patternProps, patternNode{src: prop.Name, re: re, node: child})
	}
	if r.PropertyNames != nil {
		child, err := c.compileChild(r.PropertyNames, path+"/propertyNames")
		if err != nil {
			return nil, err
		}
		n.propertyNames = child
	}
	if r.AdditionalProperties != nil && !*r.AdditionalProperties {
		n.closed = true
	}
	if len(r.Dependencies) > 0 {
		keys := make([]string, 0, len(r.Dependencies))
		for k := range r.Dependencies {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			n.deps = append(n.deps, dependency{property: k, requires: r.Dependencies[k]})
		}
	}

	for i, branch := range r.OneOf {
		child, err := c.compileChild(branch, path+"/oneOf/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		n.oneOf = append(n.oneOf, child)
	}
	if r.Discriminator != nil {
		if err := n.bindDiscriminator(r); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (c *compiler) compileChild(r *rule.Rule, path string) (*node, error) {
	if r == nil {
		return &node{path: path}, nil
	}
	return c.compile(r, path)
}

func (n *node) bindDiscriminator(r *rule.Rule) error {
	tag := r.Discriminator.PropertyName
	if tag == "" {
		return fmt.Errorf("compile rule %s: discriminator requires propertyName", n.path)
	}
	if len(r.OneOf) == 0 {
		return fmt.Errorf("compile rule %s: discriminator requires oneOf", n.path)
	}
	n.tag = tag
	n.branches = make(map[string]int, len(r.OneOf))
	for i, branch := range r.OneOf {
		var tagRule *rule.Rule
		if branch != nil {
			tagRule, _ = branch.Properties.Get(tag)
		}
		values, err := tagValues(tagRule)
		if err != nil {
			return fmt.Errorf("compile rule %s: oneOf branch %d: %w", n.path, i, err)
		}
		for _, v := range values {
			if prev, dup := n.branches[v]; dup {
				return fmt.Errorf("compile rule %s: tag value %q maps to branches %d and %d", n.path, v, prev, i)
			}
			n.branches[v] = i
		}
	}
	return nil
}

func tagValues(r *rule.Rule) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("discriminator property not declared")
	}
	if r.Const != nil {
		s, ok := r.Const.(string)
		if !ok {
			return nil, fmt.Errorf("discriminator const must be a string")
		}
		return []string{s}, nil
	}
	if len(r.Enum) == 0 {
		return nil, fmt.Errorf("discriminator property needs const or enum")
	}
	out := make([]string, 0, len(r.Enum))
	for _, v := range r.Enum {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("discriminator enum values must be strings")
		}
		out = append(out, s)
	}
	return out, nil
}

func knownType(t string) bool {
	switch t {
	case "null", "boolean", "object", "array", "number", "integer", "string":
		return true
	default:
		return false
	}
}
