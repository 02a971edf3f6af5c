package validator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/neume-network/schema/errors"
)

// Validate evaluates value and returns the diagnostics in evaluation order.
// A nil result means the value conforms.
func (v *Validator) Validate(value any) errors.ValidationList {
	if v == nil || v.root == nil {
		return errors.ValidationList{errors.NewValidation(errors.ErrSchemaNotLoaded, "schema not loaded", "")}
	}
	w := &walker{failFast: v.failFast}
	w.visit(v.root, value, "")
	if len(w.out) == 0 {
		return nil
	}
	return w.out
}

type walker struct {
	failFast bool
	out      errors.ValidationList
}

func (w *walker) stop() bool {
	return w.failFast && len(w.out) > 0
}

func (w *walker) report(keyword errors.Keyword, n *node, instance, message string, params map[string]any) {
	w.out = append(w.out, errors.Validation{
		Keyword:      string(keyword),
		Message:      message,
		InstancePath: instance,
		SchemaPath:   n.path + "/" + string(keyword),
		Params:       params,
	})
}

// probe evaluates n in isolation and reports whether value passed.
func (w *walker) probe(n *node, value any, instance string, failFast bool) (errors.ValidationList, bool) {
	sub := &walker{failFast: failFast}
	sub.visit(n, value, instance)
	return sub.out, len(sub.out) == 0
}

func (w *walker) visit(n *node, value any, instance string) {
	if len(n.types) > 0 && !w.checkType(n, value, instance) {
		return
	}
	if n.hasConst && !equal(n.constVal, value) {
		w.report(errors.KeywordConst, n, instance, "must be equal to constant",
			map[string]any{"allowedValue": n.constVal})
		if w.stop() {
			return
		}
	}
	if len(n.enum) > 0 && !slices.ContainsFunc(n.enum, func(e any) bool { return equal(e, value) }) {
		w.report(errors.KeywordEnum, n, instance, "must be equal to one of the allowed values",
			map[string]any{"allowedValues": n.enum})
		if w.stop() {
			return
		}
	}

	switch val := value.(type) {
	case string:
		w.visitString(n, val, instance)
	case map[string]any:
		w.visitObject(n, val, instance)
	case []any:
		w.visitArray(n, val, instance)
	default:
		if f, ok := number(value); ok {
			w.visitNumber(n, f, instance)
		}
	}
	if w.stop() {
		return
	}

	switch {
	case n.tag != "":
		w.visitDiscriminated(n, value, instance)
	case len(n.oneOf) > 0:
		w.visitOneOf(n, value, instance)
	}
}

func (w *walker) checkType(n *node, value any, instance string) bool {
	for _, t := range n.types {
		if matchesType(value, t) {
			return true
		}
	}
	joined := strings.Join(n.types, ",")
	w.report(errors.KeywordType, n, instance, "must be "+joined, map[string]any{"type": joined})
	return false
}

func (w *walker) visitString(n *node, s, instance string) {
	if n.checker != nil && !n.checker(s) {
		w.report(errors.KeywordFormat, n, instance, fmt.Sprintf("must match format %q", n.format),
			map[string]any{"format": n.format})
		if w.stop() {
			return
		}
	}
	if n.pattern != nil && !n.pattern.MatchString(s) {
		msg := "must match pattern"
		if len(n.patternSrc) <= 80 {
			msg = fmt.Sprintf("must match pattern %q", n.patternSrc)
		}
		w.report(errors.KeywordPattern, n, instance, msg, map[string]any{"pattern": n.patternSrc})
		if w.stop() {
			return
		}
	}
	if n.minLength != nil && utf8.RuneCountInString(s) < *n.minLength {
		w.report(errors.KeywordMinLength, n, instance,
			fmt.Sprintf("must NOT have fewer than %d characters", *n.minLength),
			map[string]any{"limit": *n.minLength})
	}
}

func (w *walker) visitNumber(n *node, f float64, instance string) {
	if n.minimum != nil && f < *n.minimum {
		w.report(errors.KeywordMinimum, n, instance, "must be >= "+formatLimit(*n.minimum),
			map[string]any{"comparison": ">=", "limit": *n.minimum})
	}
}

func (w *walker) visitArray(n *node, items []any, instance string) {
	if n.minItems != nil && len(items) < *n.minItems {
		w.report(errors.KeywordMinItems, n, instance,
			fmt.Sprintf("must NOT have fewer than %d items", *n.minItems),
			map[string]any{"limit": *n.minItems})
		if w.stop() {
			return
		}
	}
	for i, item := range items {
		var child *node
		switch {
		case n.tuple != nil && i < len(n.tuple):
			child = n.tuple[i]
		case n.items != nil:
			child = n.items
		}
		if child == nil {
			continue
		}
		w.visit(child, item, instance+"/"+strconv.Itoa(i))
		if w.stop() {
			return
		}
	}
	if n.contains != nil {
		for i, item := range items {
			if _, ok := w.probe(n.contains, item, instance+"/"+strconv.Itoa(i), true); ok {
				return
			}
		}
		w.report(errors.KeywordContains, n, instance, "must contain at least 1 valid item(s)",
			map[string]any{"minContains": 1})
	}
}

func (w *walker) visitObject(n *node, obj map[string]any, instance string) {
	for _, name := range n.required {
		if _, ok := obj[name]; !ok {
			w.report(errors.KeywordRequired, n, instance, fmt.Sprintf("must have required property '%s'", name),
				map[string]any{"missingProperty": name})
			if w.stop() {
				return
			}
		}
	}

	for _, prop := range n.properties {
		val, ok := obj[prop.name]
		if !ok {
			continue
		}
		w.visit(prop.node, val, instance+"/"+escapePointer(prop.name))
		if w.stop() {
			return
		}
	}

	if len(n.patternProps) == 0 && n.propertyNames == nil && !n.closed && len(n.deps) == 0 {
		return
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		for _, pp := range n.patternProps {
			if !pp.re.MatchString(k) {
				continue
			}
			w.visit(pp.node, obj[k], instance+"/"+escapePointer(k))
			if w.stop() {
				return
			}
		}
	}

	if n.propertyNames != nil {
		for _, k := range keys {
			sub, ok := w.probe(n.propertyNames, k, instance, w.failFast)
			if ok {
				continue
			}
			w.out = append(w.out, sub...)
			w.report(errors.KeywordPropertyNames, n, instance, "property name must be valid",
				map[string]any{"propertyName": k})
			if w.stop() {
				return
			}
		}
	}

	if n.closed {
		for _, k := range keys {
			if n.declares(k) {
				continue
			}
			w.report(errors.KeywordAdditionalProperties, n, instance, "must NOT have additional properties",
				map[string]any{"additionalProperty": k})
			if w.stop() {
				return
			}
		}
	}

	for _, dep := range n.deps {
		if _, ok := obj[dep.property]; !ok {
			continue
		}
		for _, missing := range dep.requires {
			if _, ok := obj[missing]; ok {
				continue
			}
			w.report(errors.KeywordDependencies, n, instance,
				fmt.Sprintf("must have property %s when property %s is present", missing, dep.property),
				map[string]any{
					"property":        dep.property,
					"missingProperty": missing,
					"deps":            strings.Join(dep.requires, ", "),
					"depsCount":       len(dep.requires),
				})
			if w.stop() {
				return
			}
		}
	}
}

func (n *node) declares(name string) bool {
	for _, prop := range n.properties {
		if prop.name == name {
			return true
		}
	}
	for _, pp := range n.patternProps {
		if pp.re.MatchString(name) {
			return true
		}
	}
	return false
}

func (w *walker) visitOneOf(n *node, value any, instance string) {
	var passing []int
	var failures errors.ValidationList
	for i, branch := range n.oneOf {
		sub, ok := w.probe(branch, value, instance, w.failFast)
		if ok {
			passing = append(passing, i)
			continue
		}
		failures = append(failures, sub...)
	}
	if len(passing) == 1 {
		return
	}
	params := map[string]any{"passingSchemas": nil}
	if len(passing) > 1 {
		params["passingSchemas"] = passing
	} else {
		w.out = append(w.out, failures...)
		if w.stop() {
			return
		}
	}
	w.report(errors.KeywordOneOf, n, instance, "must match exactly one schema in oneOf", params)
}

func (w *walker) visitDiscriminated(n *node, value any, instance string) {
	obj, ok := value.(map[string]any)
	if !ok {
		return
	}
	raw, present := obj[n.tag]
	tagValue, isString := raw.(string)
	if !present || !isString {
		w.report(errors.KeywordDiscriminator, n, instance, fmt.Sprintf("tag %q must be string", n.tag),
			map[string]any{"error": "tag", "tag": n.tag, "tagValue": raw})
		return
	}
	idx, ok := n.branches[tagValue]
	if !ok {
		w.report(errors.KeywordDiscriminator, n, instance, fmt.Sprintf("value of tag %q must be in oneOf", n.tag),
			map[string]any{"error": "mapping", "tag": n.tag, "tagValue": tagValue})
		return
	}
	w.visit(n.oneOf[idx], value, instance)
}
