package schema

import "github.com/neume-network/schema/internal/format"

// CompileOption configures Compile and CompileRule.
type CompileOption interface {
	apply(*compileOptions)
}

type compileOptionFunc func(*compileOptions)

func (f compileOptionFunc) apply(o *compileOptions) { f(o) }

type compileOptions struct {
	formats  format.Registry
	failFast bool
}

// WithFailFast stops evaluation at the first diagnostic.
func WithFailFast() CompileOption {
	return compileOptionFunc(func(o *compileOptions) {
		o.failFast = true
	})
}

// WithFormat registers or replaces a named string format.
func WithFormat(name string, check func(string) bool) CompileOption {
	return compileOptionFunc(func(o *compileOptions) {
		o.formats[name] = check
	})
}

func resolveOptions(opts []CompileOption) compileOptions {
	o := compileOptions{formats: format.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&o)
		}
	}
	return o
}
