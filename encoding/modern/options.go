package modern

import "context"

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

func WithContext(ctx context.Context) Option {
	return optionFn(func(o *Options) { o.Ctx = ctx })
}

// WithFlags sets flags on top of the defaults.
func WithFlags(flags Flags) Option {
	return optionFn(func(o *Options) { o.Flags |= flags })
}

// WithoutFlags clears flags.
func WithoutFlags(flags Flags) Option {
	return optionFn(func(o *Options) { o.Flags &^= flags })
}

func WithBackend(backend Backend) Option {
	return optionFn(func(o *Options) { o.Backend = backend })
}

func defaultOptions() Options {
	return Options{
		Flags:   DefaultFlags,
		Backend: BackendJsoniter,
	}
}

func resolveOptions(ctx context.Context, opts []Option) Options {
	result := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&result)
	}
	if ctx != nil {
		result.Ctx = ctx
	}
	if result.Ctx == nil {
		result.Ctx = context.Background()
	}
	if result.Backend == "" {
		result.Backend = BackendJsoniter
	}
	return result
}
