package exprvm

import (
	"log/slog"
)

// Option is an option for evaluating expressions.
type Option interface {
	option()
}

type (
	noopt    struct{}
	traceopt struct {
		log *slog.Logger
	}
)

func (noopt) option()    {}
func (traceopt) option() {}

// NoOptimize disables constant folding.
func NoOptimize() Option {
	return noopt{}
}

// Trace logs compilation summaries and every executed instruction to log at
// debug level.
func Trace(log *slog.Logger) Option {
	return traceopt{log}
}

type config struct {
	noopt bool
	log   *slog.Logger
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case noopt:
			cfg.noopt = true
		case traceopt:
			cfg.log = opt.log
		default:
			panic("exprvm: unknown option type")
		}
	}
	return cfg
}

// Evaluate parses, compiles, optimizes, and runs an expression against r.
func Evaluate(src string, r *Registry, opts ...Option) (Value, error) {
	cfg := newConfig(opts)
	e, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	p, err := Compile(r, e)
	if err != nil {
		return Value{}, err
	}
	if cfg.log != nil {
		cfg.log.Debug("compiled", slog.String("expr", e.String()), slog.Int("instructions", p.Len()))
	}
	if !cfg.noopt {
		p = Optimize(p)
		if cfg.log != nil {
			cfg.log.Debug("optimized", slog.Int("instructions", p.Len()))
		}
	}
	m := Machine{log: cfg.log}
	return m.Run(p, r)
}
