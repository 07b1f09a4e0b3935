package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/exprvm"
)

func main() {
	var (
		inname, verb, varsname, color string
		with                          [][2]string
		nl, echo, dis, opt, trace     bool
		prec                          int
	)
	given := func(s string) error {
		d, err := parseGiven(s)
		if err != nil {
			return err
		}
		with = append(with, d)
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%v", "result formatting string")
	flag.Func("given", "set a variable to the value of an expr, as name=expr (repeatable)", given)
	flag.StringVar(&varsname, "vars", "", "YAML file of variable definitions, applied before -given")
	flag.IntVar(&prec, "p", 0, "precision in bits of transcendental builtins (0 for float64)")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&dis, "dis", false, "print compiled programs")
	flag.BoolVar(&opt, "O", true, "fold constants before running")
	flag.StringVar(&color, "color", "auto", "color diagnostics: auto, always, or never")
	flag.BoolVar(&trace, "trace", false, "log every executed instruction")
	flag.Parse()

	// Debug logging with -trace or a DEBUG environment variable.
	level := slog.LevelInfo
	if _, ok := os.LookupEnv("DEBUG"); ok || trace {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if prec < 0 {
		log.Error("precision must not be negative", "p", prec)
		os.Exit(2)
	}
	colorize, err := wantColor(color)
	if err != nil {
		log.Error("bad -color", "error", err)
		os.Exit(2)
	}

	reg := exprvm.PreciseRegistry(uint(prec))
	if varsname != "" {
		b, err := os.ReadFile(varsname)
		if err != nil {
			log.Error("reading variables", "error", err)
			os.Exit(1)
		}
		if err := exprvm.LoadVars(reg, b); err != nil {
			log.Error("loading variables", "file", varsname, "error", err)
			os.Exit(1)
		}
	}
	for _, d := range with {
		nm, src := d[0], d[1]
		r, err := exprvm.Evaluate(src, reg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "setting %s:\n", nm)
			fmt.Fprint(os.Stderr, exprvm.FormatError(src, err, colorize))
			os.Exit(1)
		}
		reg.Set(nm, r)
	}

	srcs, err := inputs(inname, flag.Args(), nl)
	if err != nil {
		log.Error("reading input", "error", err)
		os.Exit(1)
	}

	var opts []exprvm.Option
	if trace {
		opts = append(opts, exprvm.Trace(log))
	}
	m := exprvm.NewMachine(opts...)
	verb += "\n"
	failed := false
	for _, src := range srcs {
		r, err := run(m, reg, src, echo, dis, opt)
		if err != nil {
			fmt.Fprint(os.Stderr, exprvm.FormatError(src, err, colorize))
			failed = true
			continue
		}
		fmt.Printf(verb, r)
	}
	if failed {
		os.Exit(1)
	}
}

func run(m *exprvm.Machine, reg *exprvm.Registry, src string, echo, dis, opt bool) (exprvm.Value, error) {
	a, err := exprvm.Parse(src)
	if err != nil {
		return exprvm.Value{}, err
	}
	if echo {
		fmt.Printf("%v : ", a)
	}
	p, err := exprvm.Compile(reg, a)
	if err != nil {
		return exprvm.Value{}, err
	}
	if opt {
		p = exprvm.Optimize(p)
	}
	if dis {
		fmt.Print(p)
	}
	return m.Run(p, reg)
}

// parseGiven splits a -given argument into its name and expr.
func parseGiven(s string) ([2]string, error) {
	nm, src, ok := strings.Cut(s, "=")
	nm, src = strings.TrimSpace(nm), strings.TrimSpace(src)
	if !ok || nm == "" || src == "" {
		return [2]string{}, fmt.Errorf(`-given wants "name=expr", got %q`, s)
	}
	return [2]string{nm, src}, nil
}

// inputs collects the expressions to evaluate.
func inputs(inname string, args []string, nl bool) ([]string, error) {
	var srcs []string
	var f io.Reader
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	case inname == "-", len(args) == 0:
		f = os.Stdin
	}
	if f != nil {
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		if nl {
			for _, line := range strings.Split(string(b), "\n") {
				if strings.TrimSpace(line) != "" {
					srcs = append(srcs, line)
				}
			}
		} else {
			srcs = append(srcs, string(b))
		}
	}
	return append(srcs, args...), nil
}

func wantColor(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		fd := os.Stderr.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	default:
		return false, fmt.Errorf("unknown color mode %q", mode)
	}
}
