package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/viant/phpjson/bench"
	"github.com/viant/phpjson/encoding/modern"
)

type options struct {
	configFile string
	iterations int
	seed       uint64
	backends   []string
	cases      []string
	format     string
	logLevel   string
	strict     bool
}

func main() {
	app := kingpin.New("phpjson-bench", "Benchmarks the legacy encoder against library-backed encoders.")
	opts := &options{}
	app.Flag("config", "YAML configuration file.").StringVar(&opts.configFile)
	app.Flag("iterations", "Timed calls per encoder; overrides the config file.").IntVar(&opts.iterations)
	app.Flag("seed", "Fixture seed; overrides the config file.").Uint64Var(&opts.seed)
	app.Flag("backend", "Modern encoder backend, repeatable.").EnumsVar(&opts.backends, backendNames()...)
	app.Flag("case", "Fixture case, repeatable.").StringsVar(&opts.cases)
	app.Flag("strict", "Fail when a fixture holds unrepresentable values.").BoolVar(&opts.strict)
	app.Flag("format", "Report format.").Default("text").EnumVar(&opts.format, "text", "json")
	app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").EnumVar(&opts.logLevel, "debug", "info", "warn", "error")
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(opts.logLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		level.Error(logger).Log("msg", "benchmark failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options, logger log.Logger) error {
	cfg, err := bench.LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	applyFlags(&cfg, opts)
	level.Info(logger).Log("msg", "starting", "iterations", cfg.Iterations, "seed", cfg.Seed, "backends", fmt.Sprint(cfg.Backends))
	results, err := bench.RunContext(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if opts.format == "json" {
		return bench.ReportJSON(ctx, os.Stdout, results)
	}
	return bench.ReportAll(os.Stdout, results)
}

func applyFlags(cfg *bench.Config, opts *options) {
	if opts.iterations != 0 {
		cfg.Iterations = opts.iterations
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if len(opts.backends) > 0 {
		cfg.Backends = cfg.Backends[:0]
		for _, name := range opts.backends {
			cfg.Backends = append(cfg.Backends, modern.Backend(name))
		}
	}
	if len(opts.cases) > 0 {
		cfg.Cases = opts.cases
	}
	if opts.strict {
		cfg.Strict = true
	}
}

func backendNames() []string {
	var names []string
	for _, backend := range modern.Backends() {
		names = append(names, string(backend))
	}
	return names
}

func newLogger(logLevel string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(logLevel, level.InfoValue())))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}
