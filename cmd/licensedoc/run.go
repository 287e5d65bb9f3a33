package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	licensedoc "github.com/alnah/go-licensedoc"
	"github.com/alnah/go-licensedoc/internal/assets"
	"github.com/alnah/go-licensedoc/internal/config"
	"github.com/alnah/go-licensedoc/internal/dateutil"
	"github.com/alnah/go-licensedoc/internal/deps"
	"github.com/alnah/go-licensedoc/internal/fetch"
	"github.com/alnah/go-licensedoc/internal/fileutil"
	"github.com/alnah/go-licensedoc/internal/hints"
	"github.com/alnah/go-licensedoc/internal/licenses"
	"github.com/alnah/go-licensedoc/internal/logging"
)

// runMain runs the CLI and returns the process exit code.
//
// Errors found before generation starts (flags, arguments, config, log
// level) always produce a non-zero code. Generation failures are logged and
// exit 0 unless strict mode is on.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, positional, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "licensedoc %s\n", Version)
		return ExitSuccess
	}
	if flags.listLicenses {
		for _, id := range licenses.Identifiers() {
			fmt.Fprintln(env.Stdout, id)
		}
		return ExitSuccess
	}

	if len(positional) != 2 {
		fmt.Fprintf(env.Stderr, "error: %v: expected <manifest> <output>, got %d argument(s)\n", ErrUsage, len(positional))
		printUsage(env.Stderr)
		return ExitUsage
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags, envCfg)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, configSource(flags, envCfg), env.Getenv))
		return exitCodeFor(err)
	}

	logger, _, err := logging.New(cfg.Log.Level, env.Stderr)
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	defer func() { _ = logger.Sync() }()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))
	defer undo()

	warnUnknownEnvVars(env.Environ(), logger)

	strict := flags.strict || envCfg.Strict

	ctx, stop := notifyContext(context.Background())
	defer stop()

	gen, err := newGenerator(cfg, env, logger)
	if err != nil {
		logger.Error(err.Error() + hintFor(err, "", env.Getenv))
		return exitCodeFor(err)
	}
	if err := gen.Write(ctx, positional[0], positional[1]); err != nil {
		logger.Error(err.Error() + hintFor(err, "", env.Getenv))
		if strict {
			return exitCodeFor(err)
		}
	}
	return ExitSuccess
}

// loadConfig resolves the config file (flag first, then LICENSEDOC_CONFIG)
// and applies environment overrides. Without a file the defaults are used.
func loadConfig(flags *cliFlags, envCfg *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if source := configSource(flags, envCfg); source != "" {
		loaded, err := config.LoadConfig(source)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	return cfg, nil
}

// configSource returns the config flag, falling back to LICENSEDOC_CONFIG.
func configSource(flags *cliFlags, envCfg *envConfig) string {
	if flags.config != "" {
		return flags.config
	}
	return envCfg.ConfigPath
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, configName string, getenv func(string) string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		if fileutil.IsFilePath(configName) {
			return hints.ForConfigNotFound(nil)
		}
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, deps.ErrManifestNotFound):
		return hints.ForManifestNotFound()
	case errors.Is(err, deps.ErrCargoMetadata):
		return hints.ForCargoMetadata(getenv)
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.Styles())
	case errors.Is(err, licensedoc.ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}

// mergeFlags applies CLI flags on top of config. Boolean flags can only
// turn an option on.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.document {
		cfg.Output.Document = true
	}
	if flags.title != "" {
		cfg.Output.Title = flags.title
	}
	if flags.date != "" {
		cfg.Output.Date = flags.date
	}
	if flags.style != "" {
		cfg.Output.Style = flags.style
	}
	if flags.avoidDevDeps {
		cfg.Cargo.AvoidDevDeps = true
	}
	if flags.avoidBuildDeps {
		cfg.Cargo.AvoidBuildDeps = true
	}
}

// newGenerator wires the library from the resolved config.
func newGenerator(cfg *config.Config, env *Environment, logger *zap.Logger) (*licensedoc.Generator, error) {
	var rendererOpts []licensedoc.RendererOption
	if cfg.Output.Document {
		rendererOpts = append(rendererOpts, licensedoc.WithDocument())
	}
	if cfg.Output.Title != "" {
		rendererOpts = append(rendererOpts, licensedoc.WithTitle(cfg.Output.Title))
	}
	if cfg.Output.Date != "" {
		date, err := dateutil.Resolve(cfg.Output.Date, env.Now())
		if err != nil {
			return nil, fmt.Errorf("%w: output.date: %w", config.ErrInvalidValue, err)
		}
		rendererOpts = append(rendererOpts, licensedoc.WithDate(date))
	}
	if cfg.Output.Style != "" {
		css, err := assets.LoadStyle(cfg.Output.Style)
		if err != nil {
			return nil, err
		}
		rendererOpts = append(rendererOpts, licensedoc.WithStyle(css))
	}

	return licensedoc.New(
		licensedoc.WithLogger(logger),
		licensedoc.WithNow(env.Now),
		licensedoc.WithFetcher(fetch.NewHTTPFetcher(cfg.Fetch.Timeout)),
		licensedoc.WithRenderer(licensedoc.NewGoldmarkRenderer(rendererOpts...)),
		licensedoc.WithFetchOptions(licensedoc.FetchOptions{
			BaseURL: cfg.Fetch.BaseURL,
			Branch:  cfg.Fetch.Branch,
			Layout:  cfg.Fetch.RepoLayout,
		}),
		licensedoc.WithLoadOptions(licensedoc.LoadOptions{
			Cargo:          cfg.Cargo.Command,
			AvoidDevDeps:   cfg.Cargo.AvoidDevDeps,
			AvoidBuildDeps: cfg.Cargo.AvoidBuildDeps,
			Runner:         env.Runner,
		}),
	), nil
}
