package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command line flag.
type cliFlags struct {
	config         string
	strict         bool
	document       bool
	title          string
	date           string
	style          string
	avoidDevDeps   bool
	avoidBuildDeps bool
	listLicenses   bool
	version        bool
}

// parseFlags parses args (without the program name) and returns the
// positional arguments. -h and --help yield flag.ErrHelp.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("licensedoc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.strict, "strict", false, "exit non-zero when generation fails")
	fs.BoolVar(&f.document, "document", false, "wrap output in a full HTML5 document")
	fs.StringVar(&f.title, "title", "", "document title (with --document)")
	fs.StringVar(&f.date, "date", "", "generated stamp: text, auto or auto:FORMAT (with --document)")
	fs.StringVar(&f.style, "style", "", "built-in style name or CSS file path (with --document)")
	fs.BoolVar(&f.avoidDevDeps, "avoid-dev-deps", false, "skip dev-only dependencies")
	fs.BoolVar(&f.avoidBuildDeps, "avoid-build-deps", false, "skip build-only dependencies")
	fs.BoolVar(&f.listLicenses, "list-licenses", false, "list known license identifiers and exit")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
