// Package cli implements the sampledata subcommands. Decoder backends are
// linked by the caller; only the ones it imports are selectable.
package cli

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nvr-ai/go-sampledata/codec"
	"github.com/nvr-ai/go-sampledata/config"
	"github.com/nvr-ai/go-sampledata/data"
	"github.com/nvr-ai/go-sampledata/logger"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// errUsage marks errors caused by bad arguments.
type errUsage struct{ msg string }

func (e errUsage) Error() string { return e.msg }

func usageErrorf(format string, args ...interface{}) error {
	return errUsage{msg: fmt.Sprintf(format, args...)}
}

// env is shared by every command.
type env struct {
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
}

// loader opens a loader from the resolved configuration.
func (e *env) loader() (*data.Loader, error) {
	if e.cfg.DataDir == "" {
		return nil, usageErrorf("no data directory: use -data-dir, -config or %s", config.EnvDataDir)
	}
	return data.Open(e.cfg)
}

type command struct {
	name    string
	usage   string
	summary string
	run     func(e *env, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"list", "list", "List catalog images with filenames and licensing notes", runList},
		{"info", "info <name>", "Show the header and EXIF fields of a catalog image", runInfo},
		{"load", "load [-gray] [-bool] <name|file>", "Load an image and print its shape, dtype and checksum", runLoad},
		{"export", "export [-gray] [-max N] [-quality Q] [-o out.{png,jpg,webp}] <name|file>", "Write an image back out", runExport},
		{"verify", "verify", "Check every catalog file exists and matches its extension", runVerify},
		{"bench", "bench [-n N]", "Load every catalog image N times and report timings", runBench},
		{"blobs", "blobs [-length L] [-fraction F] [-volume V] [-seed S] [-o out.png]", "Write a synthetic binary blob image", runBlobs},
	}
}

// Run parses global flags, resolves configuration and dispatches to a
// command.
//
// Arguments:
// - args: Command line arguments without the program name.
// - stdout: Where command output goes.
// - stderr: Where logs, errors and usage go.
//
// Returns:
// - The process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sampledata", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile = fs.String("config", "", "Path to a YAML or JSON configuration file")
		dataDir    = fs.String("data-dir", "", "Directory holding the sample images")
		backend    = fs.String("backend", "", "Decoder backend ("+strings.Join(codec.Backends(), ", ")+")")
		logLevel   = fs.String("log-level", "", "Log level (error, warn, info, debug, trace)")
	)
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ExitOK
		}
		return ExitUsage
	}

	cfg := config.Default()
	cfg.LogLevel = "warn"
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitFailure
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *logLevel != "" {
		cfg.LogLevel = strings.ToLower(*logLevel)
	}
	logger.InitializeWithWriter(logger.StringToLogLevel(cfg.LogLevel), stderr)

	if fs.NArg() == 0 {
		usage(fs)
		return ExitUsage
	}
	name, rest := fs.Arg(0), fs.Args()[1:]
	if name == "help" {
		usage(fs)
		return ExitOK
	}

	for _, c := range commands {
		if c.name != name {
			continue
		}
		err := c.run(&env{cfg: cfg, stdout: stdout, stderr: stderr}, rest)
		switch err.(type) {
		case nil:
			return ExitOK
		case errUsage:
			fmt.Fprintf(stderr, "%v\nusage: sampledata %s\n", err, c.usage)
			return ExitUsage
		default:
			if err == flag.ErrHelp {
				return ExitOK
			}
			fmt.Fprintf(stderr, "sampledata %s: %v\n", name, err)
			return ExitFailure
		}
	}

	fmt.Fprintf(stderr, "unknown command %q\n", name)
	usage(fs)
	return ExitUsage
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "usage: sampledata [flags] <command> [args]\n\nCommands:\n")
	sorted := append([]command(nil), commands...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })
	for _, c := range sorted {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "\nFlags:\n")
	fs.PrintDefaults()
}

// newFlagSet creates a subcommand flag set writing to stderr.
func newFlagSet(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

// parse parses subcommand flags and checks the positional argument count.
func parse(fs *flag.FlagSet, args []string, nArgs int) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return usageErrorf("%v", err)
	}
	if fs.NArg() != nArgs {
		return usageErrorf("%s: expected %d argument(s), got %d", fs.Name(), nArgs, fs.NArg())
	}
	return nil
}
