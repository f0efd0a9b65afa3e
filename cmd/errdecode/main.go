// errdecode resolves packed domain errors found in log output.
//
// Programs that log errors with errdomain.Pack write "TTTTTTTT: CCCCCCCC"
// pairs that only the process which registered the domain can name. errdecode
// loads YAML catalogs describing those domains and rewrites each input as
// "name: message". Inputs it cannot resolve are printed unchanged.
//
// Inputs are taken from the arguments, or from stdin one line at a time when
// there are none. With --type and --code the two halves are given separately.
package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jmgilman/go/errdomain"
	"github.com/jmgilman/go/errdomain/catalog"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/billy"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	catalogs  []string
	typeText  string
	codeText  string
	colorMode string
	verbose   bool
	help      bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("errdecode", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringSliceVarP(&opts.catalogs, "catalog", "c", nil, "catalog file or directory (repeatable)")
	flagSet.StringVar(&opts.typeText, "type", "", "domain tag as 8 hex digits (requires --code)")
	flagSet.StringVar(&opts.codeText, "code", "", "error code as 8 hex digits (requires --type)")
	flagSet.StringVar(&opts.colorMode, "color", "auto", "highlight resolved lines: auto, always, never")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log catalog registration to stderr")
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if stderrors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return errors.Wrap(err, errors.CodeInvalidConfig, "invalid arguments")
	}
	if opts.help {
		printHelp(stderr, flagSet)
		return nil
	}

	fieldMode := flagSet.Changed("type") || flagSet.Changed("code")
	if fieldMode && !(flagSet.Changed("type") && flagSet.Changed("code")) {
		return errors.New(errors.CodeInvalidConfig, "--type and --code must be given together")
	}
	if fieldMode && flagSet.NArg() > 0 {
		return errors.New(errors.CodeInvalidConfig, "--type and --code do not take arguments")
	}

	highlight, err := colorEnabled(opts.colorMode, stdout)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	registry, err := newRegistry(ctx, logger, opts.catalogs)
	if err != nil {
		return err
	}

	d := &decoder{
		registry: registry,
		out:      stdout,
		changed:  color.New(color.FgGreen),
	}
	if highlight {
		d.changed.EnableColor()
	} else {
		d.changed.DisableColor()
	}

	if fieldMode {
		return d.write(opts.typeText+": "+opts.codeText, registry.ParseFields(opts.typeText, opts.codeText))
	}
	if flagSet.NArg() > 0 {
		for _, arg := range flagSet.Args() {
			if err := d.decode(arg); err != nil {
				return err
			}
		}
		return nil
	}

	// Log lines may be arbitrarily long.
	reader := bufio.NewReader(stdin)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if derr := d.decode(line); derr != nil {
				return derr
			}
		}
		if stderrors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, errors.CodeInvalidInput, "failed to read input")
		}
	}
}

// newRegistry builds a registry holding the built-in categories, the errdomain
// package's own domain, and every catalog found at paths.
func newRegistry(ctx context.Context, logger *slog.Logger, paths []string) (*errdomain.Registry, error) {
	registry := errdomain.NewRegistry(errdomain.WithLogger(logger))
	errdomain.PackageDomain.RegisterIn(registry, errdomain.CodeUnknown.Category())

	loader := catalog.NewLoader(billy.NewLocal())
	for _, path := range paths {
		// The local filesystem is rooted at "/".
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid catalog path",
				map[string]interface{}{"path": path})
		}
		cats, perr := loader.Load(ctx, abs)
		if perr != nil {
			return nil, perr
		}
		if perr := catalog.RegisterAll(registry, cats...); perr != nil {
			logger.Warn("skipped duplicate catalogs", "path", path, "error", perr)
		}
		logger.Debug("loaded catalogs", "path", abs, "count", len(cats))
	}
	return registry, nil
}

type decoder struct {
	registry *errdomain.Registry
	out      io.Writer
	changed  *color.Color
}

func (d *decoder) decode(line string) error {
	return d.write(line, d.registry.Parse(line))
}

func (d *decoder) write(input, resolved string) error {
	var err error
	if resolved != input {
		_, err = d.changed.Fprintln(d.out, resolved)
	} else {
		_, err = fmt.Fprintln(d.out, resolved)
	}
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to write output")
	}
	return nil
}

// colorEnabled resolves the --color mode. In auto mode colour is used when out
// is a terminal and NO_COLOR is unset.
func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		if file, ok := out.(*os.File); ok {
			return term.IsTerminal(int(file.Fd())), nil
		}
		return false, nil
	default:
		return false, errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "invalid --color value %q", mode),
			"allowed", []string{"auto", "always", "never"},
		)
	}
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `errdecode resolves packed domain errors ("TTTTTTTT: CCCCCCCC") into
"name: message" text using YAML catalogs.

Usage:
  errdecode [flags] [packed...]
  errdecode [flags] --type TTTTTTTT --code CCCCCCCC
  some-service 2>&1 | errdecode -c catalogs/

Examples:
  # Resolve a single value
  errdecode -c catalogs/core.yaml "82AFFE53: 00000001"

  # Resolve a tag and code logged as separate fields
  errdecode -c catalogs/ --type 82AFFE53 --code 00000001

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
