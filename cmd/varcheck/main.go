package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/varcheck"
	"github.com/fwojciec/varcheck/goquery"
	"github.com/fwojciec/varcheck/html"
	"github.com/rs/zerolog"
)

// Exit statuses.
const (
	exitOK       = 0 // all checks passed
	exitMismatch = 1 // one or more checks failed
	exitUsage    = 2 // missing input or bad invocation
)

func main() {
	m := NewMain()
	os.Exit(m.Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Main represents the program.
type Main struct {
	// Extractor produces the per-document content extraction.
	Extractor varcheck.Extractor

	// Scoper narrows documents when --scope is given.
	Scoper varcheck.Scoper
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Extractor: html.NewExtractor(),
		Scoper:    goquery.NewScoper(),
	}
}

// Run executes the CLI with the given arguments and returns the process
// exit status.
func (m *Main) Run(args []string, stdout, stderr io.Writer) int {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("varcheck"),
		kong.Description("Verify that a variant HTML document keeps content identical to a base document."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return exitUsage
	}
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return exitOK
		}
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	// Logging setup
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(zerolog.WarnLevel)
	if cli.Verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	// Both existence checks run before any file is read or parsed.
	missing := false
	if _, err := os.Stat(cli.Base); err != nil {
		fmt.Fprintf(stderr, "Base file not found: %s\n", cli.Base)
		missing = true
	}
	for _, path := range cli.Variants {
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(stderr, "Variant file not found: %s\n", path)
			missing = true
		}
	}
	if missing {
		return exitUsage
	}

	mode := varcheck.ModeOrderedText
	if cli.UnorderedText {
		mode = varcheck.ModeUnorderedText
	}

	base, err := m.extract(cli.Base, cli.Scope, logger)
	if err != nil {
		return writeError(stderr, err)
	}

	status := exitOK
	for _, path := range cli.Variants {
		variant, err := m.extract(path, cli.Scope, logger)
		if err != nil {
			return writeError(stderr, err)
		}

		report := varcheck.Compare(base, variant, mode)
		if report.OK() {
			continue
		}
		if len(cli.Variants) > 1 {
			fmt.Fprintf(stderr, "%s:\n", path)
		}
		varcheck.WriteReport(stderr, report)
		status = exitMismatch
	}

	if status == exitOK {
		fmt.Fprintln(stdout, "OK")
	}
	return status
}

// extract reads one file fully, optionally narrows it to the scoped
// subtrees, and runs content extraction.
func (m *Main) extract(path, scope string, logger zerolog.Logger) (*varcheck.Extraction, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, varcheck.Errorf(varcheck.EINTERNAL, "failed to read %s: %v", path, err)
	}

	doc := string(raw)
	if scope != "" {
		doc, err = m.Scoper.Scope(doc, scope)
		if err != nil {
			return nil, varcheck.Errorf(varcheck.ErrorCode(err), "%s: %s", path, varcheck.ErrorMessage(err))
		}
	}

	result, err := m.Extractor.Extract(doc)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("text_nodes", len(result.TextNodes)).
		Int("ids", len(result.IDs)).
		Int("hrefs", len(result.AnchorHrefs)).
		Uint64("fingerprint", result.Fingerprint()).
		Msg("extracted")

	return result, nil
}

// writeError reports a non-mismatch failure and picks its exit status:
// bad user input (missing scope match, invalid selector) exits like a
// usage error, everything else like a failed run.
func writeError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "error: %s\n", varcheck.ErrorMessage(err))
	switch varcheck.ErrorCode(err) {
	case varcheck.ENOTFOUND, varcheck.EINVALID:
		return exitUsage
	default:
		return exitMismatch
	}
}
