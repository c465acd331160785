package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"taginput/internal/candidates"
	"taginput/internal/config"
	"taginput/internal/debug"
	apperrors "taginput/internal/errors"
	"taginput/internal/taginput"
	"taginput/internal/ui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// errCancelled is returned when the user leaves without submitting.
var errCancelled = errors.New("cancelled")

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	flags := registerFlags(flag.CommandLine)
	flag.Parse()

	if *flags.version {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	if err := config.ApplyOverrides(computeOverrides(flags, visitedFlags(flag.CommandLine))); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := debug.Init(*flags.debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
	}

	err := run(context.Background(), parseTagList(*flags.tags), os.Stdout,
		func() loadReporter { return newLoadSpinner(os.Stderr, defaultSpinnerDelay) },
		func(m tea.Model) programRunner { return tea.NewProgram(m, tea.WithAltScreen()) },
	)
	logPath := debug.Path()
	if err != nil && !errors.Is(err, errCancelled) {
		debug.App.Warnf("exiting: %v", err)
	}
	debug.Close()
	switch {
	case errors.Is(err, errCancelled):
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if logPath != "" {
			fmt.Fprintf(os.Stderr, "Session log: %s\n", logPath)
		}
		os.Exit(1)
	}
}

type cliFlags struct {
	debug       *bool
	version     *bool
	maxItems    *int
	readonly    *bool
	addOnBlur   *bool
	placeholder *string
	candidates  *string
	db          *string
	query       *string
	matcher     *string
	theme       *string
	output      *string
	tags        *string
}

// registerFlags defines the command line on fs, defaulting each flag to the
// loaded configuration.
func registerFlags(fs *flag.FlagSet) cliFlags {
	return cliFlags{
		debug:       fs.Bool("debug", false, "Write diagnostics to ~/.taginput/debug.log"),
		version:     fs.Bool("version", false, "Print version information and exit"),
		maxItems:    fs.Int("max-items", config.GetInt(config.KeyMaxItems), "Maximum number of tags (0 for no limit)"),
		readonly:    fs.Bool("readonly", config.GetBool(config.KeyReadOnly), "Show tags without allowing edits"),
		addOnBlur:   fs.Bool("add-on-blur", config.GetBool(config.KeyAddOnBlur), "Add the typed text as a tag when submitting"),
		placeholder: fs.String("placeholder", config.GetString(config.KeyPlaceholder), "Input placeholder"),
		candidates:  fs.String("candidates", config.GetString(config.KeyCandidatesFile), "YAML file of suggestions"),
		db:          fs.String("db", config.GetString(config.KeyCandidatesDatabase), "SQLite database of suggestions"),
		query:       fs.String("query", config.GetString(config.KeyCandidatesQuery), "SQL query returning suggestion labels"),
		matcher:     fs.String("matcher", config.GetString(config.KeyMatcher), "Suggestion matcher (substring, prefix, fuzzy)"),
		theme:       fs.String("theme", config.GetString(config.KeyTheme), "Color theme"),
		output:      fs.String("output", config.GetString(config.KeyOutputFormat), "Output format (lines, csv, json)"),
		tags:        fs.String("tags", "", "Comma-separated initial tags"),
	}
}

func visitedFlags(fs *flag.FlagSet) map[string]struct{} {
	visited := map[string]struct{}{}
	fs.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})
	return visited
}

// computeOverrides returns the config values set explicitly on the command
// line.
func computeOverrides(flags cliFlags, visited map[string]struct{}) map[string]any {
	overrides := map[string]any{}
	set := func(name, key string, value any) {
		if flagWasExplicitlySet(name, visited) {
			overrides[key] = value
		}
	}
	set("max-items", config.KeyMaxItems, *flags.maxItems)
	set("readonly", config.KeyReadOnly, *flags.readonly)
	set("add-on-blur", config.KeyAddOnBlur, *flags.addOnBlur)
	set("placeholder", config.KeyPlaceholder, *flags.placeholder)
	set("candidates", config.KeyCandidatesFile, strings.TrimSpace(*flags.candidates))
	set("db", config.KeyCandidatesDatabase, strings.TrimSpace(*flags.db))
	set("query", config.KeyCandidatesQuery, strings.TrimSpace(*flags.query))
	set("matcher", config.KeyMatcher, strings.TrimSpace(*flags.matcher))
	set("theme", config.KeyTheme, strings.TrimSpace(*flags.theme))
	set("output", config.KeyOutputFormat, strings.TrimSpace(*flags.output))
	return overrides
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	_, ok := visited[name]
	return ok
}

// parseTagList splits a comma-separated list, dropping blanks.
func parseTagList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(tea.Model) programRunner

type nopReporter struct{}

func (nopReporter) Source(string) {}

func (nopReporter) Stop() {}

// run loads configuration and suggestions, runs the editor and writes the
// submitted tags to out.
func run(ctx context.Context, initial []string, out io.Writer, newReporter func() loadReporter, factory programFactory) error {
	opts, err := config.TagInputOptions()
	if err != nil {
		return err
	}
	format := strings.ToLower(strings.TrimSpace(config.GetString(config.KeyOutputFormat)))
	if !validOutputFormat(format) {
		return apperrors.New(apperrors.CodeInvalidFlag, fmt.Sprintf("unknown output format %q", format), nil)
	}

	var reporter loadReporter = nopReporter{}
	if newReporter != nil {
		if r := newReporter(); r != nil {
			reporter = r
		}
	}
	source, err := candidates.Load(ctx, candidates.Sources{
		File:     config.GetString(config.KeyCandidatesFile),
		Database: config.GetString(config.KeyCandidatesDatabase),
		Query:    config.GetString(config.KeyCandidatesQuery),
		Report:   reporter.Source,
	})
	reporter.Stop()
	if err != nil {
		return fmt.Errorf("load candidates: %w", err)
	}
	if len(source) > 0 {
		opts = append(opts, taginput.WithCandidates(source))
	}
	if len(initial) > 0 {
		opts = append(opts, taginput.WithItems(taginput.Tags(initial...)...))
	}

	applyTheme(config.GetString(config.KeyTheme))

	m := newApp(opts...)
	if err := runProgram(m, factory); err != nil {
		return err
	}
	if !m.submitted {
		return errCancelled
	}
	return writeTags(out, format, m.tags)
}

func applyTheme(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if !theme.SetTheme(name) {
		debug.App.Logf("theme %q not found, using %s", name, theme.CurrentName())
	}
}

func runProgram(m tea.Model, factory programFactory) error {
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(m)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
