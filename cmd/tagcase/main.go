package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jeduden/tagcase/internal/config"
	"github.com/jeduden/tagcase/internal/discovery"
	"github.com/jeduden/tagcase/internal/engine"
	fixpkg "github.com/jeduden/tagcase/internal/fix"
	"github.com/jeduden/tagcase/internal/lint"
	"github.com/jeduden/tagcase/internal/log"
	"github.com/jeduden/tagcase/internal/output"
	"github.com/jeduden/tagcase/internal/rule"
	"github.com/jeduden/tagcase/internal/rules"

	// Import all rule packages so their init() functions register rules.
	_ "github.com/jeduden/tagcase/internal/rules/componentnamecasing"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

const usageText = `Usage: tagcase <command> [flags] [files...]

Commands:
  check     Check component tag casing in Vue and Markdown files
  fix       Rename component tags in place
  help      Show help for rules and topics
  init      Generate a default .tagcase.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'tagcase <command> --help' for more information on a command.
`

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch args[0] {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "check":
		return runCheck(args[1:])
	case "fix":
		return runFix(args[1:])
	case "help":
		return runHelp(args[1:])
	case "init":
		return runInit(args[1:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "tagcase: unknown command %q\n\n%s", args[0], usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("tagcase %s\n", version)
}

// options holds the flags shared by check and fix.
type options struct {
	configPath    string
	format        string
	noColor       bool
	quiet         bool
	noGitignore   bool
	verbose       bool
	jobs          int
	stdinFilename string
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVarP(&o.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&o.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVar(&o.noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Log config and files to stderr")
	fs.StringVar(&o.stdinFilename, "stdin-filename", "stdin.vue", "Path used for stdin input; its extension selects .vue or .md handling")
}

func (o *options) logger() *log.Logger {
	return &log.Logger{Enabled: o.verbose, W: os.Stderr}
}

// runCheck implements the "check" subcommand: report casing violations.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var o options
	o.register(fs)
	fs.IntVarP(&o.jobs, "jobs", "j", 0, "Files checked in parallel (default: number of CPUs)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tagcase check [flags] [files...]\n\n"+
			"Check that component tags in templates follow the configured casing.\n\n"+
			"Files can be paths, directories (walked recursively for *.vue and *.md), or glob patterns.\n"+
			"With no file arguments, reads from stdin if piped, otherwise checks the\n"+
			"files matched by the config 'files' patterns.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := o.logger()
	cfg, err := loadConfig(o.configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tagcase: %v\n", err)
		return 2
	}

	runner := &engine.Runner{
		Config:           cfg,
		Rules:            rule.All(),
		StripFrontMatter: cfg.FrontMatterEnabled(),
		Jobs:             o.jobs,
		Logger:           logger,
	}

	var result *engine.Result
	if fs.NArg() == 0 && isStdinPipe() {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tagcase: reading stdin: %v\n", err)
			return 2
		}
		result = runner.RunSource(o.stdinFilename, source)
	} else {
		files, err := resolveFiles(fs.Args(), cfg, &o)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tagcase: %v\n", err)
			return 2
		}
		if len(files) == 0 {
			return 0
		}
		result = runner.Run(files)
	}

	return report(&o, result.Diagnostics, result.Errors)
}

// runFix implements the "fix" subcommand: rename tags in place.
func runFix(args []string) int {
	fs := flag.NewFlagSet("fix", flag.ContinueOnError)
	var o options
	o.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tagcase fix [flags] [files...]\n\n"+
			"Rename component tags to the configured casing.\n\n"+
			"Files can be paths, directories (walked recursively for *.vue and *.md), or glob patterns.\n"+
			"With no file arguments and piped stdin, the fixed content is written to stdout.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := o.logger()
	cfg, err := loadConfig(o.configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tagcase: %v\n", err)
		return 2
	}

	fixer := &fixpkg.Fixer{
		Config:           cfg,
		Rules:            rule.All(),
		StripFrontMatter: cfg.FrontMatterEnabled(),
		Logger:           logger,
	}

	if fs.NArg() == 0 && isStdinPipe() {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tagcase: reading stdin: %v\n", err)
			return 2
		}
		out, diags, errs := fixer.FixSource(o.stdinFilename, source)
		if _, err := os.Stdout.Write(out); err != nil {
			fmt.Fprintf(os.Stderr, "tagcase: writing stdout: %v\n", err)
			return 2
		}
		return report(&o, diags, errs)
	}

	files, err := resolveFiles(fs.Args(), cfg, &o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tagcase: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		return 0
	}

	res := fixer.Fix(files)
	return report(&o, res.Diagnostics, res.Errors)
}

// resolveFiles expands file arguments, or the config's files patterns
// when there are none.
func resolveFiles(args []string, cfg *config.Config, o *options) ([]string, error) {
	useGitignore := !o.noGitignore
	if len(args) > 0 {
		return lint.ResolveFilesWithOpts(args, lint.ResolveOpts{UseGitignore: &useGitignore})
	}
	patterns := cfg.Files
	if len(patterns) == 0 {
		patterns = discovery.DefaultPatterns
	}
	return discovery.Discover(discovery.Options{
		Patterns:     patterns,
		UseGitignore: useGitignore,
	})
}

// report prints errors and diagnostics and returns the exit code.
func report(o *options, diags []lint.Diagnostic, errs []error) int {
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "tagcase: %v\n", e)
	}

	if !o.quiet && len(diags) > 0 {
		formatter, err := output.New(o.format, !o.noColor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tagcase: %v\n", err)
			return 2
		}
		if err := formatter.Format(os.Stderr, diags); err != nil {
			fmt.Fprintf(os.Stderr, "tagcase: error writing output: %v\n", err)
			return 2
		}
	}

	switch {
	case len(diags) > 0:
		return 1
	case len(errs) > 0:
		return 2
	default:
		return 0
	}
}

// runInit implements the "init" subcommand: generate .tagcase.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tagcase init\n\n"+
			"Generate a default %s config file in the current directory.\n", config.FileName)
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "tagcase: init takes no arguments\n")
		return 2
	}

	if _, err := os.Stat(config.FileName); err == nil {
		fmt.Fprintf(os.Stderr, "tagcase: %s already exists\n", config.FileName)
		return 2
	}

	cfg := config.DumpDefaults()
	cfg.Files = discovery.DefaultPatterns

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tagcase: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(config.FileName, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "tagcase: writing %s: %v\n", config.FileName, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "tagcase: created %s\n", config.FileName)
	return 0
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory.
func loadConfig(configPath string, logger *log.Logger) (*config.Config, error) {
	defaults := config.Defaults()

	if configPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return config.Merge(defaults, nil), nil
		}
		configPath, err = config.Discover(cwd)
		if err != nil || configPath == "" {
			logger.Printf("config: defaults")
			return config.Merge(defaults, nil), nil
		}
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.Printf("config: %s", configPath)
	return config.Merge(defaults, loaded), nil
}

const helpUsageText = `Usage: tagcase help <topic>

Topics:
  rule [id|name]   Show rule documentation
`

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return 0
	}

	switch args[0] {
	case "rule":
		if len(args) == 1 {
			return listAllRules()
		}
		return showRule(args[1])
	default:
		fmt.Fprintf(os.Stderr, "tagcase: help: unknown topic %q\n", args[0])
		return 2
	}
}

func listAllRules() int {
	all, err := rules.ListRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tagcase: %v\n", err)
		return 2
	}

	for _, r := range all {
		fmt.Printf("%-6s %-40s %s\n", r.ID, r.Name, r.Description)
	}
	return 0
}

func showRule(query string) int {
	content, err := rules.LookupRule(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tagcase: %v\n", err)
		return 2
	}
	fmt.Print(content)
	return 0
}
