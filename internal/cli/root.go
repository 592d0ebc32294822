// Package cli wires the commit source, lint engine and reporter together
// behind a cobra command and maps the verdict to an exit code.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintry/lintry/internal/commit"
	"github.com/lintry/lintry/internal/gitio"
	"github.com/lintry/lintry/internal/lint"
	"github.com/lintry/lintry/internal/reporter"
	"github.com/lintry/lintry/internal/rule"
	"github.com/lintry/lintry/pkg/version"
)

// errViolations signals that linting ran fine and found errors.
var errViolations = errors.New("lint violations found")

var flags struct {
	noBranch        bool
	noHints         bool
	color           bool
	noColor         bool
	debug           bool
	requireTicket   bool
	format          string
	hookMessageFile string
}

var rootCmd = &cobra.Command{
	Use:   "lintry [commit range]",
	Short: "Lint git commit messages and the branch name",
	Long: `lintry checks the commits in a range, and the current branch name,
against a fixed set of style rules and fails the build when any rule
reports an error.

Without arguments the latest commit is linted. A single revision lints
that one commit; a range such as main..HEAD lints every commit in it.`,
	Example: `  lintry
  lintry HEAD~5..HEAD
  lintry main..develop
  lintry --hook-message-file=.git/COMMIT_EDITMSG`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLint,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("lintry %s\n", version.GetVersion()))

	rootCmd.Flags().BoolVar(&flags.noBranch, "no-branch", false, "disable branch name validation")
	rootCmd.Flags().BoolVar(&flags.noHints, "no-hints", false, "hide hints and warnings")
	rootCmd.Flags().BoolVar(&flags.color, "color", false, "enable color output")
	rootCmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable color output")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "print debug information")
	rootCmd.Flags().BoolVar(&flags.requireTicket, "require-ticket", false, "require a ticket reference in the branch name")
	rootCmd.Flags().StringVar(&flags.format, "format", "human", "report format: human or yaml")
	rootCmd.Flags().StringVar(&flags.hookMessageFile, "hook-message-file", "", "lint a commit-msg hook message file instead of history")
}

// Execute runs the root command and returns the process exit code:
// 0 for a clean run (warnings allowed), 1 when error-severity violations
// were found, 2 when linting could not run at all.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errViolations) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "lintry: %v\n", err)
		return 2
	}
	return 0
}

func runLint(cmd *cobra.Command, args []string) error {
	configureLogging(flags.debug)
	ctx := cmd.Context()

	source := gitio.NewSource("")

	var records []*commit.Record
	if flags.hookMessageFile != "" {
		rec, err := source.HookRecord(ctx, flags.hookMessageFile)
		if err != nil {
			return err
		}
		records = []*commit.Record{rec}
	} else {
		selection := ""
		if len(args) > 0 {
			selection = args[0]
		}
		var err error
		records, err = source.Commits(ctx, selection)
		if err != nil {
			return err
		}
	}

	branchName := ""
	if !flags.noBranch {
		name, err := source.BranchName(ctx)
		if err != nil {
			return err
		}
		// A detached HEAD has no branch name to validate.
		if name != "HEAD" {
			branchName = name
		}
	}

	showHints := !flags.noHints
	var opts []rule.Option
	if showHints {
		opts = append(opts, rule.WithHints())
	}
	if flags.requireTicket {
		opts = append(opts, rule.WithRequiredTicketReference())
	}

	engine := lint.NewEngine(rule.NewCatalogue(opts...))
	result := engine.Run(ctx, records, branchName)

	if flags.format == "yaml" {
		if err := reporter.RenderYAML(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		renderer := reporter.NewRenderer(colorMode(), showHints)
		if err := renderer.Render(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	}

	if result.HasErrors {
		return errViolations
	}
	return nil
}

// colorMode resolves the two color flags; --no-color always wins.
func colorMode() reporter.ColorMode {
	switch {
	case flags.noColor:
		return reporter.ColorNever
	case flags.color:
		return reporter.ColorAlways
	default:
		return reporter.ColorAuto
	}
}

func configureLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
