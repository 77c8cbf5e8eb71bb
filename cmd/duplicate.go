package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deadpool-frc/autodup/internal/duplicate"
	"github.com/deadpool-frc/autodup/internal/planner"
	"github.com/deadpool-frc/autodup/internal/ui"
)

var duplicateCmd = &cobra.Command{
	Use:     "duplicate <auto>",
	Aliases: []string{"dup", "auto"},
	Short:   "Duplicate an auto and the paths it runs",
	Long: `Duplicate an auto without the interactive prompt.

The .auto extension may be left off.

Examples:
  autodup duplicate "Center 3 Piece.auto"
  autodup duplicate Center --suffix " - BLUE"`,
	Args: cobra.ExactArgs(1),
	Run:  runDuplicate,
}

var pathCmd = &cobra.Command{
	Use:   "path <path>",
	Short: "Duplicate a single path",
	Long: `Duplicate one path, suffixing its file name and linked waypoint names.

The .path extension may be left off.

Examples:
  autodup path "Score1.path"
  autodup path Score1 -s -X`,
	Args: cobra.ExactArgs(1),
	Run:  runPath,
}

func runDuplicate(cmd *cobra.Command, args []string) {
	cfg, dup := setup()

	result, err := dup.DuplicateAuto(withExt(args[0], planner.AutoExt), cfg.Suffix)
	if result != nil {
		printResult(cmd.OutOrStdout(), result)
	}
	if err != nil {
		exitWithError(err.Error())
	}
}

func runPath(cmd *cobra.Command, args []string) {
	cfg, dup := setup()

	written, err := dup.DuplicatePath(withExt(args[0], planner.PathExt), cfg.Suffix)
	if err != nil {
		exitWithError(err.Error())
	}
	printResult(cmd.OutOrStdout(), &duplicate.Result{Paths: []string{written}, DryRun: dryRun})
}

// withExt appends ext to names given without any extension
func withExt(name, ext string) string {
	if filepath.Ext(name) == "" {
		return name + ext
	}
	return name
}

// printResult reports the files a duplication wrote, paths first
func printResult(out io.Writer, result *duplicate.Result) {
	verb := "wrote"
	if result.DryRun {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  "+ui.DryRunBadge())
		verb = "would write"
	}

	fmt.Fprintln(out)
	for _, p := range result.Paths {
		fmt.Fprintln(out, ui.SuccessLine(fmt.Sprintf("%s %s %s", verb, ui.PathBadge(), p)))
	}
	if result.Auto != "" {
		fmt.Fprintln(out, ui.SuccessLine(fmt.Sprintf("%s %s %s", verb, ui.AutoBadge(), result.Auto)))
	}
	fmt.Fprintln(out)
}
