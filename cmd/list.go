package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/deadpool-frc/autodup/internal/config"
	"github.com/deadpool-frc/autodup/internal/duplicate"
	"github.com/deadpool-frc/autodup/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List autos and paths",
	Long:    `Show every entry of the autos and paths directories.`,
	Args:    cobra.NoArgs,
	Run:     runList,
}

var (
	listAutos bool
	listPaths bool
)

func init() {
	listCmd.Flags().BoolVar(&listAutos, "autos", false, "Show only autos")
	listCmd.Flags().BoolVar(&listPaths, "paths", false, "Show only paths")
}

func runList(cmd *cobra.Command, args []string) {
	cfg, dup := setup()

	showAll := !listAutos && !listPaths
	if err := printListing(cmd.OutOrStdout(), cfg, dup, showAll || listAutos, showAll || listPaths); err != nil {
		exitWithError(err.Error())
	}
}

func printListing(out io.Writer, cfg *config.Config, dup *duplicate.Duplicator, autos, paths bool) error {
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.InfoLine("root "+cfg.Root))

	sections := []struct {
		enabled bool
		title   string
		dir     string
		list    func() ([]string, error)
		badge   func() string
	}{
		{autos, "Autos", cfg.AutosDir, dup.ListAutos, ui.AutoBadge},
		{paths, "Paths", cfg.PathsDir, dup.ListPaths, ui.PathBadge},
	}

	for _, s := range sections {
		if !s.enabled {
			continue
		}
		names, err := s.list()
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.SectionHeader(s.title))
		fmt.Fprintln(out)
		if len(names) == 0 {
			fmt.Fprintln(out, ui.EmptyDir(s.dir))
			continue
		}
		for i, name := range names {
			fmt.Fprintf(out, "  %s %s %s\n", ui.RenderMuted(fmt.Sprintf("%3d", i)), s.badge(), ui.RenderHighlight(name))
		}
	}

	fmt.Fprintln(out)
	return nil
}
