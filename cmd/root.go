package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deadpool-frc/autodup/internal/config"
	"github.com/deadpool-frc/autodup/internal/duplicate"
	"github.com/deadpool-frc/autodup/internal/logging"
	"github.com/deadpool-frc/autodup/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var (
	// Global flags
	rootDir   string
	suffix    string
	recursive bool
	dryRun    bool
	verbose   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "autodup",
	Short: "Duplicate PathPlanner autos and their paths under a new suffix",
	Long: ui.Logo() + `
  Copies an autonomous routine and every path it runs, appending a suffix
  (" - RED" by default) to file names, path references and linked waypoint
  names. Run without arguments to pick an auto from a numbered list.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Run: runSelect,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootDir, "root", "r", "", "PathPlanner directory holding autos/ and paths/")
	flags.StringVarP(&suffix, "suffix", "s", "", `suffix for duplicated names (default " - RED")`)
	flags.BoolVar(&recursive, "recursive", false, "also duplicate paths inside command groups")
	flags.BoolVarP(&dryRun, "dry-run", "n", false, "show what would be written without writing")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every file read and written")

	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "pick the auto from an interactive list")

	rootCmd.AddCommand(duplicateCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("autodup %s\n", Version)
	},
}

// setup resolves the configuration and builds a duplicator from it
func setup() (*config.Config, *duplicate.Duplicator) {
	cfg, err := config.Load(config.Settings{
		Root:      rootDir,
		Suffix:    suffix,
		Recursive: recursive,
	})
	if err != nil {
		exitWithError(err.Error())
	}

	if logger != nil {
		logger.Debug("configuration resolved",
			zap.String("root", cfg.Root),
			zap.String("suffix", cfg.Suffix),
			zap.Bool("recursive", cfg.Recursive),
			zap.Strings("sources", cfg.Sources))
	}

	return cfg, duplicate.New(duplicate.Options{
		AutosDir:  cfg.AutosDir,
		PathsDir:  cfg.PathsDir,
		Recursive: cfg.Recursive,
		DryRun:    dryRun,
		Logger:    logger,
	})
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.ErrorLine(msg))
	os.Exit(1)
}
