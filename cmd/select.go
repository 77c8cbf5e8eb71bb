package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/deadpool-frc/autodup/internal/config"
	"github.com/deadpool-frc/autodup/internal/duplicate"
	"github.com/deadpool-frc/autodup/internal/selector"
)

var useTUI bool

func runSelect(cmd *cobra.Command, args []string) {
	cfg, dup := setup()

	choose := selector.Prompt
	if useTUI {
		choose = func(in io.Reader, out io.Writer, names []string) (string, error) {
			return selector.Pick(in, out, "Which Auto would you like to duplicate?", names)
		}
	}

	if err := selectAndDuplicate(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, dup, choose); err != nil {
		exitWithError(err.Error())
	}
}

type chooser func(in io.Reader, out io.Writer, names []string) (string, error)

// selectAndDuplicate lists the autos, lets the operator choose one and
// duplicates it with the configured suffix. One selection per run.
func selectAndDuplicate(in io.Reader, out io.Writer, cfg *config.Config, dup *duplicate.Duplicator, choose chooser) error {
	autos, err := dup.ListAutos()
	if err != nil {
		return err
	}

	name, err := choose(in, out, autos)
	if err != nil {
		return err
	}

	result, err := dup.DuplicateAuto(name, cfg.Suffix)
	if result != nil {
		printResult(out, result)
	}
	if err != nil {
		return fmt.Errorf("duplicating %s: %w", name, err)
	}
	return nil
}
