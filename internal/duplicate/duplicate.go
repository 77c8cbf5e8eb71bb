// Package duplicate copies PathPlanner autos and the paths they run under
// a new name, suffixing every cross-reference so the copy stands on its own.
package duplicate

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/deadpool-frc/autodup/internal/planner"
)

var (
	// ErrEmptySuffix is returned when asked to duplicate with no suffix,
	// which would overwrite the source.
	ErrEmptySuffix = errors.New("suffix must not be empty")
)

// Options configures a Duplicator.
type Options struct {
	AutosDir string
	PathsDir string

	// Recursive descends into command groups when looking for path commands.
	Recursive bool
	// DryRun does everything except writing files.
	DryRun bool

	Logger *zap.Logger
}

// Duplicator reads documents from an autos and a paths directory and
// writes their suffixed copies next to them.
type Duplicator struct {
	autosDir  string
	pathsDir  string
	recursive bool
	dryRun    bool
	log       *zap.Logger
}

// Result lists the files written by DuplicateAuto, in write order.
type Result struct {
	Auto  string
	Paths []string
	// DryRun is set when nothing was actually written.
	DryRun bool
}

// New returns a Duplicator for the given directories.
func New(opts Options) *Duplicator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Duplicator{
		autosDir:  opts.AutosDir,
		pathsDir:  opts.PathsDir,
		recursive: opts.Recursive,
		dryRun:    opts.DryRun,
		log:       log,
	}
}

// ListAutos returns every entry of the autos directory.
func (d *Duplicator) ListAutos() ([]string, error) {
	return planner.ListDir(d.autosDir)
}

// ListPaths returns every entry of the paths directory.
func (d *Duplicator) ListPaths() ([]string, error) {
	return planner.ListDir(d.pathsDir)
}

// DuplicatePath writes a copy of pathFileName with every linked waypoint
// name suffixed, and returns the name of the copy.
func (d *Duplicator) DuplicatePath(pathFileName, suffix string) (string, error) {
	if suffix == "" {
		return "", ErrEmptySuffix
	}

	data, err := os.ReadFile(filepath.Join(d.pathsDir, pathFileName))
	if err != nil {
		return "", fmt.Errorf("reading path %s: %w", pathFileName, err)
	}

	path, err := planner.ParsePath(data)
	if err != nil {
		return "", fmt.Errorf("path %s: %w", pathFileName, err)
	}
	linked, err := path.SuffixLinkedNames(suffix)
	if err != nil {
		return "", fmt.Errorf("path %s: %w", pathFileName, err)
	}

	target := planner.DuplicateName(pathFileName, suffix, planner.PathExt)
	if err := d.write(d.pathsDir, target, path.Bytes()); err != nil {
		return "", err
	}

	d.log.Debug("duplicated path",
		zap.String("source", pathFileName),
		zap.String("target", target),
		zap.Int("linked_names", linked))
	return target, nil
}

// DuplicateAuto duplicates every path the auto runs, points the auto's
// path commands at the copies, and writes the auto copy last. A failure
// stops the run; copies already written are left in place.
func (d *Duplicator) DuplicateAuto(autoFileName, suffix string) (*Result, error) {
	if suffix == "" {
		return nil, ErrEmptySuffix
	}

	data, err := os.ReadFile(filepath.Join(d.autosDir, autoFileName))
	if err != nil {
		return nil, fmt.Errorf("reading auto %s: %w", autoFileName, err)
	}

	auto, err := planner.ParseAuto(data)
	if err != nil {
		return nil, fmt.Errorf("auto %s: %w", autoFileName, err)
	}

	commands, err := auto.PathCommands(d.recursive)
	if err != nil {
		return nil, fmt.Errorf("auto %s: %w", autoFileName, err)
	}

	result := &Result{DryRun: d.dryRun}
	for _, cmd := range commands {
		name := cmd.PathName()
		written, err := d.DuplicatePath(planner.PathFileName(name), suffix)
		if err != nil {
			return result, err
		}
		result.Paths = append(result.Paths, written)

		renamed := name + suffix
		if written != planner.PathFileName(renamed) {
			d.log.Warn("path name has a dot, copy does not match the reference",
				zap.String("auto", autoFileName),
				zap.String("reference", renamed),
				zap.String("written", written))
		}
		if err := cmd.SetPathName(renamed); err != nil {
			return result, fmt.Errorf("auto %s: %w", autoFileName, err)
		}
	}

	target := planner.DuplicateName(autoFileName, suffix, planner.AutoExt)
	if err := d.write(d.autosDir, target, auto.Bytes()); err != nil {
		return result, err
	}
	result.Auto = target

	d.log.Debug("duplicated auto",
		zap.String("source", autoFileName),
		zap.String("target", target),
		zap.Int("commands", len(auto.Commands())),
		zap.Int("paths", len(result.Paths)))
	return result, nil
}

// write replaces dir/name with data. Existing targets are overwritten.
func (d *Duplicator) write(dir, name string, data []byte) error {
	if d.dryRun {
		d.log.Debug("dry run, skipping write", zap.String("target", name))
		return nil
	}

	target := filepath.Join(dir, name)
	if err := writeFileAtomic(target, data); err != nil {
		d.log.Error("write failed", zap.String("target", target), zap.Error(err))
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// writeFileAtomic leaves target either untouched or fully replaced.
// New files are made world-readable like the sources next to them.
func writeFileAtomic(target string, data []byte) error {
	if err := atomic.WriteFile(target, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(target, 0644)
}
