package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/deadpool-frc/autodup/internal/planner"
)

// Following the dot-config specification: https://dot-config.github.io/
// User config:    ~/.config/autodup/config.yaml (or $XDG_CONFIG_HOME/autodup/)
// Project config: .config/autodup/config.yaml (in project root)

const (
	// ConfigDir is the subdirectory name under .config
	ConfigDir = "autodup"
	// ConfigFile is the settings filename inside ConfigDir
	ConfigFile = "config.yaml"
	// EnvFile is read from the project root when present
	EnvFile = ".env"

	// EnvRoot overrides the PathPlanner root directory
	EnvRoot = "AUTODUP_ROOT"
	// EnvSuffix overrides the duplication suffix
	EnvSuffix = "AUTODUP_SUFFIX"

	// DefaultSuffix tags duplicates for the red alliance
	DefaultSuffix = " - RED"
)

// ErrNoRoot is returned when no PathPlanner directory could be located.
var ErrNoRoot = errors.New("no PathPlanner directory found (use --root or " + EnvRoot + ")")

// Settings are the user-tunable values, as found in config.yaml.
type Settings struct {
	Root      string `yaml:"root"`
	Suffix    string `yaml:"suffix"`
	Recursive bool   `yaml:"recursive"`
}

// Config is the resolved configuration for a run.
type Config struct {
	Settings

	// AutosDir is <root>/autos
	AutosDir string
	// PathsDir is <root>/paths
	PathsDir string

	// ProjectRoot is the enclosing project, "" outside one
	ProjectRoot string
	// Sources lists the files that contributed settings, in load order
	Sources []string
}

// Load resolves the configuration from the current directory.
// Later layers win: defaults, user config, project config, project .env,
// process environment, then the non-zero fields of flags.
func Load(flags Settings) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadFrom(cwd, flags)
}

// LoadFrom is Load with an explicit working directory.
func LoadFrom(cwd string, flags Settings) (*Config, error) {
	cfg := &Config{Settings: Settings{Suffix: DefaultSuffix}}

	if dir := userConfigDir(); dir != "" {
		if err := cfg.mergeFile(filepath.Join(dir, ConfigFile), cwd); err != nil {
			return nil, err
		}
	}

	cfg.ProjectRoot = findProjectRoot(cwd)
	if cfg.ProjectRoot != "" {
		projectFile := filepath.Join(cfg.ProjectRoot, ".config", ConfigDir, ConfigFile)
		if err := cfg.mergeFile(projectFile, cfg.ProjectRoot); err != nil {
			return nil, err
		}
		if err := cfg.mergeEnvFile(filepath.Join(cfg.ProjectRoot, EnvFile), cfg.ProjectRoot); err != nil {
			return nil, err
		}
	}

	cfg.merge(Settings{Root: os.Getenv(EnvRoot), Suffix: os.Getenv(EnvSuffix)}, cwd)
	cfg.merge(flags, cwd)

	if cfg.Root == "" {
		cfg.Root = findDeployDir(cwd)
	}
	if cfg.Root == "" {
		return nil, ErrNoRoot
	}

	cfg.AutosDir = filepath.Join(cfg.Root, planner.AutosDirName)
	cfg.PathsDir = filepath.Join(cfg.Root, planner.PathsDirName)
	return cfg, nil
}

// merge applies the non-zero fields of s. Relative roots resolve against base.
func (c *Config) merge(s Settings, base string) {
	if s.Root != "" {
		if !filepath.IsAbs(s.Root) {
			s.Root = filepath.Join(base, s.Root)
		}
		c.Root = filepath.Clean(s.Root)
	}
	if s.Suffix != "" {
		c.Suffix = s.Suffix
	}
	if s.Recursive {
		c.Recursive = true
	}
}

// mergeFile layers a YAML settings file. A missing file is not an error.
func (c *Config) mergeFile(path, base string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	c.merge(s, base)
	c.Sources = append(c.Sources, path)
	return nil
}

// mergeEnvFile layers AUTODUP_* keys from a dotenv file without touching
// the process environment.
func (c *Config) mergeEnvFile(path, base string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	c.merge(Settings{Root: env[EnvRoot], Suffix: env[EnvSuffix]}, base)
	c.Sources = append(c.Sources, path)
	return nil
}

// userConfigDir returns ~/.config/autodup (or $XDG_CONFIG_HOME/autodup)
func userConfigDir() string {
	// Follow XDG Base Directory spec
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir)
}

// findProjectRoot finds the project root by looking for .config/autodup or .git
func findProjectRoot(start string) string {
	dir := start
	for {
		// Check for .config/autodup
		candidate := filepath.Join(dir, ".config", ConfigDir)
		if isDir(candidate) {
			return dir
		}

		// Also check for .git to stop at repo root
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}

	return ""
}

// findDeployDir locates a PathPlanner root: start itself when it holds
// autos/ and paths/, otherwise the nearest src/main/deploy/pathplanner
// found walking up.
func findDeployDir(start string) string {
	if isDir(filepath.Join(start, planner.AutosDirName)) && isDir(filepath.Join(start, planner.PathsDirName)) {
		return start
	}

	dir := start
	for {
		candidate := filepath.Join(dir, filepath.FromSlash(planner.DeployDir))
		if isDir(candidate) {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
