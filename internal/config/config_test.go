package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points the user config at an empty directory and clears the
// AUTODUP_* variables so the host environment cannot leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv(EnvRoot, "")
	t.Setenv(EnvSuffix, "")
	return xdg
}

func mkdirs(t *testing.T, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	mkdirs(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFrom_DiscoversDeployDir(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	deploy := filepath.Join(project, "src", "main", "deploy", "pathplanner")
	mkdirs(t, filepath.Join(project, ".git"), deploy)

	cfg, err := LoadFrom(filepath.Join(project, "src"), Settings{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Root != deploy {
		t.Errorf("Root = %v, want %v", cfg.Root, deploy)
	}
	if cfg.AutosDir != filepath.Join(deploy, "autos") {
		t.Errorf("AutosDir = %v", cfg.AutosDir)
	}
	if cfg.PathsDir != filepath.Join(deploy, "paths") {
		t.Errorf("PathsDir = %v", cfg.PathsDir)
	}
	if cfg.Suffix != DefaultSuffix {
		t.Errorf("Suffix = %q, want %q", cfg.Suffix, DefaultSuffix)
	}
	if cfg.ProjectRoot != project {
		t.Errorf("ProjectRoot = %v, want %v", cfg.ProjectRoot, project)
	}
	if cfg.Recursive {
		t.Error("Recursive = true, want false")
	}
}

func TestLoadFrom_CwdIsPathPlannerDir(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	mkdirs(t, filepath.Join(dir, "autos"), filepath.Join(dir, "paths"))

	cfg, err := LoadFrom(dir, Settings{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Root != dir {
		t.Errorf("Root = %v, want %v", cfg.Root, dir)
	}
}

func TestLoadFrom_NoRoot(t *testing.T) {
	isolate(t)

	_, err := LoadFrom(t.TempDir(), Settings{})
	if !errors.Is(err, ErrNoRoot) {
		t.Errorf("LoadFrom() error = %v, want ErrNoRoot", err)
	}
}

func TestLoadFrom_Layering(t *testing.T) {
	xdg := isolate(t)
	project := t.TempDir()
	mkdirs(t, filepath.Join(project, ".git"))

	userFile := filepath.Join(xdg, ConfigDir, ConfigFile)
	projectFile := filepath.Join(project, ".config", ConfigDir, ConfigFile)
	envFile := filepath.Join(project, EnvFile)

	writeFile(t, userFile, "suffix: \" - BLUE\"\nroot: /from/user\n")
	writeFile(t, projectFile, "root: deploy/pathplanner\nrecursive: true\n")

	cfg, err := LoadFrom(project, Settings{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if want := filepath.Join(project, "deploy", "pathplanner"); cfg.Root != want {
		t.Errorf("Root = %v, want %v (project file resolves against project root)", cfg.Root, want)
	}
	if cfg.Suffix != " - BLUE" {
		t.Errorf("Suffix = %q, want %q", cfg.Suffix, " - BLUE")
	}
	if !cfg.Recursive {
		t.Error("Recursive = false, want true")
	}
	if len(cfg.Sources) != 2 || cfg.Sources[0] != userFile || cfg.Sources[1] != projectFile {
		t.Errorf("Sources = %v", cfg.Sources)
	}

	writeFile(t, envFile, EnvSuffix+"=-ENV\n")
	cfg, err = LoadFrom(project, Settings{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Suffix != "-ENV" {
		t.Errorf("Suffix = %q, want .env value", cfg.Suffix)
	}
	if os.Getenv(EnvSuffix) != "" {
		t.Error(".env leaked into the process environment")
	}

	t.Setenv(EnvSuffix, "-PROC")
	cfg, err = LoadFrom(project, Settings{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Suffix != "-PROC" {
		t.Errorf("Suffix = %q, want environment value", cfg.Suffix)
	}

	cfg, err = LoadFrom(project, Settings{Suffix: "-FLAG", Root: "elsewhere"})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Suffix != "-FLAG" {
		t.Errorf("Suffix = %q, want flag value", cfg.Suffix)
	}
	if want := filepath.Join(project, "elsewhere"); cfg.Root != want {
		t.Errorf("Root = %v, want %v (flags resolve against cwd)", cfg.Root, want)
	}
}

func TestLoadFrom_BadYAML(t *testing.T) {
	xdg := isolate(t)
	writeFile(t, filepath.Join(xdg, ConfigDir, ConfigFile), "root: [unclosed\n")

	if _, err := LoadFrom(t.TempDir(), Settings{Root: "/x"}); err == nil {
		t.Error("LoadFrom() error = nil, want parse error")
	}
}

func TestFindProjectRoot(t *testing.T) {
	project := t.TempDir()
	nested := filepath.Join(project, "a", "b")
	mkdirs(t, filepath.Join(project, ".config", ConfigDir), nested)

	if got := findProjectRoot(nested); got != project {
		t.Errorf("findProjectRoot() = %v, want %v", got, project)
	}
}
