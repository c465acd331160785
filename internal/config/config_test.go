package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taginput/internal/taginput"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if GetBool(KeyReadOnly) {
		t.Fatalf("expected default %s to be false", KeyReadOnly)
	}
	if GetBool(KeyHideInput) {
		t.Fatalf("expected default %s to be false", KeyHideInput)
	}
	if !GetBool(KeyAddOnPaste) {
		t.Fatalf("expected default %s to be true", KeyAddOnPaste)
	}
	if got := GetString(KeyCandidatesDatabase); got != "" {
		t.Fatalf("expected default %s to be empty, got %q", KeyCandidatesDatabase, got)
	}
	if got := GetDuration(KeyTextChangeDebounce); got != taginput.DefaultTextChangeDebounce {
		t.Fatalf("expected default %s to be %v, got %v", KeyTextChangeDebounce, taginput.DefaultTextChangeDebounce, got)
	}
	if got := GetStringSlice(KeySeparatorKeys); len(got) != 2 || got[0] != "enter" || got[1] != "comma" {
		t.Fatalf("expected default %s [enter comma], got %v", KeySeparatorKeys, got)
	}
	if got := GetString(KeyOutputFormat); got != "lines" {
		t.Fatalf("expected default %s to be lines, got %q", KeyOutputFormat, got)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, DirName))
	projectCfg := filepath.Join(projectDir, DirName, FileName)
	writeFile(t, projectCfg, `
max-items: 5
candidates:
  database: /project/labels.db
readonly: true
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
max-items: 10
candidates:
  database: /user/labels.db
  file: /user/tags.yaml
readonly: false
`)

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithUserConfig(userCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetInt(KeyMaxItems); got != 5 {
		t.Fatalf("expected project config to win for %s, got %d", KeyMaxItems, got)
	}
	if got := GetString(KeyCandidatesDatabase); got != "/project/labels.db" {
		t.Fatalf("expected project database path, got %q", got)
	}
	if got := GetString(KeyCandidatesFile); got != "/user/tags.yaml" {
		t.Fatalf("expected user candidates file to survive merge, got %q", got)
	}
	if !GetBool(KeyReadOnly) {
		t.Fatalf("expected readonly to be true after merging project config")
	}
}

func TestProjectConfigDiscoveredFromSubdirectory(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	nested := filepath.Join(projectDir, "a", "b")
	mustMkdir(t, nested)
	writeFile(t, filepath.Join(projectDir, DirName, FileName), "placeholder: project\n")

	if err := Initialize(WithWorkingDir(nested), WithUserConfig(filepath.Join(tmp, "none.yaml"))); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if got := GetString(KeyPlaceholder); got != "project" {
		t.Fatalf("expected discovered project placeholder, got %q", got)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	projectCfg := filepath.Join(projectDir, DirName, FileName)
	writeFile(t, projectCfg, `
add-on-blur: false
placeholder: project
candidates:
  database: /project/labels.db
`)

	t.Setenv("TI_ADD_ON_BLUR", "true")
	t.Setenv("TI_CANDIDATES_DATABASE", "/env/labels.db")

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithProjectConfig(projectCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if !GetBool(KeyAddOnBlur) {
		t.Fatalf("expected environment variable to override %s", KeyAddOnBlur)
	}
	if got := GetString(KeyCandidatesDatabase); got != "/env/labels.db" {
		t.Fatalf("expected env override for %s, got %q", KeyCandidatesDatabase, got)
	}

	overrides := map[string]any{
		KeyAddOnBlur: false,
		KeyMaxItems:  4,
	}
	if err := ApplyOverrides(overrides); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if GetBool(KeyAddOnBlur) {
		t.Fatalf("expected CLI override to set %s=false", KeyAddOnBlur)
	}
	if got := GetInt(KeyMaxItems); got != 4 {
		t.Fatalf("expected override for %s = 4, got %d", KeyMaxItems, got)
	}
}

func TestInvalidConfigFileFails(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, DirName, FileName)
	writeFile(t, projectCfg, "max-items: [unterminated\n")

	err := Initialize(WithWorkingDir(tmp), WithProjectConfig(projectCfg), WithUserConfig(filepath.Join(tmp, "none.yaml")))
	if err == nil {
		t.Fatal("expected parse error for malformed project config")
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	userCfg := filepath.Join(tmp, "home", DirName, FileName)
	setUserConfigPathOverride(userCfg)

	if err := SaveTheme("dracula"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}
	data, err := os.ReadFile(userCfg)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if !strings.Contains(string(data), "theme: dracula") {
		t.Fatalf("expected saved theme, got %q", data)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
