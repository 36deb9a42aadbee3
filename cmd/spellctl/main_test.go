package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/spellctl/internal/spellers"
	"github.com/danmuck/spellctl/internal/store"
	"github.com/danmuck/spellctl/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
)

func writeTestConfig(t *testing.T, dir string) (string, string) {
	t.Helper()
	storePath := filepath.Join(dir, "registry.toml")
	cfgPath := filepath.Join(dir, "spellctl.toml")
	body := "store = \"file\"\nstore_path = " + quote(storePath) + "\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath, storePath
}

func quote(s string) string {
	return "'" + s + "'"
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestRegisterListAndNukeWithFileStore(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	cfgPath, storePath := writeTestConfig(t, dir)
	dict := filepath.Join(dir, "se.bhfst")
	if err := os.WriteFile(dict, []byte("zhfst"), 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}

	out, err := run(t, "", "--config", cfgPath, "register", "--tag", "se", "--path", dict)
	if err != nil {
		t.Fatalf("register: %v\n%s", err, out)
	}
	if !strings.Contains(out, "registered se, se-Latn, se-Latn-001") {
		t.Fatalf("unexpected register output: %s", out)
	}

	out, err = run(t, "", "--config", cfgPath, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := "se -> " + dict + "\nse-Latn -> " + dict + "\nse-Latn-001 -> " + dict + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	out, err = run(t, "n\n", "--config", cfgPath, "nuke")
	if err != nil {
		t.Fatalf("nuke: %v", err)
	}
	if !strings.Contains(out, "aborted") {
		t.Fatalf("expected abort, got: %s", out)
	}

	if _, err := run(t, "", "--config", cfgPath, "nuke", "--yes"); err != nil {
		t.Fatalf("nuke --yes: %v", err)
	}
	persisted, err := store.OpenFile(storePath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	langs, err := spellers.NewCentral(persisted, "").Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(langs.Create) != 0 {
		t.Fatalf("registrations left after nuke: %v", langs.Create)
	}
	if diff := cmp.Diff([]string{"se", "se-Latn", "se-Latn-001"}, langs.Delete); diff != "" {
		t.Fatalf("tombstones mismatch (-want +got):\n%s", diff)
	}
}

func TestSyncRequiresSpellersDir(t *testing.T) {
	testlog.Start(t)
	cfgPath, _ := writeTestConfig(t, t.TempDir())
	if _, err := run(t, "", "--config", cfgPath, "sync"); err != errNoSpellersDir {
		t.Fatalf("expected errNoSpellersDir, got %v", err)
	}
}

func TestSyncFromDirectory(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	cfgPath, _ := writeTestConfig(t, dir)
	spellersDir := filepath.Join(dir, "spellers")
	seDir := filepath.Join(spellersDir, "se")
	if err := os.MkdirAll(seDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(seDir, "se.bhfst"), []byte("zhfst"), 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
	if err := os.WriteFile(filepath.Join(seDir, "spellers.toml"), []byte("[spellers]\nse = \"se.bhfst\"\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	out, err := run(t, "", "--config", cfgPath, "sync", "--dir", spellersDir)
	if err != nil {
		t.Fatalf("sync: %v\n%s", err, out)
	}
	if !strings.Contains(out, "registered 3 keys from 1 manifests") {
		t.Fatalf("unexpected sync output: %s", out)
	}
	if !strings.Contains(out, "no Office settings roots found") {
		t.Fatalf("expected no roots message: %s", out)
	}
}

func TestConfirm(t *testing.T) {
	cases := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"\n":    false,
		"":      false,
		"y":     true,
	}
	for in, want := range cases {
		var out bytes.Buffer
		if got := confirm(strings.NewReader(in), &out, "Sure?"); got != want {
			t.Fatalf("confirm(%q) = %v want %v", in, got, want)
		}
	}
}

func TestSyncEmptyDirectoryKeepsRegistrations(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	cfgPath, storePath := writeTestConfig(t, dir)
	dict := filepath.Join(dir, "se.bhfst")
	if err := os.WriteFile(dict, []byte("zhfst"), 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
	if _, err := run(t, "", "--config", cfgPath, "register", "--tag", "se", "--path", dict); err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := run(t, "", "--config", cfgPath, "sync", "--dir", filepath.Join(dir, "typo"))
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if !strings.Contains(out, "registrations left unchanged") {
		t.Fatalf("unexpected sync output: %s", out)
	}
	persisted, err := store.OpenFile(storePath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	langs, err := spellers.NewCentral(persisted, "").Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(langs.Create) != 3 || len(langs.Delete) != 0 {
		t.Fatalf("registrations changed: create=%v delete=%v", langs.Create, langs.Delete)
	}
}
