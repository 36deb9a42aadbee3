package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/spellctl/internal/office"
	"github.com/danmuck/spellctl/internal/spellers"
	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/go-homedir"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spellctl.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileStore(t *testing.T) {
	path := writeConfig(t, `
store = "File"
store_path = "/var/lib/spellctl/registry.toml"
spellers_dir = "/opt/spellers"
dll64 = 'C:\x64\speller.dll'

[libreoffice]
enabled = true
oxt_path = "/opt/divvunspell.oxt"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store != StoreFile {
		t.Fatalf("unexpected store: %q", cfg.Store)
	}
	if cfg.StorePath != filepath.Clean("/var/lib/spellctl/registry.toml") {
		t.Fatalf("unexpected store path: %q", cfg.StorePath)
	}
	if cfg.Namespace != spellers.DefaultNamespace || cfg.SettingsName != office.DefaultSettingsName {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.DLL64 != `C:\x64\speller.dll` {
		t.Fatalf("unexpected dll64: %q", cfg.DLL64)
	}
	if !cfg.LibreOffice.Enabled || cfg.LibreOffice.OxtPath == "" {
		t.Fatalf("libreoffice section not decoded: %+v", cfg.LibreOffice)
	}
}

func TestLoadExpandsHome(t *testing.T) {
	home, err := homedir.Dir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	path := writeConfig(t, `spellers_dir = "~/spellers"`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := filepath.Join(home, "spellers"); cfg.SpellersDir != want {
		t.Fatalf("unexpected spellers dir: %q want %q", cfg.SpellersDir, want)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown store":       `store = "etcd"`,
		"file without path":   `store = "file"`,
		"nested settings key": `settings_name = 'a\b'`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	if _, err := Load(writeConfig(t, "store = ")); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestPathPrefersFlag(t *testing.T) {
	t.Setenv(EnvConfig, "/etc/spellctl.toml")
	if got := Path(""); got != "/etc/spellctl.toml" {
		t.Fatalf("unexpected env path: %q", got)
	}
	if got := Path("./local.toml"); got != "./local.toml" {
		t.Fatalf("unexpected flag path: %q", got)
	}
}
