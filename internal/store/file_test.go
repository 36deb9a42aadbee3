package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "hklm.toml")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	k, err := f.Create(`SOFTWARE\WinDivvun\Spellers`)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := k.SetString("se", `C:\se.bhfst`); err != nil {
		t.Fatalf("set string: %v", err)
	}
	if err := k.SetNone("xx"); err != nil {
		t.Fatalf("set none: %v", err)
	}
	if _, err := f.Create(`SOFTWARE\Empty`); err != nil {
		t.Fatalf("create empty: %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if diff := cmp.Diff(f.Snapshot(), reopened.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if ok, err := Exists(reopened, `SOFTWARE\Empty`); err != nil || !ok {
		t.Fatalf("empty key lost: ok=%v err=%v", ok, err)
	}
}

func TestFileDeletePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hklm.toml")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.Create(`A\B`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := f.DeleteTree(`A\B`); err != nil {
		t.Fatalf("delete: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(data), `A\\B`) || strings.Contains(string(data), `A\B`) {
		t.Fatalf("deleted key still persisted:\n%s", data)
	}
}

func TestOpenFileRejectsUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	doc := "[[key]]\npath = 'A'\n\n[[key.value]]\nname = 'x'\nkind = 'qword'\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Fatalf("expected unknown kind to fail")
	}
}
