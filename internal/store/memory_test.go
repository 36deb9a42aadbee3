package store

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMemoryCreateSetAndList(t *testing.T) {
	m := NewMemory()
	k, err := m.Create(`SOFTWARE\WinDivvun\Spellers`)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := k.SetString("se", `C:\spellers\se.bhfst`); err != nil {
		t.Fatalf("set string: %v", err)
	}
	if err := k.SetNone("xx"); err != nil {
		t.Fatalf("set none: %v", err)
	}
	if err := k.SetUint32("Count", 7); err != nil {
		t.Fatalf("set uint32: %v", err)
	}

	got, err := k.Values()
	if err != nil {
		t.Fatalf("values: %v", err)
	}
	want := []Value{
		{Name: "Count", Kind: KindUint32, Uint32: 7},
		{Name: "se", Kind: KindString, String: `C:\spellers\se.bhfst`},
		{Name: "xx", Kind: KindNone},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryPathsAreCaseInsensitive(t *testing.T) {
	m := NewMemory()
	k, err := m.Create(`SOFTWARE\Microsoft\Office`)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := k.SetString("LEX", "a"); err != nil {
		t.Fatalf("set: %v", err)
	}

	again, err := m.Open(`software\microsoft\office`)
	if err != nil {
		t.Fatalf("open folded: %v", err)
	}
	if err := again.SetString("lex", "b"); err != nil {
		t.Fatalf("set folded: %v", err)
	}
	v, err := k.Value("Lex")
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v.Name != "LEX" || v.String != "b" {
		t.Fatalf("unexpected value: %+v", v)
	}

	subs, err := mustOpen(t, m, "SOFTWARE").SubKeys()
	if err != nil {
		t.Fatalf("subkeys: %v", err)
	}
	if diff := cmp.Diff([]string{"Microsoft"}, subs); diff != "" {
		t.Fatalf("subkeys mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryDeleteTree(t *testing.T) {
	m := NewMemory()
	if _, err := m.Create(`A\B\C`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := m.DeleteTree(`A\B`); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.Open(`A\B\C`); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := m.DeleteTree(`A\B`); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := RemoveTree(m, `A\B`); err != nil {
		t.Fatalf("remove tree must tolerate missing key: %v", err)
	}
	if ok, err := Exists(m, "A"); err != nil || !ok {
		t.Fatalf("parent must survive: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStaleHandleReportsNotFound(t *testing.T) {
	m := NewMemory()
	k, err := m.Create(`A\B`)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := m.DeleteTree("A"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err = k.SetString("x", "y")
	var opErr *OpError
	if !errors.As(err, &opErr) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected OpError wrapping ErrNotFound, got %v", err)
	}
	if opErr.Op != "set" {
		t.Fatalf("unexpected op: %q", opErr.Op)
	}
}

func TestJoinPath(t *testing.T) {
	got := JoinPath(`SOFTWARE\`, "", `\Microsoft`, `Office\16.0`)
	if got != `SOFTWARE\Microsoft\Office\16.0` {
		t.Fatalf("unexpected join: %q", got)
	}
}

func mustOpen(t *testing.T, s Store, path string) Key {
	t.Helper()
	k, err := s.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	return k
}
