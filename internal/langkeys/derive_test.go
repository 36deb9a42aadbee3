package langkeys

import (
	"errors"
	"testing"

	"github.com/danmuck/spellctl/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
)

func TestDeriveKnownLCIDShortCircuits(t *testing.T) {
	testlog.Start(t)
	d := New()
	for _, raw := range []string{"nb-NO", "se-NO", "sr-Latn-RS", "smj-SE"} {
		got, err := d.DeriveString(raw)
		if err != nil {
			t.Fatalf("derive %s: %v", raw, err)
		}
		if diff := cmp.Diff([]string{raw}, got); diff != "" {
			t.Fatalf("derive %s mismatch (-want +got):\n%s", raw, diff)
		}
	}
}

func TestDeriveBareTagExpandsScriptAndWorldRegion(t *testing.T) {
	testlog.Start(t)
	got, err := New().DeriveString("se")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	want := []string{"se", "se-Latn", "se-Latn-001"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("derive se mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveKeepsProvidedScript(t *testing.T) {
	testlog.Start(t)
	got, err := NewWith(DefaultLCIDs, StaticScripts{}).DeriveString("se-Cyrl")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	want := []string{"se-Cyrl", "se-Cyrl-001"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("derive se-Cyrl mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveKeepsProvidedRegion(t *testing.T) {
	testlog.Start(t)
	got, err := New().DeriveString("sms-RU")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	want := []string{"sms-Latn-RU", "sms-RU"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("derive sms-RU mismatch (-want +got):\n%s", diff)
	}
}

func TestDerivePreservesVariants(t *testing.T) {
	testlog.Start(t)
	d := NewWith(StaticLCIDs{}, StaticScripts{"sl": "Latn"})
	got, err := d.DeriveString("sl-rozaj")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	want := []string{"sl-Latn-001-rozaj", "sl-Latn-rozaj", "sl-rozaj"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("derive sl-rozaj mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveNoDefaultScript(t *testing.T) {
	testlog.Start(t)
	d := NewWith(DefaultLCIDs, DefaultScripts)
	got, err := d.DeriveString("fr")
	if !errors.Is(err, ErrNoDefaultScript) {
		t.Fatalf("expected ErrNoDefaultScript, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no keys, got %v", got)
	}
}

func TestDeriveInvalidTag(t *testing.T) {
	testlog.Start(t)
	if _, err := New().DeriveString("not a tag!"); !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("expected ErrInvalidTag, got %v", err)
	}
}

func TestDeriveAlwaysContainsCanonicalTag(t *testing.T) {
	testlog.Start(t)
	d := New()
	for _, raw := range []string{"se", "sma", "smn-FI", "myv", "kpv-RU", "en-US", "se-Latn-NO"} {
		tag, err := Parse(raw)
		if err != nil {
			t.Fatalf("parse %s: %v", raw, err)
		}
		keys, err := d.Derive(tag)
		if err != nil {
			t.Fatalf("derive %s: %v", raw, err)
		}
		found := false
		for _, k := range keys {
			if k == tag.String() {
				found = true
			}
		}
		if !found {
			t.Fatalf("keys for %s missing canonical form: %v", raw, keys)
		}
	}
}

func TestCLDRScripts(t *testing.T) {
	script, ok := CLDRScripts{}.DefaultScript("ru")
	if !ok || script != "Cyrl" {
		t.Fatalf("unexpected cldr script for ru: %q ok=%v", script, ok)
	}
	cldr := CLDRScripts{}
	if _, ok := cldr.DefaultScript("not-a-language"); ok {
		t.Fatalf("expected malformed language to be rejected")
	}
}

func TestChainScriptsPrefersFirst(t *testing.T) {
	chain := ChainScripts{StaticScripts{"se": "Cyrl"}, DefaultScripts}
	if script, _ := chain.DefaultScript("se"); script != "Cyrl" {
		t.Fatalf("unexpected chained script: %q", script)
	}
	if script, _ := chain.DefaultScript("sma"); script != "Latn" {
		t.Fatalf("unexpected fallthrough script: %q", script)
	}
}
