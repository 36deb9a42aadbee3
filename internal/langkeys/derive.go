package langkeys

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

var (
	ErrInvalidTag      = errors.New("langkeys: invalid language tag")
	ErrNoDefaultScript = errors.New("langkeys: no default script for language")
)

// WorldRegion is the neutral region used for fallback keys.
const WorldRegion = "001"

// Deriver expands a language tag into every key a consuming application may
// look a dictionary up by.
type Deriver struct {
	lcids   LCIDs
	scripts Scripts
}

// New returns a Deriver backed by the built-in LCID table and the default
// script chain (built-in table, then CLDR).
func New() *Deriver {
	return NewWith(DefaultLCIDs, ChainScripts{DefaultScripts, CLDRScripts{}})
}

func NewWith(lcids LCIDs, scripts Scripts) *Deriver {
	return &Deriver{lcids: lcids, scripts: scripts}
}

// Parse parses a BCP 47 tag.
func Parse(raw string) (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(raw))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrInvalidTag, raw, err)
	}
	return tag, nil
}

// DeriveString parses raw and derives its keys.
func (d *Deriver) DeriveString(raw string) ([]string, error) {
	tag, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return d.Derive(tag)
}

// Derive returns the sorted key set for tag. The set always holds the tag's
// own canonical form. Tags with a known LCID get no fallback keys.
func (d *Deriver) Derive(tag language.Tag) ([]string, error) {
	keys := make(map[string]struct{})
	add := func(t language.Tag) {
		key := t.String()
		log.Debug().Str("key", key).Msg("langkeys: adding key")
		keys[key] = struct{}{}
	}
	add(tag)

	p := splitTag(tag)
	if id, ok := d.lcids.LCID(p.base.String(), p.scriptString(), p.regionString()); ok {
		log.Debug().Str("tag", tag.String()).Str("lcid", fmt.Sprintf("%08x", id)).Msg("langkeys: tag has LCID")
		return sortedKeys(keys), nil
	}
	log.Debug().Str("tag", tag.String()).Msg("langkeys: no LCID, expanding fallbacks")

	if p.hasScript {
		log.Debug().Str("script", p.script.String()).Msg("langkeys: using provided script")
	} else {
		raw, ok := d.scripts.DefaultScript(p.base.String())
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoDefaultScript, p.base.String())
		}
		script, err := language.ParseScript(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad script %q: %v", ErrNoDefaultScript, p.base.String(), raw, err)
		}
		log.Debug().Str("script", script.String()).Msg("langkeys: using derived default script")
		p.script, p.hasScript = script, true
	}

	if p.hasRegion {
		log.Debug().Str("region", p.region.String()).Msg("langkeys: using provided region")
	} else {
		world := p
		world.region, world.hasRegion = language.MustParseRegion(WorldRegion), true
		t, err := world.compose()
		if err != nil {
			return nil, err
		}
		add(t)
	}

	t, err := p.compose()
	if err != nil {
		return nil, err
	}
	add(t)
	return sortedKeys(keys), nil
}

type tagParts struct {
	base       language.Base
	script     language.Script
	region     language.Region
	hasScript  bool
	hasRegion  bool
	variants   []language.Variant
	extensions []language.Extension
}

func splitTag(tag language.Tag) tagParts {
	base, script, region := tag.Raw()
	return tagParts{
		base:       base,
		script:     script,
		region:     region,
		hasScript:  script != language.Script{},
		hasRegion:  region != language.Region{},
		variants:   tag.Variants(),
		extensions: tag.Extensions(),
	}
}

func (p tagParts) scriptString() string {
	if !p.hasScript {
		return ""
	}
	return p.script.String()
}

func (p tagParts) regionString() string {
	if !p.hasRegion {
		return ""
	}
	return p.region.String()
}

func (p tagParts) compose() (language.Tag, error) {
	parts := []any{p.base}
	if p.hasScript {
		parts = append(parts, p.script)
	}
	if p.hasRegion {
		parts = append(parts, p.region)
	}
	if len(p.variants) > 0 {
		parts = append(parts, p.variants)
	}
	if len(p.extensions) > 0 {
		parts = append(parts, p.extensions)
	}
	tag, err := language.Compose(parts...)
	if err != nil {
		return language.Und, fmt.Errorf("%w: compose %v: %v", ErrInvalidTag, parts, err)
	}
	return tag, nil
}

func sortedKeys(in map[string]struct{}) []string {
	out := make([]string, 0, len(in))
	for k := range in {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
