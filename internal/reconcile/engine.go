package reconcile

import (
	"math"
	"time"

	"github.com/danmuck/spellctl/internal/office"
	"github.com/danmuck/spellctl/internal/spellers"
	"github.com/danmuck/spellctl/internal/store"
	"github.com/rs/zerolog/log"
)

const (
	// OverridePath is the proofing-tools override key mirrored under each
	// root's Create and Delete subtrees.
	OverridePath = `SOFTWARE\Microsoft\Shared Tools\Proofing Tools\1.0\Override`

	SubtreeCreate = "Create"
	SubtreeDelete = "Delete"

	FieldLex   = "LEX"
	FieldLex64 = "LEX64"
	FieldDLL   = "DLL"
	FieldDLL64 = "DLL64"

	FieldCount = "Count"
	FieldOrder = "Order"

	DefaultDLL32 = `C:\Program Files\WinDivvun\divvunspell-mso32.dll`
	DefaultDLL64 = `C:\Program Files\WinDivvun\divvunspell-mso64.dll`
)

// Epoch is the zero point of the revision counter (2020-01-01 UTC).
var Epoch = time.Unix(1577836800, 0).UTC()

// Drivers names the proofing DLL Office loads for each word size.
type Drivers struct {
	DLL32 string
	DLL64 string
}

func DefaultDrivers() Drivers {
	return Drivers{DLL32: DefaultDLL32, DLL64: DefaultDLL64}
}

// Engine writes desired state into Office settings roots.
type Engine struct {
	store   store.Store
	drivers Drivers
	now     func() time.Time
}

type Option func(*Engine)

// WithClock overrides the revision counter clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(s store.Store, drivers Drivers, opts ...Option) *Engine {
	if drivers.DLL32 == "" {
		drivers.DLL32 = DefaultDLL32
	}
	if drivers.DLL64 == "" {
		drivers.DLL64 = DefaultDLL64
	}
	e := &Engine{store: s, drivers: drivers, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RecordPath is the key of name's record in subtree under root.
func RecordPath(root, subtree, name string) string {
	return store.JoinPath(root, subtree, OverridePath, name)
}

// Apply synchronizes langs into root: creates, then tombstones, then the
// revision stamp. The stamp is written even when langs is empty. The first
// error aborts the root.
func (e *Engine) Apply(langs spellers.Langs, root office.TargetRoot) (Stats, error) {
	var stats Stats
	for _, name := range langs.CreateNames() {
		log.Debug().Str("root", root.Path).Str("name", name).Msg("reconcile: adding create")
		if err := e.addCreate(root.Path, name, langs.Create[name]); err != nil {
			return stats, err
		}
		stats.Created++
	}
	for _, name := range langs.Delete {
		log.Debug().Str("root", root.Path).Str("name", name).Msg("reconcile: adding delete")
		if err := e.addDelete(root.Path, name); err != nil {
			return stats, err
		}
		stats.Deleted++
	}
	log.Debug().Str("root", root.Path).Msg("reconcile: updating count key")
	count, err := e.stamp(root.Path)
	if err != nil {
		return stats, err
	}
	stats.Count = count
	return stats, nil
}

func (e *Engine) addCreate(root, name, path string) error {
	if err := store.RemoveTree(e.store, RecordPath(root, SubtreeDelete, name)); err != nil {
		return err
	}
	return e.writeRecord(RecordPath(root, SubtreeCreate, name), [4]string{
		path, path, e.drivers.DLL32, e.drivers.DLL64,
	})
}

func (e *Engine) addDelete(root, name string) error {
	if err := store.RemoveTree(e.store, RecordPath(root, SubtreeCreate, name)); err != nil {
		return err
	}
	return e.writeRecord(RecordPath(root, SubtreeDelete, name), [4]string{})
}

// writeRecord sets LEX, LEX64, DLL, DLL64 in that order.
func (e *Engine) writeRecord(path string, fields [4]string) error {
	k, err := e.store.Create(path)
	if err != nil {
		return err
	}
	defer k.Close()
	for i, name := range [4]string{FieldLex, FieldLex64, FieldDLL, FieldDLL64} {
		if err := k.SetString(name, fields[i]); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) stamp(root string) (uint32, error) {
	k, err := e.store.Create(root)
	if err != nil {
		return 0, err
	}
	defer k.Close()
	count := Counter(e.now())
	if err := k.SetUint32(FieldCount, count); err != nil {
		return 0, err
	}
	if err := k.SetUint32(FieldOrder, 1); err != nil {
		return 0, err
	}
	return count, nil
}

// Counter converts t to whole seconds since Epoch, clamped to uint32.
func Counter(t time.Time) uint32 {
	secs := int64(t.Sub(Epoch) / time.Second)
	switch {
	case secs < 0:
		return 0
	case secs > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(secs)
	}
}
