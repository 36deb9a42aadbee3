package spellers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danmuck/spellctl/internal/store"
	"github.com/rs/zerolog/log"
)

// DefaultNamespace is the central key holding one value per registered name.
const DefaultNamespace = `SOFTWARE\WinDivvun\Spellers`

// Langs is the desired state read from the central namespace. A name is in
// exactly one of Create or Delete.
type Langs struct {
	Create map[string]string
	Delete []string
}

// CreateNames returns the Create names in sorted order.
func (l Langs) CreateNames() []string {
	out := make([]string, 0, len(l.Create))
	for name := range l.Create {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Entry is one central value as shown by listings.
type Entry struct {
	Name       string
	Path       string
	Registered bool
}

func (e Entry) String() string {
	if !e.Registered {
		return fmt.Sprintf("%s -> <none>", e.Name)
	}
	return fmt.Sprintf("%s -> %s", e.Name, e.Path)
}

// Central reads and writes the central namespace, the source of truth for
// every name that has ever been registered.
type Central struct {
	store     store.Store
	namespace string
}

func NewCentral(s store.Store, namespace string) *Central {
	if strings.TrimSpace(namespace) == "" {
		namespace = DefaultNamespace
	}
	return &Central{store: s, namespace: namespace}
}

func (c *Central) Namespace() string {
	return c.namespace
}

func (c *Central) open() (store.Key, error) {
	return c.store.Create(c.namespace)
}

// Register points every name at path.
func (c *Central) Register(names []string, path string) error {
	key, err := c.open()
	if err != nil {
		return err
	}
	defer key.Close()
	for _, name := range names {
		log.Info().Str("name", name).Str("path", path).Msg("spellers: setting")
		if err := key.SetString(name, path); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(names)).Str("path", path).Msg("spellers: set language tags")
	return nil
}

// Deregister writes the absent marker for every name.
func (c *Central) Deregister(names []string) error {
	key, err := c.open()
	if err != nil {
		return err
	}
	defer key.Close()
	for _, name := range names {
		log.Info().Str("name", name).Msg("spellers: setting <none>")
		if err := key.SetNone(name); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(names)).Msg("spellers: unset language tags")
	return nil
}

// DeregisterAll marks every currently registered name absent and returns how
// many were changed.
func (c *Central) DeregisterAll() (int, error) {
	langs, err := c.Load()
	if err != nil {
		return 0, err
	}
	names := langs.CreateNames()
	if len(names) == 0 {
		return 0, nil
	}
	return len(names), c.Deregister(names)
}

// Load classifies central values into Create and Delete. Values of any other
// kind are logged and skipped.
func (c *Central) Load() (Langs, error) {
	key, err := c.open()
	if err != nil {
		return Langs{}, err
	}
	defer key.Close()
	values, err := key.Values()
	if err != nil {
		return Langs{}, err
	}

	langs := Langs{Create: make(map[string]string), Delete: []string{}}
	for _, v := range values {
		switch v.Kind {
		case store.KindString:
			langs.Create[v.Name] = v.String
		case store.KindNone:
			langs.Delete = append(langs.Delete, v.Name)
		default:
			log.Warn().Str("name", v.Name).Stringer("kind", v.Kind).Msg("spellers: unhandled value kind, skipping")
		}
	}
	sort.Strings(langs.Delete)
	return langs, nil
}

// Entries lists every central value ordered by name.
func (c *Central) Entries() ([]Entry, error) {
	key, err := c.open()
	if err != nil {
		return nil, err
	}
	defer key.Close()
	values, err := key.Values()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(values))
	for _, v := range values {
		switch v.Kind {
		case store.KindString:
			out = append(out, Entry{Name: v.Name, Path: v.String, Registered: true})
		case store.KindNone:
			out = append(out, Entry{Name: v.Name})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}
