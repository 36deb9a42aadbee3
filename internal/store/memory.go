package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Memory is an in-memory Store. Key and value names compare case-insensitively
// and keep the spelling they were created with.
type Memory struct {
	mu   sync.RWMutex
	root *memNode

	// afterWrite runs after every successful mutation, outside the lock.
	afterWrite func() error
}

type memNode struct {
	name     string
	values   map[string]Value
	children map[string]*memNode
}

// KeySnapshot is a flattened copy of one key and its values.
type KeySnapshot struct {
	Path   string
	Values []Value
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{root: newMemNode("")}
}

func newMemNode(name string) *memNode {
	return &memNode{
		name:     name,
		values:   make(map[string]Value),
		children: make(map[string]*memNode),
	}
}

func fold(s string) string {
	return strings.ToLower(s)
}

func (m *Memory) lookup(path string) (*memNode, bool) {
	n := m.root
	for _, seg := range SplitPath(path) {
		child, ok := n.children[fold(seg)]
		if !ok {
			return nil, false
		}
		n = child
	}
	return n, true
}

func (m *Memory) Open(path string) (Key, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.lookup(path); !ok {
		return nil, opErr("open", path, ErrNotFound)
	}
	return &memKey{m: m, path: JoinPath(path)}, nil
}

func (m *Memory) Create(path string) (Key, error) {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return nil, opErr("create", path, ErrInvalidPath)
	}
	m.mu.Lock()
	created := false
	n := m.root
	for _, seg := range segs {
		child, ok := n.children[fold(seg)]
		if !ok {
			child = newMemNode(seg)
			n.children[fold(seg)] = child
			created = true
		}
		n = child
	}
	m.mu.Unlock()
	if created {
		if err := m.notify(); err != nil {
			return nil, opErr("create", path, err)
		}
	}
	return &memKey{m: m, path: JoinPath(path)}, nil
}

func (m *Memory) DeleteTree(path string) error {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return opErr("delete", path, ErrInvalidPath)
	}
	m.mu.Lock()
	parent, ok := m.lookup(JoinPath(segs[:len(segs)-1]...))
	leaf := fold(segs[len(segs)-1])
	if ok {
		_, ok = parent.children[leaf]
	}
	if !ok {
		m.mu.Unlock()
		return opErr("delete", path, ErrNotFound)
	}
	delete(parent.children, leaf)
	m.mu.Unlock()
	return opErr("delete", path, m.notify())
}

func (m *Memory) notify() error {
	if m.afterWrite == nil {
		return nil
	}
	return m.afterWrite()
}

// Snapshot returns every key that holds values or has no children, ordered by path.
func (m *Memory) Snapshot() []KeySnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []KeySnapshot
	var walk func(prefix string, n *memNode)
	walk = func(prefix string, n *memNode) {
		if prefix != "" && (len(n.values) > 0 || len(n.children) == 0) {
			out = append(out, KeySnapshot{Path: prefix, Values: sortedValues(n.values)})
		}
		for _, child := range n.children {
			walk(JoinPath(prefix, child.name), child)
		}
	}
	walk("", m.root)
	sort.Slice(out, func(i, j int) bool {
		return fold(out[i].Path) < fold(out[j].Path)
	})
	return out
}

// Restore replaces the store contents with snap.
func (m *Memory) Restore(snap []KeySnapshot) error {
	root := newMemNode("")
	for _, ks := range snap {
		segs := SplitPath(ks.Path)
		if len(segs) == 0 {
			return opErr("restore", ks.Path, ErrInvalidPath)
		}
		n := root
		for _, seg := range segs {
			child, ok := n.children[fold(seg)]
			if !ok {
				child = newMemNode(seg)
				n.children[fold(seg)] = child
			}
			n = child
		}
		for _, v := range ks.Values {
			n.values[fold(v.Name)] = v
		}
	}
	m.mu.Lock()
	m.root = root
	m.mu.Unlock()
	return nil
}

func sortedValues(in map[string]Value) []Value {
	out := make([]Value, 0, len(in))
	for _, v := range in {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return fold(out[i].Name) < fold(out[j].Name)
	})
	return out
}

type memKey struct {
	m    *Memory
	path string
}

func (k *memKey) Path() string {
	return k.path
}

func (k *memKey) Values() ([]Value, error) {
	k.m.mu.RLock()
	defer k.m.mu.RUnlock()
	n, ok := k.m.lookup(k.path)
	if !ok {
		return nil, opErr("values", k.path, ErrNotFound)
	}
	return sortedValues(n.values), nil
}

func (k *memKey) Value(name string) (Value, error) {
	k.m.mu.RLock()
	defer k.m.mu.RUnlock()
	n, ok := k.m.lookup(k.path)
	if !ok {
		return Value{}, opErr("value", k.path, ErrNotFound)
	}
	v, ok := n.values[fold(name)]
	if !ok {
		return Value{}, opErr("value", k.path, fmt.Errorf("%w: value %q", ErrNotFound, name))
	}
	return v, nil
}

func (k *memKey) SubKeys() ([]string, error) {
	k.m.mu.RLock()
	defer k.m.mu.RUnlock()
	n, ok := k.m.lookup(k.path)
	if !ok {
		return nil, opErr("subkeys", k.path, ErrNotFound)
	}
	out := make([]string, 0, len(n.children))
	for _, child := range n.children {
		out = append(out, child.name)
	}
	sort.Slice(out, func(i, j int) bool {
		return fold(out[i]) < fold(out[j])
	})
	return out, nil
}

func (k *memKey) SetString(name, value string) error {
	return k.set(Value{Name: name, Kind: KindString, String: value})
}

func (k *memKey) SetNone(name string) error {
	return k.set(Value{Name: name, Kind: KindNone})
}

func (k *memKey) SetUint32(name string, value uint32) error {
	return k.set(Value{Name: name, Kind: KindUint32, Uint32: value})
}

func (k *memKey) set(v Value) error {
	k.m.mu.Lock()
	n, ok := k.m.lookup(k.path)
	if !ok {
		k.m.mu.Unlock()
		return opErr("set", k.path, ErrNotFound)
	}
	if prev, exists := n.values[fold(v.Name)]; exists {
		v.Name = prev.Name
	}
	n.values[fold(v.Name)] = v
	k.m.mu.Unlock()
	return opErr("set", k.path, k.m.notify())
}

func (k *memKey) Close() error {
	return nil
}
