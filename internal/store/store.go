package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound    = errors.New("store: not found")
	ErrUnsupported = errors.New("store: backend not supported on this platform")
	ErrInvalidPath = errors.New("store: invalid key path")
)

// Separator joins key path segments, matching the Windows registry.
const Separator = `\`

// Kind is the type of a stored value.
type Kind int

const (
	// KindNone is the explicit absent marker (REG_NONE). It is distinct from
	// a value that does not exist.
	KindNone Kind = iota
	KindString
	KindUint32
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindUint32:
		return "uint32"
	default:
		return "other"
	}
}

// Value is one named entry of a key.
type Value struct {
	Name   string
	Kind   Kind
	String string
	Uint32 uint32
}

// Key is an open handle on one node of the store.
type Key interface {
	Path() string
	// Values returns every value of the key ordered by name.
	Values() ([]Value, error)
	// Value returns ErrNotFound when name is not set on the key.
	Value(name string) (Value, error)
	// SubKeys returns direct child names ordered by name.
	SubKeys() ([]string, error)
	SetString(name, value string) error
	SetNone(name string) error
	SetUint32(name string, value uint32) error
	Close() error
}

// Store is a hierarchical key/value configuration database.
type Store interface {
	// Open returns ErrNotFound when the key does not exist.
	Open(path string) (Key, error)
	// Create opens path, creating it and any missing parents.
	Create(path string) (Key, error)
	// DeleteTree removes path with all values and descendants. It returns
	// ErrNotFound when the key does not exist.
	DeleteTree(path string) error
}

// OpError records the failed operation and key path.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("store: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Path: path, Err: err}
}

// RemoveTree deletes path and treats a missing key as success.
func RemoveTree(s Store, path string) error {
	err := s.DeleteTree(path)
	if err == nil || errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// Exists reports whether path can be opened.
func Exists(s Store, path string) (bool, error) {
	k, err := s.Open(path)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	k.Close()
	return true, nil
}

// JoinPath joins key path segments, dropping empty segments and stray separators.
func JoinPath(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, Separator)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, Separator)
}

// SplitPath splits a key path into its non-empty segments.
func SplitPath(path string) []string {
	raw := strings.Split(path, Separator)
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
