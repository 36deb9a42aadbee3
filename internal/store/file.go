package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// File is a Memory store persisted to a TOML document after every mutation.
type File struct {
	*Memory
	path string
}

type fileDocument struct {
	Keys []fileKey `toml:"key"`
}

type fileKey struct {
	Path   string      `toml:"path"`
	Values []fileValue `toml:"value,omitempty"`
}

type fileValue struct {
	Name   string `toml:"name"`
	Kind   string `toml:"kind"`
	String string `toml:"string,omitempty"`
	Uint32 uint32 `toml:"uint32,omitempty"`
}

// OpenFile loads the store at path, starting empty when the file does not exist.
func OpenFile(path string) (*File, error) {
	f := &File{Memory: NewMemory(), path: path}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, opErr("load", path, err)
	default:
		var doc fileDocument
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, opErr("load", path, fmt.Errorf("decode: %w", err))
		}
		snap, err := doc.snapshot()
		if err != nil {
			return nil, opErr("load", path, err)
		}
		if err := f.Memory.Restore(snap); err != nil {
			return nil, err
		}
	}
	f.Memory.afterWrite = f.save
	return f, nil
}

// Location returns the backing file path.
func (f *File) Location() string {
	return f.path
}

func (f *File) save() error {
	doc := documentFromSnapshot(f.Memory.Snapshot())
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".spellctl-store-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

func documentFromSnapshot(snap []KeySnapshot) fileDocument {
	doc := fileDocument{Keys: make([]fileKey, 0, len(snap))}
	for _, ks := range snap {
		fk := fileKey{Path: ks.Path}
		for _, v := range ks.Values {
			fk.Values = append(fk.Values, fileValue{
				Name:   v.Name,
				Kind:   v.Kind.String(),
				String: v.String,
				Uint32: v.Uint32,
			})
		}
		doc.Keys = append(doc.Keys, fk)
	}
	return doc
}

func (doc fileDocument) snapshot() ([]KeySnapshot, error) {
	out := make([]KeySnapshot, 0, len(doc.Keys))
	for _, fk := range doc.Keys {
		ks := KeySnapshot{Path: fk.Path}
		for _, fv := range fk.Values {
			kind, err := parseKind(fv.Kind)
			if err != nil {
				return nil, fmt.Errorf("key %q value %q: %w", fk.Path, fv.Name, err)
			}
			ks.Values = append(ks.Values, Value{
				Name:   fv.Name,
				Kind:   kind,
				String: fv.String,
				Uint32: fv.Uint32,
			})
		}
		out = append(out, ks)
	}
	return out, nil
}

func parseKind(raw string) (Kind, error) {
	switch raw {
	case "none":
		return KindNone, nil
	case "string":
		return KindString, nil
	case "uint32":
		return KindUint32, nil
	case "other":
		return KindOther, nil
	default:
		return KindOther, fmt.Errorf("unknown value kind %q", raw)
	}
}
