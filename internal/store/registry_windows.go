//go:build windows

package store

import (
	"errors"
	"fmt"
	"sort"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// x/sys/windows/registry exposes neither REG_NONE writes nor tree deletion.
var (
	advapi32           = windows.NewLazySystemDLL("advapi32.dll")
	procRegSetValueExW = advapi32.NewProc("RegSetValueExW")
	procRegDeleteTreeW = advapi32.NewProc("RegDeleteTreeW")
)

// Registry is the HKEY_LOCAL_MACHINE store, always addressed through the
// 64-bit registry view so Wow6432Node paths are written literally.
type Registry struct {
	root registry.Key
	view uint32
}

// OpenSystem returns the machine registry store.
func OpenSystem() (Store, error) {
	return &Registry{root: registry.LOCAL_MACHINE, view: registry.WOW64_64KEY}, nil
}

func (r *Registry) Open(path string) (Key, error) {
	k, err := registry.OpenKey(r.root, path, registry.READ|r.view)
	if err != nil {
		return nil, opErr("open", path, mapRegistryErr(err))
	}
	return &registryKey{k: k, path: path}, nil
}

func (r *Registry) Create(path string) (Key, error) {
	if len(SplitPath(path)) == 0 {
		return nil, opErr("create", path, ErrInvalidPath)
	}
	k, _, err := registry.CreateKey(r.root, path, registry.ALL_ACCESS|r.view)
	if err != nil {
		return nil, opErr("create", path, mapRegistryErr(err))
	}
	return &registryKey{k: k, path: path}, nil
}

func (r *Registry) DeleteTree(path string) error {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return opErr("delete", path, ErrInvalidPath)
	}
	parent := r.root
	if len(segs) > 1 {
		k, err := registry.OpenKey(r.root, JoinPath(segs[:len(segs)-1]...), registry.ALL_ACCESS|r.view)
		if err != nil {
			return opErr("delete", path, mapRegistryErr(err))
		}
		defer k.Close()
		parent = k
	}
	leaf, err := windows.UTF16PtrFromString(segs[len(segs)-1])
	if err != nil {
		return opErr("delete", path, err)
	}
	ret, _, _ := procRegDeleteTreeW.Call(uintptr(parent), uintptr(unsafe.Pointer(leaf)))
	if ret != 0 {
		return opErr("delete", path, mapRegistryErr(syscall.Errno(ret)))
	}
	return nil
}

type registryKey struct {
	k    registry.Key
	path string
}

func (k *registryKey) Path() string {
	return k.path
}

func (k *registryKey) Values() ([]Value, error) {
	names, err := k.k.ReadValueNames(-1)
	if err != nil {
		return nil, opErr("values", k.path, mapRegistryErr(err))
	}
	sort.Strings(names)
	out := make([]Value, 0, len(names))
	for _, name := range names {
		v, err := k.read(name)
		if err != nil {
			return nil, opErr("values", k.path, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (k *registryKey) Value(name string) (Value, error) {
	v, err := k.read(name)
	if err != nil {
		return Value{}, opErr("value", k.path, err)
	}
	return v, nil
}

func (k *registryKey) read(name string) (Value, error) {
	_, valtype, err := k.k.GetValue(name, nil)
	if err != nil {
		return Value{}, mapRegistryErr(err)
	}
	switch valtype {
	case registry.NONE:
		return Value{Name: name, Kind: KindNone}, nil
	case registry.SZ, registry.EXPAND_SZ:
		s, _, err := k.k.GetStringValue(name)
		if err != nil {
			return Value{}, mapRegistryErr(err)
		}
		return Value{Name: name, Kind: KindString, String: s}, nil
	case registry.DWORD:
		n, _, err := k.k.GetIntegerValue(name)
		if err != nil {
			return Value{}, mapRegistryErr(err)
		}
		return Value{Name: name, Kind: KindUint32, Uint32: uint32(n)}, nil
	default:
		return Value{Name: name, Kind: KindOther}, nil
	}
}

func (k *registryKey) SubKeys() ([]string, error) {
	names, err := k.k.ReadSubKeyNames(-1)
	if err != nil {
		return nil, opErr("subkeys", k.path, mapRegistryErr(err))
	}
	sort.Strings(names)
	return names, nil
}

func (k *registryKey) SetString(name, value string) error {
	return opErr("set", k.path, mapRegistryErr(k.k.SetStringValue(name, value)))
}

func (k *registryKey) SetUint32(name string, value uint32) error {
	return opErr("set", k.path, mapRegistryErr(k.k.SetDWordValue(name, value)))
}

func (k *registryKey) SetNone(name string) error {
	pname, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return opErr("set", k.path, err)
	}
	ret, _, _ := procRegSetValueExW.Call(
		uintptr(k.k),
		uintptr(unsafe.Pointer(pname)),
		0,
		uintptr(registry.NONE),
		0,
		0,
	)
	if ret != 0 {
		return opErr("set", k.path, mapRegistryErr(syscall.Errno(ret)))
	}
	return nil
}

func (k *registryKey) Close() error {
	return k.k.Close()
}

func mapRegistryErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, registry.ErrNotExist) || errors.Is(err, syscall.ERROR_PATH_NOT_FOUND) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
