package office

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/spellctl/internal/store"
	"github.com/rs/zerolog/log"
)

const (
	KeyUninstall      = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`
	KeyUninstallWOW64 = `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`
	KeyWOW64          = `SOFTWARE\Wow6432Node`

	officePublisher       = "Microsoft Corporation"
	officeNamePrefix      = "Microsoft Office"
	officeLocationSuffix  = "Microsoft Office"
	valueClickToRunMarker = "ClickToRunComponent"
)

var ErrLocate = errors.New("office: locate failed")

// Locator finds Office installations in the uninstall database and maps them
// to settings roots.
type Locator struct {
	store        store.Store
	settingsName string
}

func NewLocator(s store.Store, settingsName string) *Locator {
	if strings.TrimSpace(settingsName) == "" {
		settingsName = DefaultSettingsName
	}
	return &Locator{store: s, settingsName: settingsName}
}

// Locate returns every settings root of every detected installation, without
// duplicates, in detection order.
func (l *Locator) Locate() ([]TargetRoot, error) {
	log.Info().Msg("office: detecting installations")
	installs, err := l.Installs()
	if err != nil {
		return nil, err
	}
	wow64, err := store.Exists(l.store, KeyWOW64)
	if err != nil {
		return nil, fmt.Errorf("%w: probe wow64: %v", ErrLocate, err)
	}
	if wow64 {
		log.Debug().Msg("office: host has WOW64, including 32-bit mirrors")
	}

	seen := make(map[string]struct{})
	var roots []TargetRoot
	for _, install := range installs {
		candidates, ok := RootsFor(install, l.settingsName, wow64)
		if !ok {
			log.Error().
				Str("method", string(install.Method)).
				Int("major", install.MajorVersion).
				Msg("office: unhandled variant")
			continue
		}
		for _, root := range candidates {
			folded := strings.ToLower(root.Path)
			if _, dup := seen[folded]; dup {
				continue
			}
			seen[folded] = struct{}{}
			roots = append(roots, root)
		}
	}
	return roots, nil
}

// Installs scans both uninstall views. A missing view is skipped.
func (l *Locator) Installs() ([]Install, error) {
	var out []Install
	for _, path := range []string{KeyUninstall, KeyUninstallWOW64} {
		found, err := l.scan(path)
		if errors.Is(err, store.ErrNotFound) {
			log.Debug().Str("key", path).Msg("office: uninstall key missing")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLocate, err)
		}
		out = append(out, found...)
	}
	for _, install := range out {
		log.Info().Stringer("install", install).Msg("office: found")
	}
	return out, nil
}

func (l *Locator) scan(path string) ([]Install, error) {
	parent, err := l.store.Open(path)
	if err != nil {
		return nil, err
	}
	defer parent.Close()
	names, err := parent.SubKeys()
	if err != nil {
		return nil, err
	}

	var out []Install
	for _, name := range names {
		k, err := l.store.Open(store.JoinPath(path, name))
		if err != nil {
			log.Debug().Err(err).Str("entry", name).Msg("office: skipping unreadable uninstall entry")
			continue
		}
		install, ok := parseInstall(k)
		k.Close()
		if ok {
			out = append(out, install)
		}
	}
	return out, nil
}

func parseInstall(k store.Key) (Install, bool) {
	publisher, ok := stringValue(k, "Publisher")
	if !ok || publisher != officePublisher {
		return Install{}, false
	}
	name, ok := stringValue(k, "DisplayName")
	if !ok || !strings.HasPrefix(name, officeNamePrefix) {
		return Install{}, false
	}
	location, ok := stringValue(k, "InstallLocation")
	if !ok || !strings.HasSuffix(strings.TrimRight(location, `\`), officeLocationSuffix) {
		return Install{}, false
	}
	version, ok := stringValue(k, "DisplayVersion")
	if !ok {
		return Install{}, false
	}
	major, err := strconv.Atoi(strings.SplitN(version, ".", 2)[0])
	if err != nil {
		return Install{}, false
	}

	method := InstallMSI
	if _, err := k.Value(valueClickToRunMarker); err == nil {
		method = InstallClickToRun
	}
	return Install{Method: method, MajorVersion: major, DisplayName: name}, true
}

func stringValue(k store.Key, name string) (string, bool) {
	v, err := k.Value(name)
	if err != nil || v.Kind != store.KindString {
		return "", false
	}
	return v.String, true
}
