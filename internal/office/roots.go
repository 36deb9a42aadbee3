package office

import (
	"fmt"

	"github.com/danmuck/spellctl/internal/store"
)

// DefaultSettingsName is the vendor leaf under "User Settings".
const DefaultSettingsName = "WinDivvun"

type InstallMethod string

const (
	InstallMSI        InstallMethod = "msi"
	InstallClickToRun InstallMethod = "click2run"
)

// Install is one detected Office installation.
type Install struct {
	Method       InstallMethod
	MajorVersion int
	DisplayName  string
}

func (i Install) String() string {
	return fmt.Sprintf("Office %d (%s)", i.MajorVersion, i.Method)
}

// TargetRoot is one configuration subtree that receives synchronized state.
type TargetRoot struct {
	Path    string
	Install Install
	// WOW64 marks the 32-bit mirror of a native root.
	WOW64 bool
}

type rootKey struct {
	method InstallMethod
	major  int
}

// rootTemplate holds the "User Settings" parent for the native view and its
// Wow6432Node mirror.
type rootTemplate struct {
	native string
	wow64  string
}

const clickToRunPrefix = `SOFTWARE\Microsoft\Office\ClickToRun\REGISTRY\MACHINE\Software`

var rootTable = map[rootKey]rootTemplate{
	{InstallMSI, 15}: {
		native: `SOFTWARE\Microsoft\Office\15.0\User Settings`,
		wow64:  `SOFTWARE\Wow6432Node\Microsoft\Office\15.0\User Settings`,
	},
	{InstallClickToRun, 15}: {
		native: clickToRunPrefix + `\Microsoft\Office\15.0\User Settings`,
		wow64:  clickToRunPrefix + `\Wow6432Node\Microsoft\Office\15.0\User Settings`,
	},
	{InstallMSI, 16}: {
		native: `SOFTWARE\Microsoft\Office\16.0\User Settings`,
		wow64:  `SOFTWARE\Wow6432Node\Microsoft\Office\16.0\User Settings`,
	},
	{InstallClickToRun, 16}: {
		native: clickToRunPrefix + `\Microsoft\Office\16.0\User Settings`,
		wow64:  clickToRunPrefix + `\Wow6432Node\Microsoft\Office\16.0\User Settings`,
	},
}

// RootsFor returns the settings roots for install. On hosts with WOW64 both
// the native and the Wow6432Node root are returned. ok is false for an
// unsupported method/version pair.
func RootsFor(install Install, settingsName string, wow64 bool) ([]TargetRoot, bool) {
	tpl, ok := rootTable[rootKey{install.Method, install.MajorVersion}]
	if !ok {
		return nil, false
	}
	if settingsName == "" {
		settingsName = DefaultSettingsName
	}
	roots := []TargetRoot{{
		Path:    store.JoinPath(tpl.native, settingsName),
		Install: install,
	}}
	if wow64 {
		roots = append(roots, TargetRoot{
			Path:    store.JoinPath(tpl.wow64, settingsName),
			Install: install,
			WOW64:   true,
		})
	}
	return roots, true
}
