package libreoffice

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danmuck/spellctl/internal/store"
	"github.com/danmuck/spellctl/internal/tools"
	"github.com/rs/zerolog/log"
)

const (
	// KeyInstallPath holds the LibreOffice program directory as its default value.
	KeyInstallPath = `SOFTWARE\LibreOffice\UNO\InstallPath`

	DefaultExtensionID = "no.divvun.DivvunSpell"
	DefaultInstallDir  = `C:\Program Files\DivvunSpell LibreOffice`

	unopkgName = "unopkg.com"
)

var (
	ErrNotInstalled     = errors.New("libreoffice: no installation found")
	ErrUnopkgMissing    = errors.New("libreoffice: unopkg not found")
	ErrUnopkgFailed     = errors.New("libreoffice: unopkg failed")
	ErrInvalidPackage   = errors.New("libreoffice: invalid extension package")
	ErrSandboxViolation = errors.New("libreoffice: sandbox violation")
)

type Config struct {
	InstallDir  string
	ExtensionID string
	Runner      tools.CommandRunner
}

// Manager installs and removes the speller extension through unopkg.
type Manager struct {
	store       store.Store
	installDir  string
	extensionID string
	runner      tools.CommandRunner
}

func New(s store.Store, cfg Config) *Manager {
	installDir := strings.TrimSpace(cfg.InstallDir)
	if installDir == "" {
		installDir = DefaultInstallDir
	}
	id := strings.TrimSpace(cfg.ExtensionID)
	if id == "" {
		id = DefaultExtensionID
	}
	runner := cfg.Runner
	if runner == nil {
		runner = tools.ExecRunner{}
	}
	return &Manager{
		store:       s,
		installDir:  filepath.Clean(installDir),
		extensionID: id,
		runner:      runner,
	}
}

func (m *Manager) InstallDir() string {
	return m.installDir
}

// FindUnopkg returns the unopkg path of the registered LibreOffice install.
func (m *Manager) FindUnopkg() (string, error) {
	k, err := m.store.Open(KeyInstallPath)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrNotInstalled
	}
	if err != nil {
		return "", err
	}
	defer k.Close()
	v, err := k.Value("")
	if errors.Is(err, store.ErrNotFound) || (err == nil && (v.Kind != store.KindString || strings.TrimSpace(v.String) == "")) {
		return "", ErrNotInstalled
	}
	if err != nil {
		return "", err
	}

	programDir := strings.TrimSpace(v.String)
	if !strings.EqualFold(filepath.Base(programDir), "program") {
		programDir = filepath.Join(programDir, "program")
	}
	unopkg := filepath.Join(programDir, unopkgName)
	log.Debug().Str("path", unopkg).Msg("libreoffice: checking unopkg")
	if _, err := os.Stat(unopkg); err != nil {
		log.Error().Str("path", unopkg).Msg("libreoffice: unopkg missing, is the installation corrupt?")
		return "", fmt.Errorf("%w: %s", ErrUnopkgMissing, unopkg)
	}
	return unopkg, nil
}

// Install copies the extension package into the install directory and
// registers it for all users. Hosts without LibreOffice are skipped.
func (m *Manager) Install(pkg string) error {
	unopkg, err := m.FindUnopkg()
	if errors.Is(err, ErrNotInstalled) {
		log.Info().Msg("libreoffice: no installation found, not installing extension")
		return nil
	}
	if err != nil {
		return err
	}

	dest, err := m.stagePackage(pkg)
	if err != nil {
		return err
	}
	if _, err := tools.Run(m.runner, unopkg, "add", "--shared", "--force", dest); err != nil {
		return fmt.Errorf("%w: %v", ErrUnopkgFailed, err)
	}
	log.Info().Str("package", dest).Msg("libreoffice: extension installed")
	return nil
}

// Remove unregisters the extension and deletes the install directory. A
// failing unopkg remove means the extension was not registered and is not an
// error.
func (m *Manager) Remove() error {
	unopkg, err := m.FindUnopkg()
	switch {
	case errors.Is(err, ErrNotInstalled):
		log.Info().Msg("libreoffice: no installation found, not uninstalling extension")
	case err != nil:
		return err
	default:
		res, err := m.runner.Run(unopkg, "remove", "--shared", m.extensionID)
		if err != nil && res.ExitCode == tools.ExitNotFound {
			log.Error().Err(err).Msg("libreoffice: failed to start unopkg")
			return fmt.Errorf("%w: %v", ErrUnopkgFailed, err)
		}
		log.Debug().Int("exit", res.ExitCode).Msg("libreoffice: unopkg remove finished")
	}

	if _, err := os.Stat(m.installDir); errors.Is(err, os.ErrNotExist) {
		log.Info().Str("dir", m.installDir).Msg("libreoffice: extension not on disk, nothing to remove")
		return nil
	}
	if err := os.RemoveAll(m.installDir); err != nil {
		log.Warn().Err(err).Str("dir", m.installDir).Msg("libreoffice: unable to remove install directory")
	}
	return nil
}
