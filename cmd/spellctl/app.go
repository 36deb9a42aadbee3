package main

import (
	"fmt"

	"github.com/danmuck/spellctl/internal/config"
	"github.com/danmuck/spellctl/internal/langkeys"
	"github.com/danmuck/spellctl/internal/libreoffice"
	"github.com/danmuck/spellctl/internal/logging"
	"github.com/danmuck/spellctl/internal/office"
	"github.com/danmuck/spellctl/internal/reconcile"
	"github.com/danmuck/spellctl/internal/registration"
	"github.com/danmuck/spellctl/internal/spellers"
	"github.com/danmuck/spellctl/internal/store"
	"github.com/danmuck/spellctl/internal/tools"
	"github.com/rs/zerolog/log"
)

// app holds the state shared by every subcommand for one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	store  store.Store
	runner tools.CommandRunner
}

func (a *app) init() error {
	if a.verbose {
		logging.SetVerbose()
	}
	path := config.Path(a.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if path != "" {
		log.Debug().Str("path", path).Msg("spellctl: loaded config")
	}

	return nil
}

// backend opens the configured store on first use so help and flag errors
// never touch the registry.
func (a *app) backend() (store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	s, err := openStore(a.cfg)
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.Store {
	case config.StoreRegistry:
		return store.OpenSystem()
	case config.StoreFile:
		f, err := store.OpenFile(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", f.Location()).Msg("spellctl: using file store")
		return f, nil
	case config.StoreMemory:
		log.Warn().Msg("spellctl: using memory store, changes are discarded on exit")
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: unknown store %q", config.ErrInvalidConfig, cfg.Store)
	}
}

func (a *app) service() (*registration.Service, error) {
	s, err := a.backend()
	if err != nil {
		return nil, err
	}
	return registration.New(registration.Config{
		Deriver: langkeys.New(),
		Central: spellers.NewCentral(s, a.cfg.Namespace),
		Locator: office.NewLocator(s, a.cfg.SettingsName),
		Engine: reconcile.NewEngine(s, reconcile.Drivers{
			DLL32: a.cfg.DLL32,
			DLL64: a.cfg.DLL64,
		}),
		MetricsTextfile: a.cfg.MetricsTextfile,
	}), nil
}

func (a *app) libreOffice() (*libreoffice.Manager, error) {
	s, err := a.backend()
	if err != nil {
		return nil, err
	}
	return libreoffice.New(s, libreoffice.Config{
		InstallDir:  a.cfg.LibreOffice.InstallDir,
		ExtensionID: a.cfg.LibreOffice.ExtensionID,
		Runner:      a.runner,
	}), nil
}
