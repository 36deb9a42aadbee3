package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danmuck/spellctl/internal/office"
	"github.com/danmuck/spellctl/internal/spellers"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

const (
	EnvConfig = "SPELLCTL_CONFIG"

	StoreRegistry = "registry"
	StoreFile     = "file"
	StoreMemory   = "memory"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Store           string            `toml:"store"`
	StorePath       string            `toml:"store_path"`
	SpellersDir     string            `toml:"spellers_dir"`
	Namespace       string            `toml:"namespace"`
	SettingsName    string            `toml:"settings_name"`
	DLL32           string            `toml:"dll32"`
	DLL64           string            `toml:"dll64"`
	MetricsTextfile string            `toml:"metrics_textfile"`
	LibreOffice     LibreOfficeConfig `toml:"libreoffice"`
}

type LibreOfficeConfig struct {
	Enabled     bool   `toml:"enabled"`
	InstallDir  string `toml:"install_dir"`
	ExtensionID string `toml:"extension_id"`
	OxtPath     string `toml:"oxt_path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Store:        StoreRegistry,
		Namespace:    spellers.DefaultNamespace,
		SettingsName: office.DefaultSettingsName,
	}
}

// Path resolves the config file location: the explicit flag value first,
// then SPELLCTL_CONFIG. Empty means defaults only.
func Path(flag string) string {
	if p := strings.TrimSpace(flag); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvConfig))
}

// Load reads path over the defaults. An empty path yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
		}
		if err := loadToml(expanded, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyDefaults(&cfg)
	if err := expandPaths(&cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	if cfg.Store == "" {
		cfg.Store = StoreRegistry
	}
	if strings.TrimSpace(cfg.Namespace) == "" {
		cfg.Namespace = spellers.DefaultNamespace
	}
	if strings.TrimSpace(cfg.SettingsName) == "" {
		cfg.SettingsName = office.DefaultSettingsName
	}
}

func expandPaths(cfg *Config) error {
	for _, p := range []*string{
		&cfg.StorePath,
		&cfg.SpellersDir,
		&cfg.MetricsTextfile,
		&cfg.LibreOffice.InstallDir,
		&cfg.LibreOffice.OxtPath,
	} {
		v := strings.TrimSpace(*p)
		if v == "" {
			*p = ""
			continue
		}
		expanded, err := homedir.Expand(v)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		*p = filepath.Clean(expanded)
	}
	return nil
}

func Validate(cfg Config) error {
	switch cfg.Store {
	case StoreRegistry, StoreMemory:
	case StoreFile:
		if strings.TrimSpace(cfg.StorePath) == "" {
			return fmt.Errorf("%w: store_path is required for the file store", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, cfg.Store)
	}
	if strings.TrimSpace(cfg.Namespace) == "" {
		return fmt.Errorf("%w: namespace is required", ErrInvalidConfig)
	}
	if strings.ContainsAny(cfg.SettingsName, `\/`) {
		return fmt.Errorf("%w: settings_name must be a single key name", ErrInvalidConfig)
	}
	return nil
}
