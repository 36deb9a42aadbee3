package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// FileName is the manifest each speller package ships in its directory.
const FileName = "spellers.toml"

var (
	ErrInvalidManifest = errors.New("manifest: invalid manifest")
	ErrInvalidEntry    = errors.New("manifest: invalid entry")
	ErrMissingFile     = errors.New("manifest: dictionary file missing")
)

// Source is one parsed manifest: language tag -> absolute dictionary path.
type Source struct {
	Path     string
	Spellers map[string]string
}

// Tags returns the manifest's tags in sorted order.
func (s Source) Tags() []string {
	out := make([]string, 0, len(s.Spellers))
	for tag := range s.Spellers {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

type fileManifest struct {
	Spellers map[string]string `toml:"spellers"`
}

// Discover returns every <root>/*/spellers.toml in sorted order.
func Discover(root string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(root, "*", FileName))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// Load parses one manifest. Entries with an empty tag or path, or whose file
// does not exist, are returned in skipped and left out of the Source.
func Load(path string) (Source, []error, error) {
	var raw fileManifest
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Source{}, nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, path, err)
	}
	if !meta.IsDefined("spellers") {
		return Source{}, nil, fmt.Errorf("%w: %s: missing [spellers] table", ErrInvalidManifest, path)
	}
	for _, key := range meta.Undecoded() {
		log.Warn().Str("manifest", path).Str("key", key.String()).Msg("manifest: ignoring unknown key")
	}

	dir := filepath.Dir(path)
	src := Source{Path: path, Spellers: make(map[string]string, len(raw.Spellers))}
	var skipped []error
	for tag, rel := range raw.Spellers {
		resolved, err := resolveEntry(dir, tag, rel)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		src.Spellers[strings.TrimSpace(tag)] = resolved
	}
	sort.Slice(skipped, func(i, j int) bool {
		return skipped[i].Error() < skipped[j].Error()
	})
	return src, skipped, nil
}

func resolveEntry(dir, tag, rel string) (string, error) {
	tag = strings.TrimSpace(tag)
	rel = strings.TrimSpace(rel)
	if tag == "" || rel == "" {
		return "", fmt.Errorf("%w: tag=%q path=%q", ErrInvalidEntry, tag, rel)
	}
	p := rel
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("%w: tag=%q: %v", ErrInvalidEntry, tag, err)
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: tag=%q path=%q", ErrMissingFile, tag, abs)
	}
	return abs, nil
}

// LoadAll discovers and loads every manifest under root. Malformed manifests
// and bad entries are logged and skipped; only a failed discovery is an error.
func LoadAll(root string) ([]Source, error) {
	paths, err := Discover(root)
	if err != nil {
		return nil, err
	}
	log.Info().Str("dir", root).Int("manifests", len(paths)).Msg("manifest: discovered")
	if len(paths) == 0 {
		log.Warn().Str("dir", root).Msg("manifest: no " + FileName + " found")
	}

	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		src, skipped, err := Load(path)
		if err != nil {
			log.Error().Err(err).Str("manifest", path).Msg("manifest: skipping")
			continue
		}
		for _, e := range skipped {
			log.Error().Err(e).Str("manifest", path).Msg("manifest: skipping entry")
		}
		sources = append(sources, src)
	}
	return sources, nil
}
