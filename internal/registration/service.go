package registration

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/danmuck/spellctl/internal/langkeys"
	"github.com/danmuck/spellctl/internal/manifest"
	"github.com/danmuck/spellctl/internal/observability"
	"github.com/danmuck/spellctl/internal/office"
	"github.com/danmuck/spellctl/internal/reconcile"
	"github.com/danmuck/spellctl/internal/spellers"
	"github.com/rs/zerolog/log"
)

var ErrInvalidPath = errors.New("registration: invalid dictionary path")

// Locator lists the settings roots to reconcile.
type Locator interface {
	Locate() ([]office.TargetRoot, error)
}

type Config struct {
	Deriver *langkeys.Deriver
	Central *spellers.Central
	Locator Locator
	Engine  *reconcile.Engine

	// MetricsTextfile, when set, receives the metrics after every refresh.
	MetricsTextfile string
}

type Service struct {
	deriver     *langkeys.Deriver
	central     *spellers.Central
	locator     Locator
	engine      *reconcile.Engine
	metricsPath string
}

func New(cfg Config) *Service {
	deriver := cfg.Deriver
	if deriver == nil {
		deriver = langkeys.New()
	}
	return &Service{
		deriver:     deriver,
		central:     cfg.Central,
		locator:     cfg.Locator,
		engine:      cfg.Engine,
		metricsPath: strings.TrimSpace(cfg.MetricsTextfile),
	}
}

// Summary describes one cycle.
type Summary struct {
	Deregistered int
	Registered   []string
	Skipped      []SkippedTag
	Roots        int
	Report       reconcile.Report
}

// SkippedTag is a source tag that could not be registered.
type SkippedTag struct {
	Source string
	Tag    string
	Err    error
}

// Sync replaces the central registrations with exactly what sources declare
// and refreshes every root. Tags that fail to parse or derive are skipped,
// which leaves them deregistered. Without any source nothing is touched.
func (s *Service) Sync(sources []manifest.Source) (Summary, error) {
	var summary Summary
	if len(sources) == 0 {
		log.Warn().Msg("registration: no speller manifests found, leaving registrations unchanged")
		return summary, nil
	}
	n, err := s.central.DeregisterAll()
	if err != nil {
		return summary, err
	}
	summary.Deregistered = n
	log.Info().Int("count", n).Msg("registration: cleared existing registrations")

	ordered := append([]manifest.Source(nil), sources...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Path < ordered[j].Path
	})
	registered := make(map[string]string)
	for _, src := range ordered {
		for _, tag := range src.Tags() {
			keys, err := s.deriver.DeriveString(tag)
			if err != nil {
				log.Error().Err(err).Str("manifest", src.Path).Str("tag", tag).Msg("registration: skipping tag")
				summary.Skipped = append(summary.Skipped, SkippedTag{Source: src.Path, Tag: tag, Err: err})
				observability.RecordTag(false)
				continue
			}
			path := src.Spellers[tag]
			for _, key := range keys {
				if prev, ok := registered[key]; ok && prev != path {
					log.Warn().
						Str("key", key).
						Str("previous", prev).
						Str("path", path).
						Str("manifest", src.Path).
						Msg("registration: key re-pointed to another dictionary")
				}
				registered[key] = path
			}
			if err := s.central.Register(keys, path); err != nil {
				return summary, err
			}
			observability.RecordTag(true)
		}
	}
	summary.Registered = make([]string, 0, len(registered))
	for key := range registered {
		summary.Registered = append(summary.Registered, key)
	}
	sort.Strings(summary.Registered)

	roots, report, err := s.refresh()
	summary.Roots = roots
	summary.Report = report
	return summary, err
}

// Register adds tag's key set pointing at path and refreshes every root.
func (s *Service) Register(tag, path string) ([]string, error) {
	keys, err := s.deriver.DeriveString(tag)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path for tag %q", ErrInvalidPath, tag)
	}
	abs, err := filepath.Abs(strings.TrimSpace(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if err := s.central.Register(keys, abs); err != nil {
		return nil, err
	}
	if _, _, err := s.refresh(); err != nil {
		return keys, err
	}
	return keys, nil
}

// Deregister tombstones tag's key set and refreshes every root.
func (s *Service) Deregister(tag string) ([]string, error) {
	keys, err := s.deriver.DeriveString(tag)
	if err != nil {
		return nil, err
	}
	if err := s.central.Deregister(keys); err != nil {
		return nil, err
	}
	if _, _, err := s.refresh(); err != nil {
		return keys, err
	}
	return keys, nil
}

// Refresh writes the current central state into every located root.
func (s *Service) Refresh() (reconcile.Report, error) {
	_, report, err := s.refresh()
	return report, err
}

// Nuke deregisters everything and refreshes, leaving every root with
// tombstones only.
func (s *Service) Nuke() (int, reconcile.Report, error) {
	n, err := s.central.DeregisterAll()
	if err != nil {
		return 0, reconcile.Report{}, err
	}
	_, report, err := s.refresh()
	return n, report, err
}

func (s *Service) List() ([]spellers.Entry, error) {
	return s.central.Entries()
}

func (s *Service) refresh() (int, reconcile.Report, error) {
	langs, err := s.central.Load()
	if err != nil {
		return 0, reconcile.Report{}, err
	}
	log.Debug().
		Int("create", len(langs.Create)).
		Int("delete", len(langs.Delete)).
		Msg("registration: loaded desired state")

	roots, err := s.locator.Locate()
	if err != nil {
		log.Error().Err(err).Msg("registration: unable to locate settings roots")
		roots = nil
	}
	if len(roots) == 0 {
		log.Warn().Msg("registration: no Office installation found, nothing to refresh")
		s.writeMetrics()
		return 0, reconcile.Report{}, nil
	}

	report := s.engine.ApplyAll(langs, roots)
	for _, res := range report.Results {
		observability.RecordRoot(res.Stats.Created, res.Stats.Deleted, res.Stats.Count, res.Err)
	}
	log.Info().
		Int("roots", len(roots)).
		Int("ok", report.Succeeded()).
		Int("failed", report.Failed()).
		Msg("registration: refresh complete")
	s.writeMetrics()
	return len(roots), report, nil
}

func (s *Service) writeMetrics() {
	if s.metricsPath == "" {
		return
	}
	if err := observability.WriteTextfile(s.metricsPath); err != nil {
		log.Warn().Err(err).Str("path", s.metricsPath).Msg("registration: unable to write metrics")
	}
}
