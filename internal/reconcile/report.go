package reconcile

import (
	"github.com/danmuck/spellctl/internal/office"
	"github.com/danmuck/spellctl/internal/spellers"
	"github.com/rs/zerolog/log"
)

// Stats counts what one Apply wrote.
type Stats struct {
	Created int
	Deleted int
	Count   uint32
}

// RootResult is the outcome for one root.
type RootResult struct {
	Root  office.TargetRoot
	Stats Stats
	Err   error
}

// Report collects per-root outcomes of ApplyAll.
type Report struct {
	Results []RootResult
}

func (r Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

func (r Report) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// ApplyAll applies langs to every root. A failing root is logged and recorded
// and does not stop the others.
func (e *Engine) ApplyAll(langs spellers.Langs, roots []office.TargetRoot) Report {
	report := Report{Results: make([]RootResult, 0, len(roots))}
	for _, root := range roots {
		stats, err := e.Apply(langs, root)
		if err != nil {
			log.Error().Err(err).Str("root", root.Path).Msg("reconcile: root failed")
		} else {
			log.Info().
				Str("root", root.Path).
				Int("created", stats.Created).
				Int("deleted", stats.Deleted).
				Uint32("count", stats.Count).
				Msg("reconcile: refreshed root")
		}
		report.Results = append(report.Results, RootResult{Root: root, Stats: stats, Err: err})
	}
	return report
}
