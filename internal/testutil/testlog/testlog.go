package testlog

import (
	"testing"

	"github.com/danmuck/spellctl/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Start routes the global logger into t.Log for the duration of the test.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()

	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:          zerolog.NewTestWriter(t),
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	log.Info().Msgf("test=%s", t.Name())
}
