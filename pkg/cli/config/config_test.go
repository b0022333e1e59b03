package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
)

func TestRulesConfigure(t *testing.T) {
	t.Run("no override keeps defaults", func(t *testing.T) {
		var r Rules
		cfg, err := r.Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, cfg.MinDurationWeeks).Equal(4)
		gt.Value(t, cfg.MinVisits).Equal(2)
	})

	t.Run("partial overlay merges onto defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.toml")
		overlay := []byte("min_duration_weeks = 24\nmin_visits = 3\n\n[min_sample_size_by_phase]\n\"Phase 2\" = 60\n")
		gt.NoError(t, os.WriteFile(path, overlay, 0600)).Required()

		r := Rules{path: path}
		cfg, err := r.Configure()
		gt.NoError(t, err).Required()

		gt.Value(t, cfg.MinDurationWeeks).Equal(24)
		gt.Value(t, cfg.MinVisits).Equal(3)
		gt.Value(t, cfg.MinSampleSizeByPhase["Phase 2"]).Equal(60)

		// Untouched thresholds keep their shipped values.
		gt.Value(t, cfg.MinSampleSizeByPhase["Phase 3"]).Equal(100)
		gt.Value(t, cfg.MinPrimaryEndpoints).Equal(1)
		gt.Bool(t, cfg.RequireBaselineVisit).True()
	})

	t.Run("missing file", func(t *testing.T) {
		r := Rules{path: filepath.Join(t.TempDir(), "absent.toml")}
		_, err := r.Configure()
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, ErrConfigNotFound)).True()
	})

	t.Run("malformed TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.toml")
		gt.NoError(t, os.WriteFile(path, []byte("min_visits = [broken"), 0600)).Required()

		r := Rules{path: path}
		_, err := r.Configure()
		gt.Error(t, err)
	})
}

func TestGenerationConfigure(t *testing.T) {
	t.Run("zero flags keep defaults", func(t *testing.T) {
		var g Generation
		cfg := g.Configure()

		gt.Bool(t, cfg.UseRetrieval).True()
		gt.Bool(t, cfg.UseGeneration).True()
		gt.Value(t, cfg.TopK).Equal(3)
		gt.Value(t, cfg.ContextLimit).Equal(3)
		gt.Value(t, cfg.Concurrency).Equal(4)
		gt.Value(t, cfg.Timeout).Equal(60 * time.Second)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		g := Generation{
			noRetrieval:  true,
			noGeneration: true,
			topK:         5,
			contextLimit: 2,
			concurrency:  1,
			timeout:      10 * time.Second,
		}
		cfg := g.Configure()

		gt.Bool(t, cfg.UseRetrieval).False()
		gt.Bool(t, cfg.UseGeneration).False()
		gt.Value(t, cfg.TopK).Equal(5)
		gt.Value(t, cfg.ContextLimit).Equal(2)
		gt.Value(t, cfg.Concurrency).Equal(1)
		gt.Value(t, cfg.Timeout).Equal(10 * time.Second)
	})
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("writes to a log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		l := Logger{level: "info", format: "json", output: path}

		closer, err := l.Configure()
		gt.NoError(t, err).Required()
		closer()

		_, err = os.Stat(path)
		gt.NoError(t, err)
	})

	t.Run("unknown level", func(t *testing.T) {
		l := Logger{level: "verbose", format: "console", output: "stdout"}
		_, err := l.Configure()
		gt.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		l := Logger{level: "info", format: "xml", output: "stdout"}
		_, err := l.Configure()
		gt.Error(t, err)
	})
}
