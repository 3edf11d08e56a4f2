package main

import (
	"fmt"
	"log/slog"

	"github.com/specmark/amath/amath"
	"github.com/specmark/amath/amath/native"
	"github.com/specmark/amath/internal/config"
)

func newConverter(cfg *config.Config) (amath.Converter, error) {
	switch cfg.Backend {
	case config.BackendNative:
		conv, err := native.New()
		if err != nil {
			return nil, fmt.Errorf("backend %s: %w", cfg.Backend, err)
		}
		if cfg.Display == config.DisplayBlock {
			slog.Warn("display mode is ignored by the native backend")
		}
		slog.Debug("converter selected", "backend", cfg.Backend)
		return conv, nil
	default:
		opts := cfg.TranslatorOptions()
		slog.Debug("converter selected", "backend", cfg.Backend, "display", cfg.Display, "maxDepth", opts.MaxDepth, "maxInputBytes", opts.MaxInputBytes)
		return amath.New(opts), nil
	}
}

// describeFailure adds the translator's parse diagnostics to a conversion
// failure when the pure-Go backend is in use.
func describeFailure(conv amath.Converter, src string, err error) error {
	tr, ok := conv.(*amath.Translator)
	if !ok {
		return err
	}
	if _, detail := tr.Translate(src); detail != nil {
		return fmt.Errorf("%w\n%v", err, detail)
	}
	return err
}
