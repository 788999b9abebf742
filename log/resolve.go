package log

import (
	"log/slog"
	"strings"

	"golang.org/x/exp/slices"
)

// FactoryKey is the configuration key used to select a factory by identifier when more than one is registered.
const FactoryKey = "CB_LOG_FACTORY"

// Resolve selects the handle to bind given the discovered candidates and the (possibly empty) override.
//
// When an override is given the candidate with exactly that identifier is chosen. Without one, a single candidate is
// chosen automatically. Every other case, a missing override target, no candidates or more than one candidate, binds
// 'NopHandle'. Resolve never fails; the outcome is reported to the given diagnostics logger, or 'slog.Default' if nil,
// with enough detail to fix the configuration.
func Resolve(candidates []Handle, override string, diagnostics *slog.Logger) Handle {
	if diagnostics == nil {
		diagnostics = slog.Default()
	}

	if override = strings.TrimSpace(override); override != "" {
		return resolveOverride(candidates, override, diagnostics)
	}

	switch len(candidates) {
	case 0:
		diagnostics.Warn("no logger factory discovered, falling back to no-op logging", "key", FactoryKey)
		return NopHandle
	case 1:
		diagnostics.Info("provisioned logger factory discovered", "key", FactoryKey, "bound", candidates[0].ID)
		return candidates[0]
	}

	diagnostics.Error(
		"configuration error: expected one provisioned logger factory, falling back to no-op logging",
		"key", FactoryKey,
		"count", len(candidates),
		"candidates", identifiers(candidates),
		"remedy", "set "+FactoryKey+" to the identifier of the intended factory",
	)

	return NopHandle
}

func resolveOverride(candidates []Handle, override string, diagnostics *slog.Logger) Handle {
	idx := slices.IndexFunc(candidates, func(h Handle) bool { return h.ID == override })
	if idx != -1 {
		diagnostics.Info("intended logger factory discovered", "key", FactoryKey, "bound", candidates[idx].ID)
		return candidates[idx]
	}

	diagnostics.Error(
		"intended logger factory not found in discovered factories, falling back to no-op logging",
		"key", FactoryKey,
		"override", override,
		"candidates", identifiers(candidates),
	)

	return NopHandle
}

func identifiers(handles []Handle) []string {
	ids := make([]string, 0, len(handles))
	for _, handle := range handles {
		ids = append(ids, handle.ID)
	}

	return ids
}
