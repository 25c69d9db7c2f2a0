package store

import (
	"go.uber.org/zap"

	"github.com/mullermatej/food-tracker-mobile-app/internal/storage"
)

// Theme is the persisted dark-mode preference.
type Theme struct {
	kv  storage.KV
	log *zap.Logger
}

func NewTheme(kv storage.KV, log *zap.Logger) *Theme {
	return &Theme{kv: kv, log: log}
}

// Dark reports whether dark mode is enabled. Missing or unreadable
// preference defaults to light.
func (t *Theme) Dark() bool {
	var dark bool
	found, err := t.kv.Load(storage.KeyThemePreference, &dark)
	if err != nil {
		t.log.Warn("load theme preference", zap.Error(err))
		return false
	}
	return found && dark
}

// SetDark persists the preference.
func (t *Theme) SetDark(dark bool) {
	if err := t.kv.Save(storage.KeyThemePreference, dark); err != nil {
		t.log.Warn("persist theme preference", zap.Error(err))
	}
}
