package foodtrack

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mullermatej/food-tracker-mobile-app/internal/app"
	"github.com/mullermatej/food-tracker-mobile-app/internal/db"
	"github.com/mullermatej/food-tracker-mobile-app/internal/storage"
	"github.com/mullermatej/food-tracker-mobile-app/internal/store"
)

// env bundles the stores a command works against. Each store is constructed
// once per invocation, near the root, and shared by reference.
type env struct {
	kv      *storage.SQLiteKV
	ledger  *store.Ledger
	history *store.HistoryLog
	favs    *store.Favourites
	notes   *store.Notes
	theme   *store.Theme
}

func resolveDBPath() (string, error) {
	if strings.TrimSpace(dbPath) != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

// withKV opens and migrates the database and hands the raw key-value layer
// to run. Admin commands use this directly, bypassing the store caches.
func withKV(run func(kv *storage.SQLiteKV) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(storage.NewSQLiteKV(sqldb))
}

// withStores builds the full store set, waits for the ledger's initial load,
// runs the command, and drains pending writes before the process exits.
func withStores(run func(e *env) error) error {
	return withKV(func(kv *storage.SQLiteKV) error {
		logger := newLogger()
		ledger := store.NewLedger(kv, logger)
		defer ledger.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := ledger.WaitLoaded(ctx); err != nil {
			return fmt.Errorf("load nutrition data: %w", err)
		}

		return run(&env{
			kv:      kv,
			ledger:  ledger,
			history: store.NewHistoryLog(kv, logger),
			favs:    store.NewFavourites(kv, logger),
			notes:   store.NewNotes(kv, logger),
			theme:   store.NewTheme(kv, logger),
		})
	})
}

func parseIntArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func parseDateOrToday(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", value)
	}
	return t, nil
}
