package storage_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mullermatej/food-tracker-mobile-app/internal/db"
	"github.com/mullermatej/food-tracker-mobile-app/internal/model"
	"github.com/mullermatej/food-tracker-mobile-app/internal/storage"
)

func newTestKV(t *testing.T) *storage.SQLiteKV {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foodtrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return storage.NewSQLiteKV(sqldb)
}

func TestSQLiteKVRoundTripsNestedMappings(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	saved := map[string][]model.HistoryEntry{
		"2024-03-09": {{
			ID:        "2024-03-09T11:30:00.000Z",
			Type:      model.EntryFavourite,
			Timestamp: "2024-03-09T11:30:00.000Z",
			Data: model.EntryData{
				Calories: model.IntPtr(150),
				Protein:  model.FloatPtr(15),
				FoodName: "Greek Yogurt",
			},
		}},
	}
	if err := kv.Save(storage.KeyNutritionHistory, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	var loaded map[string][]model.HistoryEntry
	found, err := kv.Load(storage.KeyNutritionHistory, &loaded)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatalf("expected key present")
	}
	if !reflect.DeepEqual(saved, loaded) {
		t.Fatalf("expected lossless round trip, saved %+v loaded %+v", saved, loaded)
	}
}

func TestSQLiteKVMissingKey(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	var dest map[string]model.DailyRecord
	found, err := kv.Load(storage.KeyNutritionData, &dest)
	if err != nil {
		t.Fatalf("load missing key: %v", err)
	}
	if found {
		t.Fatalf("expected missing key reported as absent")
	}
}

func TestSQLiteKVOverwrite(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	if err := kv.Save(storage.KeyThemePreference, false); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := kv.Save(storage.KeyThemePreference, true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	var dark bool
	if _, err := kv.Load(storage.KeyThemePreference, &dark); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !dark {
		t.Fatalf("expected overwritten value")
	}
}

func TestSQLiteKVAdminSurface(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	if err := kv.Save(storage.KeyFavourites, []model.FavouriteItem{{ID: 1, Name: "Banana"}}); err != nil {
		t.Fatalf("save favourites: %v", err)
	}
	if err := kv.Save(storage.KeyThemePreference, true); err != nil {
		t.Fatalf("save theme: %v", err)
	}

	keys, err := kv.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != storage.KeyFavourites || keys[1] != storage.KeyThemePreference {
		t.Fatalf("expected sorted keys [favourites theme_preference], got %v", keys)
	}

	raw, found, err := kv.Raw(storage.KeyThemePreference)
	if err != nil {
		t.Fatalf("raw: %v", err)
	}
	if !found || raw != "true" {
		t.Fatalf("expected raw JSON \"true\", got found=%v raw=%q", found, raw)
	}

	if err := kv.Wipe(); err != nil {
		t.Fatalf("wipe: %v", err)
	}
	keys, err = kv.Keys()
	if err != nil {
		t.Fatalf("keys after wipe: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no keys after wipe, got %v", keys)
	}
}
