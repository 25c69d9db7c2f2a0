// Package storage is the persistence boundary shared by all stores: an
// asynchronous-friendly key-value interface whose values are JSON-serialized
// records. The persisted key names are stable across app versions.
package storage

// Persisted key names. Renaming any of these orphans existing user data.
const (
	KeyNutritionData    = "nutritionData"
	KeyNutritionHistory = "nutritionHistory"
	KeyFavourites       = "favourites"
	KeyThemePreference  = "theme_preference"
	KeyFoodNotes        = "foodNotes"
)

// KV persists arbitrary JSON-serializable values under string keys. Load
// reports presence explicitly so an absent key is never confused with a
// legitimately zero-valued record.
type KV interface {
	Save(key string, value any) error
	Load(key string, dest any) (bool, error)
}
