package model

// DailyRecord is one calendar day's cumulative nutrition state. The zero
// value is the record for a day that was never written.
type DailyRecord struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Creatine bool    `json:"creatine"`
	FishOil  bool    `json:"fishOil"`
}

type EntryType string

const (
	EntryCalories  EntryType = "calories"
	EntryProtein   EntryType = "protein"
	EntryFavourite EntryType = "favourite"
)

// EntryData is the variant payload of a history entry: calorie entries carry
// calories, protein entries carry protein, favourite entries carry all three.
type EntryData struct {
	Calories *int     `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	FoodName string   `json:"foodName,omitempty"`
}

// HistoryEntry is an immutable record of one manual addition. ID is the
// creation timestamp and doubles as the unique id within a bucket.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Type      EntryType `json:"type"`
	Timestamp string    `json:"timestamp"`
	Data      EntryData `json:"data"`
}

type FavouriteItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
}

// FoodNote is the single free-text note for the current day. DateKey is the
// day the note was written; a note read on a later day is stale.
type FoodNote struct {
	Text        string `json:"text"`
	DateKey     string `json:"dateKey"`
	DisplayDate string `json:"displayDate"`
}

func IntPtr(v int) *int           { return &v }
func FloatPtr(v float64) *float64 { return &v }
func BoolPtr(v bool) *bool        { return &v }
