package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mullermatej/food-tracker-mobile-app/internal/model"
	"github.com/mullermatej/food-tracker-mobile-app/internal/storage"
)

// SortMode selects the presentation order of the favourites list. The order
// is recomputed on demand, never stored.
type SortMode string

const (
	SortRecent SortMode = "recent"
	SortAlpha  SortMode = "alpha"
)

func ParseSortMode(value string) (SortMode, error) {
	switch SortMode(strings.TrimSpace(strings.ToLower(value))) {
	case SortRecent:
		return SortRecent, nil
	case SortAlpha:
		return SortAlpha, nil
	}
	return "", fmt.Errorf("invalid sort mode %q, expected recent or alpha", value)
}

var defaultFavourites = []model.FavouriteItem{
	{ID: 1, Name: "Banana", Calories: 100, Protein: 2},
	{ID: 2, Name: "Greek Yogurt", Calories: 150, Protein: 15},
	{ID: 3, Name: "Chicken Breast", Calories: 200, Protein: 30},
	{ID: 4, Name: "Oatmeal", Calories: 300, Protein: 10},
}

// Favourites is the persisted list of reusable food presets. The first load
// that finds nothing persisted seeds the default set and persists it
// immediately, so subsequent launches read from storage.
type Favourites struct {
	kv  storage.KV
	log *zap.Logger

	mu     sync.Mutex
	loaded bool
	items  []model.FavouriteItem
}

func NewFavourites(kv storage.KV, log *zap.Logger) *Favourites {
	return &Favourites{kv: kv, log: log}
}

// Items returns a sorted copy of the list.
func (f *Favourites) Items(mode SortMode) []model.FavouriteItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensureLoadedLocked()

	items := append([]model.FavouriteItem(nil), f.items...)
	switch mode {
	case SortAlpha:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].ID > items[j].ID
		})
	}
	return items
}

// Add validates and appends a new favourite, assigning the next id above the
// current maximum (1 for an empty list).
func (f *Favourites) Add(name string, calories int, protein float64) (model.FavouriteItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.FavouriteItem{}, fmt.Errorf("favourite name is required")
	}
	if calories < 0 {
		return model.FavouriteItem{}, fmt.Errorf("calories must be >= 0")
	}
	if protein < 0 {
		return model.FavouriteItem{}, fmt.Errorf("protein must be >= 0")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensureLoadedLocked()

	maxID := 0
	for _, it := range f.items {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	item := model.FavouriteItem{ID: maxID + 1, Name: name, Calories: calories, Protein: protein}
	f.items = append(f.items, item)
	f.persistLocked()
	return item, nil
}

// Remove deletes the favourite with the given id.
func (f *Favourites) Remove(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensureLoadedLocked()

	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			f.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("favourite %d not found", id)
}

// Resolve finds a favourite by numeric id or case-insensitive name.
func (f *Favourites) Resolve(identifier string) (model.FavouriteItem, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return model.FavouriteItem{}, fmt.Errorf("favourite id or name is required")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensureLoadedLocked()

	if id, err := strconv.Atoi(identifier); err == nil {
		for _, it := range f.items {
			if it.ID == id {
				return it, nil
			}
		}
	}
	lowered := strings.ToLower(identifier)
	for _, it := range f.items {
		if strings.ToLower(it.Name) == lowered {
			return it, nil
		}
	}
	return model.FavouriteItem{}, fmt.Errorf("favourite %q not found", identifier)
}

func (f *Favourites) ensureLoadedLocked() {
	if f.loaded {
		return
	}
	f.loaded = true

	var stored []model.FavouriteItem
	found, err := f.kv.Load(storage.KeyFavourites, &stored)
	if err != nil {
		f.log.Warn("load favourites, seeding defaults", zap.Error(err))
		found = false
	}
	if found && stored != nil {
		f.items = stored
		return
	}
	f.items = append([]model.FavouriteItem(nil), defaultFavourites...)
	f.persistLocked()
}

func (f *Favourites) persistLocked() {
	if err := f.kv.Save(storage.KeyFavourites, f.items); err != nil {
		f.log.Warn("persist favourites", zap.Error(err))
	}
}
