package store

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mullermatej/food-tracker-mobile-app/internal/dateutil"
	"github.com/mullermatej/food-tracker-mobile-app/internal/model"
	"github.com/mullermatej/food-tracker-mobile-app/internal/storage"
)

// Notes holds the single food note for the current day. A note left over
// from a previous day is cleared the first time it is read.
type Notes struct {
	kv  storage.KV
	log *zap.Logger
}

func NewNotes(kv storage.KV, log *zap.Logger) *Notes {
	return &Notes{kv: kv, log: log}
}

// Today returns today's note, clearing and discarding a stale one.
func (n *Notes) Today() (model.FoodNote, bool) {
	var note model.FoodNote
	found, err := n.kv.Load(storage.KeyFoodNotes, &note)
	if err != nil {
		n.log.Warn("load food note", zap.Error(err))
		return model.FoodNote{}, false
	}
	if !found || strings.TrimSpace(note.Text) == "" {
		return model.FoodNote{}, false
	}
	if note.DateKey != dateutil.TodayKey() {
		n.Clear()
		return model.FoodNote{}, false
	}
	return note, true
}

// Set replaces today's note.
func (n *Notes) Set(text string) model.FoodNote {
	now := time.Now()
	note := model.FoodNote{
		Text:        strings.TrimSpace(text),
		DateKey:     dateutil.Key(now),
		DisplayDate: dateutil.DisplayDate(now),
	}
	if err := n.kv.Save(storage.KeyFoodNotes, note); err != nil {
		n.log.Warn("persist food note", zap.Error(err))
	}
	return note
}

// Clear removes the note.
func (n *Notes) Clear() {
	if err := n.kv.Save(storage.KeyFoodNotes, model.FoodNote{}); err != nil {
		n.log.Warn("clear food note", zap.Error(err))
	}
}
