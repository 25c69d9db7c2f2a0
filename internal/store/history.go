package store

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mullermatej/food-tracker-mobile-app/internal/dateutil"
	"github.com/mullermatej/food-tracker-mobile-app/internal/model"
	"github.com/mullermatej/food-tracker-mobile-app/internal/storage"
)

// HistoryLog is the append-only, date-bucketed record of every manual
// addition. Appends are serialized by the store's mutex so back-to-back
// calls can never lose entries to a read-modify-write race, and every
// append persists the whole mapping. Persistence failures are logged; the
// in-memory copy then remains the only copy for the session.
type HistoryLog struct {
	kv  storage.KV
	log *zap.Logger

	mu      sync.Mutex
	loaded  bool
	entries map[string][]model.HistoryEntry
}

func NewHistoryLog(kv storage.KV, log *zap.Logger) *HistoryLog {
	return &HistoryLog{
		kv:      kv,
		log:     log,
		entries: make(map[string][]model.HistoryEntry),
	}
}

// AddEntry appends a timestamped entry to today's bucket and persists the
// full log. It never rejects: persistence failures are logged and the
// in-memory state stays authoritative.
func (h *HistoryLog) AddEntry(entryType model.EntryType, data model.EntryData) model.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ensureLoadedLocked()

	now := time.Now()
	timestamp := now.Format(time.RFC3339Nano)
	entry := model.HistoryEntry{
		ID:        timestamp,
		Type:      entryType,
		Timestamp: timestamp,
		Data:      data,
	}
	dateKey := dateutil.Key(now)
	h.entries[dateKey] = append(h.entries[dateKey], entry)
	h.persistLocked()
	return entry
}

// History returns the full date-key -> entries mapping.
func (h *HistoryLog) History() map[string][]model.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ensureLoadedLocked()

	out := make(map[string][]model.HistoryEntry, len(h.entries))
	for dateKey, bucket := range h.entries {
		out[dateKey] = append([]model.HistoryEntry(nil), bucket...)
	}
	return out
}

// EntriesForDate returns one bucket, empty if absent.
func (h *HistoryLog) EntriesForDate(date time.Time) []model.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ensureLoadedLocked()
	return append([]model.HistoryEntry(nil), h.entries[dateutil.Key(date)]...)
}

// ClearHistory replaces the entire log with an empty mapping. When to call
// it is the caller's policy; the log never clears itself.
func (h *HistoryLog) ClearHistory() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loaded = true
	h.entries = make(map[string][]model.HistoryEntry)
	h.persistLocked()
}

func (h *HistoryLog) ensureLoadedLocked() {
	if h.loaded {
		return
	}
	h.loaded = true
	var stored map[string][]model.HistoryEntry
	found, err := h.kv.Load(storage.KeyNutritionHistory, &stored)
	if err != nil {
		h.log.Warn("load nutrition history, proceeding with empty log", zap.Error(err))
		return
	}
	if found && stored != nil {
		h.entries = stored
	}
}

func (h *HistoryLog) persistLocked() {
	if err := h.kv.Save(storage.KeyNutritionHistory, h.entries); err != nil {
		h.log.Warn("persist nutrition history", zap.Error(err))
	}
}
