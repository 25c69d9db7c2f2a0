// Package store holds the stateful data stores of the app: the day-keyed
// nutrition ledger, the append-only history log, the favourites list, and
// the small note/theme preferences. Each store owns its in-memory snapshot
// exclusively and treats the persisted copy as the durable source of truth
// the snapshot converges to.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mullermatej/food-tracker-mobile-app/internal/dateutil"
	"github.com/mullermatej/food-tracker-mobile-app/internal/model"
	"github.com/mullermatej/food-tracker-mobile-app/internal/storage"
)

// RecordUpdate is a field-partial update of a DailyRecord. Nil fields are
// left untouched by the merge.
type RecordUpdate struct {
	Calories *int
	Protein  *float64
	Creatine *bool
	FishOil  *bool
}

func (u RecordUpdate) applyTo(rec model.DailyRecord) model.DailyRecord {
	if u.Calories != nil {
		rec.Calories = *u.Calories
	}
	if u.Protein != nil {
		rec.Protein = *u.Protein
	}
	if u.Creatine != nil {
		rec.Creatine = *u.Creatine
	}
	if u.FishOil != nil {
		rec.FishOil = *u.FishOil
	}
	return rec
}

type pendingUpdate struct {
	dateKey string
	update  RecordUpdate
}

// Ledger maintains the authoritative date-key -> DailyRecord mapping.
//
// Construction starts an asynchronous load of the persisted mapping. Until
// the load resolves the ledger accepts reads (served from the optimistic
// in-memory mapping) and writes (applied optimistically and queued). When
// the load resolves, the queued updates are replayed in call order on top
// of the freshly loaded base, the result becomes the mapping, and one
// combined write is scheduled. Writes issued before the load completes are
// therefore never lost nor clobbered by it.
//
// Durable writes never block callers and their failures are logged, not
// surfaced: the in-memory mapping stays correct for the session either way.
type Ledger struct {
	kv  storage.KV
	log *zap.Logger

	mu      sync.Mutex
	loaded  bool
	closed  bool
	data    map[string]model.DailyRecord
	pending []pendingUpdate
	subs    map[int]func(dateKey string, rec model.DailyRecord)
	nextSub int

	loadedCh chan struct{}
	saveReq  chan struct{}
	writerWG sync.WaitGroup
}

func NewLedger(kv storage.KV, log *zap.Logger) *Ledger {
	l := &Ledger{
		kv:       kv,
		log:      log,
		data:     make(map[string]model.DailyRecord),
		subs:     make(map[int]func(string, model.DailyRecord)),
		loadedCh: make(chan struct{}),
		saveReq:  make(chan struct{}, 1),
	}
	l.writerWG.Add(1)
	go l.runWriter()
	go l.load()
	return l
}

func (l *Ledger) load() {
	var stored map[string]model.DailyRecord
	found, err := l.kv.Load(storage.KeyNutritionData, &stored)
	if err != nil {
		l.log.Warn("load nutrition data, proceeding with empty mapping", zap.Error(err))
		found = false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	base := make(map[string]model.DailyRecord)
	if found {
		for key, rec := range stored {
			base[key] = rec
		}
	}
	for _, p := range l.pending {
		base[p.dateKey] = p.update.applyTo(base[p.dateKey])
	}
	replayed := len(l.pending) > 0
	l.data = base
	l.pending = nil
	l.loaded = true
	if replayed {
		l.scheduleSaveLocked()
	}
	close(l.loadedCh)
}

// WaitLoaded blocks until the initial load has resolved or ctx is done.
func (l *Ledger) WaitLoaded(ctx context.Context) error {
	select {
	case <-l.loadedCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TodayData returns today's record, the zero record if the day was never
// written. Pure read of the in-memory mapping in any state.
func (l *Ledger) TodayData() model.DailyRecord {
	return l.DataForDate(time.Now())
}

// DataForDate returns the record for an arbitrary date, the zero record if
// absent.
func (l *Ledger) DataForDate(date time.Time) model.DailyRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	if rec, ok := l.data[dateutil.Key(date)]; ok {
		return rec
	}
	return model.DailyRecord{}
}

// Snapshot returns a copy of the full mapping.
func (l *Ledger) Snapshot() map[string]model.DailyRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap := make(map[string]model.DailyRecord, len(l.data))
	for key, rec := range l.data {
		snap[key] = rec
	}
	return snap
}

// UpdateTodayData merges u into today's record.
func (l *Ledger) UpdateTodayData(u RecordUpdate) model.DailyRecord {
	return l.UpdateDataForDate(time.Now(), u)
}

// UpdateDataForDate merges u into the record for the given date. The
// in-memory effect is synchronous; the durable write is fire-and-forget.
func (l *Ledger) UpdateDataForDate(date time.Time, u RecordUpdate) model.DailyRecord {
	dateKey := dateutil.Key(date)

	l.mu.Lock()
	rec := u.applyTo(l.data[dateKey])
	l.data[dateKey] = rec
	if !l.loaded {
		l.pending = append(l.pending, pendingUpdate{dateKey: dateKey, update: u})
	} else {
		l.scheduleSaveLocked()
	}
	subs := make([]func(string, model.DailyRecord), 0, len(l.subs))
	for _, fn := range l.subs {
		subs = append(subs, fn)
	}
	l.mu.Unlock()

	for _, fn := range subs {
		fn(dateKey, rec)
	}
	return rec
}

// ResetDay sets every field of the date's record back to its default. The
// date-key entry itself persists.
func (l *Ledger) ResetDay(date time.Time) model.DailyRecord {
	return l.UpdateDataForDate(date, RecordUpdate{
		Calories: model.IntPtr(0),
		Protein:  model.FloatPtr(0),
		Creatine: model.BoolPtr(false),
		FishOil:  model.BoolPtr(false),
	})
}

// Subscribe registers fn to run after every applied update, with the
// date-key and the resulting record. The returned function unsubscribes.
func (l *Ledger) Subscribe(fn func(dateKey string, rec model.DailyRecord)) func() {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
}

// Close stops the writer after it drains any scheduled save. Updates applied
// after Close keep their in-memory effect but are no longer persisted.
func (l *Ledger) Close() {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.saveReq)
	}
	l.mu.Unlock()
	l.writerWG.Wait()
}

func (l *Ledger) scheduleSaveLocked() {
	if l.closed {
		return
	}
	select {
	case l.saveReq <- struct{}{}:
	default:
	}
}

// runWriter is the single persistence writer. Each signal persists the
// snapshot taken at dequeue time, so the disk copy always converges to the
// latest in-memory mapping and full-snapshot writes are never reordered.
func (l *Ledger) runWriter() {
	defer l.writerWG.Done()
	for range l.saveReq {
		snap := l.Snapshot()
		if err := l.kv.Save(storage.KeyNutritionData, snap); err != nil {
			l.log.Warn("persist nutrition data", zap.Error(err))
		}
	}
}
