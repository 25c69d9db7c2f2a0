package store_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeKV is an in-memory storage.KV with a gate to hold the initial load
// open and switches to make save/load fail, so the async-load and
// degraded-storage paths can be driven deterministically.
type fakeKV struct {
	mu       sync.Mutex
	values   map[string]json.RawMessage
	saves    map[string]int
	loadGate chan struct{}
	failSave bool
	failLoad bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{
		values: make(map[string]json.RawMessage),
		saves:  make(map[string]int),
	}
}

// newGatedKV returns a KV whose Load calls block until release is called.
func newGatedKV() (kv *fakeKV, release func()) {
	kv = newFakeKV()
	kv.loadGate = make(chan struct{})
	var once sync.Once
	return kv, func() {
		once.Do(func() { close(kv.loadGate) })
	}
}

func (f *fakeKV) Save(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave {
		return fmt.Errorf("storage unavailable")
	}
	f.values[key] = encoded
	f.saves[key]++
	return nil
}

func (f *fakeKV) Load(key string, dest any) (bool, error) {
	if f.loadGate != nil {
		<-f.loadGate
	}
	f.mu.Lock()
	raw, ok := f.values[key]
	fail := f.failLoad
	f.mu.Unlock()
	if fail {
		return false, fmt.Errorf("storage unavailable")
	}
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeKV) set(t *testing.T, key string, value any) {
	t.Helper()
	encoded, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("encode fixture for key %q: %v", key, err)
	}
	f.mu.Lock()
	f.values[key] = encoded
	f.mu.Unlock()
}

func (f *fakeKV) get(t *testing.T, key string, dest any) bool {
	t.Helper()
	f.mu.Lock()
	raw, ok := f.values[key]
	f.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		t.Fatalf("decode persisted value for key %q: %v", key, err)
	}
	return true
}

func (f *fakeKV) saveCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves[key]
}

func (f *fakeKV) setFailSave(fail bool) {
	f.mu.Lock()
	f.failSave = fail
	f.mu.Unlock()
}

func waitLoadedT(t *testing.T, wait func(ctx context.Context) error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := wait(ctx); err != nil {
		t.Fatalf("wait for load: %v", err)
	}
}
