package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/templui/studytracker/internal/model"
)

func TestMemoryGetSet(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if err := kv.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := kv.Get(ctx, "k")
	if err != nil || string(got) != "v2" {
		t.Fatalf("get: %q %v", got, err)
	}
	// returned slices must not alias stored state
	got[0] = 'x'
	again, _ := kv.Get(ctx, "k")
	if string(again) != "v2" {
		t.Fatalf("stored value was mutated through returned slice: %q", again)
	}
	if err := kv.Set(ctx, "", []byte("x")); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestFileGetSet(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFile(filepath.Join(dir, "nested"))
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	ctx := context.Background()

	if _, err := kv.Get(ctx, SubjectsKey); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if err := kv.Set(ctx, SubjectsKey, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "nested", "subjects.json")); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
	got, err := kv.Get(ctx, SubjectsKey)
	if err != nil || string(got) != "[]" {
		t.Fatalf("get: %q %v", got, err)
	}

	for _, bad := range []string{"", "../escape", "a/b", " "} {
		if err := kv.Set(ctx, bad, []byte("x")); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey for %q, got %v", bad, err)
		}
	}
}

func TestSQLiteGetSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.db")
	ctx := context.Background()

	kv, err := Open(ctx, Options{Driver: DriverSQLite, DBConnection: path})
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	defer func() { _ = kv.Close() }()

	if kv.Driver() != DriverSQLite {
		t.Fatalf("unexpected driver %s", kv.Driver())
	}
	if _, err := kv.Get(ctx, SubjectsKey); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if err := kv.Set(ctx, SubjectsKey, []byte(`[1]`)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := kv.Set(ctx, SubjectsKey, []byte(`[2]`)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := kv.Get(ctx, SubjectsKey)
	if err != nil || string(got) != "[2]" {
		t.Fatalf("get: %q %v", got, err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), Options{Driver: "floppy"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestOpenDefaultsToFile(t *testing.T) {
	kv, err := Open(context.Background(), Options{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if kv.Driver() != DriverFile {
		t.Fatalf("expected file driver, got %s", kv.Driver())
	}
}

func TestRecordStoreEmpty(t *testing.T) {
	rs := NewRecordStore(NewMemory())
	subjects, err := rs.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if subjects == nil || len(subjects) != 0 {
		t.Fatalf("expected empty non-nil collection, got %#v", subjects)
	}
}

func TestRecordStoreRoundTrip(t *testing.T) {
	kv := NewMemory()
	rs := NewRecordStore(kv)
	ctx := context.Background()

	in := []model.Subject{
		{Subject: "Math", Goal: 10, HoursStudied: 4},
		{Subject: "Art", Goal: 2.5, HoursStudied: 0},
	}
	if err := rs.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := kv.Get(ctx, SubjectsKey)
	want := `[{"subject":"Math","goal":10,"hoursStudied":4},{"subject":"Art","goal":2.5,"hoursStudied":0}]`
	if string(raw) != want {
		t.Fatalf("persisted format changed:\n got %s\nwant %s", raw, want)
	}

	loaded, err := rs.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := rs.Save(ctx, loaded); err != nil {
		t.Fatalf("save loaded: %v", err)
	}
	raw2, _ := kv.Get(ctx, SubjectsKey)
	if string(raw2) != string(raw) {
		t.Fatalf("save(load()) changed the stored value: %s", raw2)
	}
	if len(loaded) != len(in) {
		t.Fatalf("record count changed: %d", len(loaded))
	}
	for i := range in {
		if loaded[i] != in[i] {
			t.Fatalf("record %d changed: %+v", i, loaded[i])
		}
	}
}

func TestRecordStoreSaveNil(t *testing.T) {
	kv := NewMemory()
	if err := NewRecordStore(kv).Save(context.Background(), nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := kv.Get(context.Background(), SubjectsKey)
	if string(raw) != "[]" {
		t.Fatalf("expected [], got %s", raw)
	}
}

func TestRecordStoreCorrupt(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	_ = kv.Set(ctx, SubjectsKey, []byte(`{not json`))

	subjects, err := NewRecordStore(kv).Load(ctx)
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
	if subjects == nil || len(subjects) != 0 {
		t.Fatalf("expected empty fallback collection, got %#v", subjects)
	}
}

func TestRecordStoreNonFiniteHours(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	_ = kv.Set(ctx, SubjectsKey, []byte(`[{"subject":"Math","goal":"NaN","hoursStudied":0}]`))

	records := NewRecordStore(kv)
	subjects, err := records.Load(ctx)
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
	if len(subjects) != 0 {
		t.Fatalf("expected empty fallback collection, got %#v", subjects)
	}

	err = records.Save(ctx, append(subjects, model.Subject{Subject: "Art", Goal: 10}))
	if err != nil {
		t.Fatalf("save after corrupt load: %v", err)
	}
}

func TestRecordStoreNullValue(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	_ = kv.Set(ctx, SubjectsKey, []byte(`null`))

	subjects, err := NewRecordStore(kv).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if subjects == nil || len(subjects) != 0 {
		t.Fatalf("expected empty collection, got %#v", subjects)
	}
}

func TestPreferenceStore(t *testing.T) {
	kv := NewMemory()
	ps := NewPreferenceStore(kv)
	ctx := context.Background()

	p, err := ps.Load(ctx)
	if err != nil || p.DarkMode {
		t.Fatalf("expected light mode by default, got %+v %v", p, err)
	}
	if err := ps.Save(ctx, model.Preferences{DarkMode: true}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := kv.Get(ctx, DarkModeKey)
	if string(raw) != "enabled" {
		t.Fatalf("expected enabled, got %s", raw)
	}
	p, _ = ps.Load(ctx)
	if !p.DarkMode {
		t.Fatalf("expected dark mode")
	}
	_ = ps.Save(ctx, model.Preferences{})
	raw, _ = kv.Get(ctx, DarkModeKey)
	if string(raw) != "disabled" {
		t.Fatalf("expected disabled, got %s", raw)
	}
}
