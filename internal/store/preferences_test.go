package store

import (
	"errors"
	"reflect"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/swipetodo/internal/model"
)

const testKey = "tasks"

func TestPreferencesStorage_EmptySlot(t *testing.T) {
	app := test.NewApp()
	storage := NewPreferencesStorage(app.Preferences(), testKey)

	_, err := storage.Load()
	if !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData for empty slot, got %v", err)
	}
}

func TestPreferencesStorage_RoundTrip(t *testing.T) {
	app := test.NewApp()
	storage := NewPreferencesStorage(app.Preferences(), testKey)

	tasks := []model.Task{
		model.NewTask("+leading plus"),
		model.NewTask("Call mom").Toggled(),
		model.NewTask(""),
	}

	if err := storage.Save(tasks); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := storage.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, tasks) {
		t.Errorf("Expected %v, got %v", tasks, loaded)
	}
}

func TestPreferencesStorage_SaveEmptyList(t *testing.T) {
	app := test.NewApp()
	storage := NewPreferencesStorage(app.Preferences(), testKey)

	if err := storage.Save(nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := storage.Load()
	if err != nil {
		t.Fatalf("Expected an empty saved list to load, got %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected no tasks, got %d", len(loaded))
	}
}

func TestPreferencesStorage_LegacyFormat(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(testKey, `["+Original","-Tasks"]`)
	storage := NewPreferencesStorage(app.Preferences(), testKey)

	loaded, err := storage.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := legacyOf(loaded); !reflect.DeepEqual(got, []string{"+Original", "-Tasks"}) {
		t.Errorf("Unexpected legacy decode: %v", got)
	}
	for _, task := range loaded {
		if task.ID == "" {
			t.Error("Expected legacy tasks to get row keys")
		}
	}
}

func TestPreferencesStorage_MissingIDsAssigned(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(testKey, `[{"done":true,"text":"Nap"}]`)
	storage := NewPreferencesStorage(app.Preferences(), testKey)

	loaded, err := storage.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID == "" || !loaded[0].Done || loaded[0].Text != "Nap" {
		t.Errorf("Unexpected decode: %+v", loaded)
	}
}

func TestPreferencesStorage_Malformed(t *testing.T) {
	tests := []string{
		`not json`,
		`{"text":"object"}`,
		`["no flag"]`,
		`[""]`,
		`null`,
		`[null]`,
		`[{"text":"A"},null]`,
	}

	for _, raw := range tests {
		app := test.NewApp()
		app.Preferences().SetString(testKey, raw)
		storage := NewPreferencesStorage(app.Preferences(), testKey)

		if _, err := storage.Load(); err == nil || errors.Is(err, ErrNoData) {
			t.Errorf("Load(%q) expected a parse error, got %v", raw, err)
		}
	}
}

func TestStore_FallsBackOnMalformedPreferences(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(testKey, `not json`)

	s := New(NewPreferencesStorage(app.Preferences(), testKey), nil)
	if got := legacyOf(s.Tasks()); !reflect.DeepEqual(got, []string{"+Original", "+Tasks"}) {
		t.Errorf("Expected seed list, got %v", got)
	}
}

func TestStore_FallsBackOnNullPreferences(t *testing.T) {
	for _, raw := range []string{`null`, `[null]`} {
		app := test.NewApp()
		app.Preferences().SetString(testKey, raw)

		s := New(NewPreferencesStorage(app.Preferences(), testKey), nil)
		if got := legacyOf(s.Tasks()); !reflect.DeepEqual(got, []string{"+Original", "+Tasks"}) {
			t.Errorf("Stored %s: expected seed list, got %v", raw, got)
		}
	}
}
