package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/ytget/swipetodo/internal/model"
)

var errNullTasks = errors.New("saved tasks are null")

// PreferencesStorage keeps the task list as JSON in one Fyne preferences key
type PreferencesStorage struct {
	prefs fyne.Preferences
	key   string
}

// NewPreferencesStorage creates a storage bound to the given preferences key
func NewPreferencesStorage(prefs fyne.Preferences, key string) *PreferencesStorage {
	return &PreferencesStorage{prefs: prefs, key: key}
}

// Load reads the saved list. Both the record form and the legacy array of
// flag-prefixed strings are accepted.
func (s *PreferencesStorage) Load() ([]model.Task, error) {
	raw := s.prefs.String(s.key)
	if raw == "" {
		return nil, ErrNoData
	}
	return decodeTasks([]byte(raw))
}

// Save overwrites the slot with the full list
func (s *PreferencesStorage) Save(tasks []model.Task) error {
	data, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	s.prefs.SetString(s.key, string(data))
	return nil
}

func encodeTasks(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return data, nil
}

func decodeTasks(data []byte) ([]model.Task, error) {
	var records []*model.Task
	recordErr := json.Unmarshal(data, &records)
	if recordErr == nil {
		if records == nil {
			return nil, errNullTasks
		}
		tasks := make([]model.Task, 0, len(records))
		for i, record := range records {
			if record == nil {
				return nil, fmt.Errorf("decode task %d: %w", i, errNullTasks)
			}
			tasks = append(tasks, record.EnsureID())
		}
		return tasks, nil
	}

	var legacy []string
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", recordErr)
	}

	tasks := make([]model.Task, 0, len(legacy))
	for i, s := range legacy {
		task, err := model.ParseLegacy(s)
		if err != nil {
			return nil, fmt.Errorf("decode legacy task %d: %w", i, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
