package store

import (
	"errors"
	"log"
	"sync"

	"github.com/ytget/swipetodo/internal/model"
)

// Store holds the ordered task list. Index 0 is the newest task.
type Store struct {
	tasks       []model.Task
	tasksMutex  sync.RWMutex
	storage     Storage
	placeholder string
	picker      PlaceholderSource

	subscribers []func([]model.Task)
	onError     func(error)
}

// New creates a store and loads the saved list. Missing or unreadable data
// falls back to the seed list.
func New(storage Storage, picker PlaceholderSource) *Store {
	s := &Store{
		storage: storage,
		picker:  picker,
	}
	s.tasks = s.load()
	s.placeholder = s.nextPlaceholder()
	return s
}

func (s *Store) load() []model.Task {
	tasks, err := s.storage.Load()
	if err != nil {
		if errors.Is(err, ErrNoData) {
			log.Printf("No saved tasks, using defaults")
		} else {
			log.Printf("Failed to load tasks, using defaults: %v", err)
		}
		return model.DefaultTasks()
	}
	log.Printf("Loaded %d tasks", len(tasks))
	return tasks
}

// Subscribe registers a callback invoked with a snapshot after every applied mutation
func (s *Store) Subscribe(callback func([]model.Task)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.subscribers = append(s.subscribers, callback)
}

// SetErrorCallback sets the callback for persistence failures
func (s *Store) SetErrorCallback(callback func(error)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onError = callback
}

// Tasks returns a copy of the current list
func (s *Store) Tasks() []model.Task {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.snapshot()
}

// Len returns the number of tasks
func (s *Store) Len() int {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return len(s.tasks)
}

// IndexOf returns the current index of the task with the given row key
func (s *Store) IndexOf(id string) (int, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	for i, task := range s.tasks {
		if task.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Placeholder returns the phrase to show in the empty entry
func (s *Store) Placeholder() string {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.placeholder
}

// Add prepends a pending task and picks a new placeholder. Empty text is allowed.
func (s *Store) Add(text string) model.Task {
	task := model.NewTask(text)

	s.tasksMutex.Lock()
	tasks := make([]model.Task, 0, len(s.tasks)+1)
	tasks = append(tasks, task)
	s.tasks = append(tasks, s.tasks...)
	s.placeholder = s.nextPlaceholder()
	s.tasksMutex.Unlock()

	log.Printf("Task added: id=%s text=%q", task.ID, task.Text)
	s.commit()
	return task
}

// Toggle flips the done flag of the task at index. Out-of-range indexes are ignored.
func (s *Store) Toggle(index int) bool {
	s.tasksMutex.Lock()
	if index < 0 || index >= len(s.tasks) {
		s.tasksMutex.Unlock()
		log.Printf("Toggle ignored, index %d out of range", index)
		return false
	}
	tasks := s.snapshot()
	tasks[index] = tasks[index].Toggled()
	s.tasks = tasks
	toggled := tasks[index]
	s.tasksMutex.Unlock()

	log.Printf("Task toggled: id=%s status=%s", toggled.ID, toggled.Status())
	s.commit()
	return true
}

// Remove deletes the task at index. Out-of-range indexes are ignored.
func (s *Store) Remove(index int) bool {
	s.tasksMutex.Lock()
	if index < 0 || index >= len(s.tasks) {
		s.tasksMutex.Unlock()
		log.Printf("Remove ignored, index %d out of range", index)
		return false
	}
	removed := s.tasks[index]
	tasks := make([]model.Task, 0, len(s.tasks)-1)
	tasks = append(tasks, s.tasks[:index]...)
	s.tasks = append(tasks, s.tasks[index+1:]...)
	s.tasksMutex.Unlock()

	log.Printf("Task removed: id=%s text=%q", removed.ID, removed.Text)
	s.commit()
	return true
}

// commit persists the current list and notifies subscribers. A failed save
// leaves the in-memory list as is.
func (s *Store) commit() {
	s.tasksMutex.RLock()
	tasks := s.snapshot()
	subscribers := append([]func([]model.Task){}, s.subscribers...)
	onError := s.onError
	s.tasksMutex.RUnlock()

	if err := s.storage.Save(tasks); err != nil {
		log.Printf("Failed to save %d tasks: %v", len(tasks), err)
		if onError != nil {
			onError(err)
		}
	}

	for _, callback := range subscribers {
		callback(append([]model.Task(nil), tasks...))
	}
}

// snapshot copies the list; callers hold the lock
func (s *Store) snapshot() []model.Task {
	tasks := make([]model.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

func (s *Store) nextPlaceholder() string {
	if s.picker == nil {
		return ""
	}
	return s.picker.Next()
}
