package model

import "testing"

func TestNewTask(t *testing.T) {
	task := NewTask("Buy eggs")

	if task.ID == "" {
		t.Error("Expected new task to have a row key")
	}
	if task.Done {
		t.Error("Expected new task to be pending")
	}
	if task.Text != "Buy eggs" {
		t.Errorf("Expected text 'Buy eggs', got '%s'", task.Text)
	}

	other := NewTask("Buy eggs")
	if other.ID == task.ID {
		t.Error("Expected tasks with equal text to get distinct row keys")
	}
}

func TestDefaultTasks(t *testing.T) {
	tasks := DefaultTasks()
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 seed tasks, got %d", len(tasks))
	}

	expected := []string{"+Original", "+Tasks"}
	for i, task := range tasks {
		if task.Legacy() != expected[i] {
			t.Errorf("Seed task %d: expected %s, got %s", i, expected[i], task.Legacy())
		}
	}
}

func TestTask_Toggled(t *testing.T) {
	task := NewTask("Nap")

	once := task.Toggled()
	if !once.Done || once.Status() != StatusDone {
		t.Error("Expected toggled task to be done")
	}
	if once.ID != task.ID || once.Text != task.Text {
		t.Error("Toggle must not change row key or text")
	}

	twice := once.Toggled()
	if twice != task {
		t.Errorf("Expected toggling twice to restore %+v, got %+v", task, twice)
	}
}

func TestTask_Legacy(t *testing.T) {
	tests := []struct {
		task     Task
		expected string
	}{
		{Task{Text: "A"}, "+A"},
		{Task{Text: "A", Done: true}, "-A"},
		{Task{Text: ""}, "+"},
		{Task{Text: "-starts with dash"}, "+-starts with dash"},
	}

	for _, test := range tests {
		if result := test.task.Legacy(); result != test.expected {
			t.Errorf("Legacy() = %q, expected %q", result, test.expected)
		}
	}
}

func TestParseLegacy(t *testing.T) {
	tests := []struct {
		input   string
		done    bool
		text    string
		wantErr bool
	}{
		{"+Call mom", false, "Call mom", false},
		{"-Call mom", true, "Call mom", false},
		{"+", false, "", false},
		{"++plus", false, "+plus", false},
		{"", false, "", true},
		{"Call mom", false, "", true},
	}

	for _, test := range tests {
		task, err := ParseLegacy(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseLegacy(%q) expected error, got %+v", test.input, task)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLegacy(%q) unexpected error: %v", test.input, err)
			continue
		}
		if task.Done != test.done || task.Text != test.text {
			t.Errorf("ParseLegacy(%q) = {Done:%v Text:%q}, expected {Done:%v Text:%q}",
				test.input, task.Done, task.Text, test.done, test.text)
		}
		if task.ID == "" {
			t.Errorf("ParseLegacy(%q) should assign a row key", test.input)
		}
	}
}

func TestTask_EnsureID(t *testing.T) {
	task := Task{Text: "Get job"}.EnsureID()
	if task.ID == "" {
		t.Fatal("Expected EnsureID to assign a row key")
	}

	kept := task.EnsureID()
	if kept.ID != task.ID {
		t.Errorf("Expected existing row key %s to be kept, got %s", task.ID, kept.ID)
	}
}
