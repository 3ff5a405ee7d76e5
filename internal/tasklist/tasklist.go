// Package tasklist holds the in-memory task list and the derived views the
// UI renders from it.
package tasklist

import (
	"errors"
	"strings"
)

// FirstID is the first id handed out by a store built from the seed data.
const FirstID = 100

var ErrBlankText = errors.New("task text is blank")

type Task struct {
	ID   int
	Text string
	Done bool
}

// Store owns every task record. The zero value is not usable; call New.
type Store struct {
	tasks  []Task
	nextID int

	editing bool
	editID  int
	editBuf string
}

// Seed returns the records shown on first launch.
func Seed() []Task {
	return []Task{
		{ID: 1, Text: "Design something beautiful"},
		{ID: 2, Text: "Finish the quarterly report"},
		{ID: 3, Text: "Morning run, 5km", Done: true},
	}
}

func New(seed ...Task) *Store {
	s := &Store{nextID: FirstID}
	s.Restore(seed)
	return s
}

// Restore replaces the list with tasks, keeping the id counter above every
// restored id. Any edit in progress is dropped.
func (s *Store) Restore(tasks []Task) {
	s.tasks = make([]Task, len(tasks))
	copy(s.tasks, tasks)
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	s.CancelEdit()
}

func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) Get(id int) (Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

// Add prepends a new task. Blank text is rejected with ErrBlankText.
func (s *Store) Add(text string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrBlankText
	}
	t := Task{ID: s.nextID, Text: text}
	s.nextID++
	s.tasks = append([]Task{t}, s.tasks...)
	return t, nil
}

func (s *Store) Toggle(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Done = !s.tasks[i].Done
	return true
}

func (s *Store) Remove(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	if s.editing && s.editID == id {
		s.CancelEdit()
	}
	return true
}

// BeginEdit makes id the edit target. An unsaved buffer for another task is
// abandoned.
func (s *Store) BeginEdit(id int) bool {
	t, ok := s.Get(id)
	if !ok {
		return false
	}
	s.editing = true
	s.editID = id
	s.editBuf = t.Text
	return true
}

func (s *Store) SetEditBuffer(text string) {
	if s.editing {
		s.editBuf = text
	}
}

// Editing reports the current edit target and its buffer.
func (s *Store) Editing() (id int, buf string, ok bool) {
	return s.editID, s.editBuf, s.editing
}

// ConfirmEdit leaves edit mode for id. A blank buffer is discarded and the
// original text kept. It reports whether the stored text was replaced.
func (s *Store) ConfirmEdit(id int) bool {
	if !s.editing || s.editID != id {
		return false
	}
	text := strings.TrimSpace(s.editBuf)
	s.CancelEdit()
	if text == "" {
		return false
	}
	i := s.index(id)
	if i < 0 {
		return false
	}
	changed := s.tasks[i].Text != text
	s.tasks[i].Text = text
	return changed
}

func (s *Store) CancelEdit() {
	s.editing = false
	s.editID = 0
	s.editBuf = ""
}

// ClearCompleted removes every done task and returns how many went.
func (s *Store) ClearCompleted() int {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Done {
			removed++
			if s.editing && s.editID == t.ID {
				s.CancelEdit()
			}
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return removed
}

func (s *Store) index(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
