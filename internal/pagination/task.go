package pagination

import "sync/atomic"

var lastTaskID atomic.Uint64

func nextTaskID() uint64 {
	return lastTaskID.Add(1)
}

// Task is a deferred page load. Completions are matched by ID, so a task
// that was cancelled or replaced can never be applied.
type Task struct {
	ID   uint64
	Page int // page count the task reveals when it completes
}

// Slot holds at most one pending task
type Slot struct {
	pending *Task
}

// Start replaces any pending task with a new one for page
func (s *Slot) Start(page int) Task {
	t := &Task{ID: nextTaskID(), Page: page}
	s.pending = t
	return *t
}

// Cancel drops the pending task and reports it, if any
func (s *Slot) Cancel() (Task, bool) {
	if s.pending == nil {
		return Task{}, false
	}
	t := *s.pending
	s.pending = nil
	return t, true
}

// Take empties the slot when id matches the pending task
func (s *Slot) Take(id uint64) (Task, bool) {
	if s.pending == nil || s.pending.ID != id {
		return Task{}, false
	}
	return s.Cancel()
}

// Busy reports whether a task is pending
func (s *Slot) Busy() bool {
	return s.pending != nil
}
