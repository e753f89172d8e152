package view

import (
	"sort"
	"time"
)

// Scheduler defers a callback by a fixed delay. The coordinator schedules
// entrance batches, fades, debounced searches and tour steps through this
// interface; tests substitute a manual clock to drive timers
// deterministically.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// TimerScheduler is the production scheduler backed by the runtime timer heap.
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// ManualScheduler is a deterministic scheduler for tests: tasks fire only
// when Advance moves the fake clock past their due time, in due-time order
// with scheduling order as tiebreak.
type ManualScheduler struct {
	now   time.Duration
	seq   int
	tasks []manualTask
}

type manualTask struct {
	due time.Duration
	seq int
	fn  func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) After(d time.Duration, fn func()) {
	m.seq++
	m.tasks = append(m.tasks, manualTask{due: m.now + d, seq: m.seq, fn: fn})
}

// Advance moves the clock forward and fires every task that has come due,
// including tasks scheduled by fired tasks inside the window.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		idx := -1
		for i, t := range m.tasks {
			if t.due > target {
				continue
			}
			if idx == -1 || t.due < m.tasks[idx].due ||
				(t.due == m.tasks[idx].due && t.seq < m.tasks[idx].seq) {
				idx = i
			}
		}
		if idx == -1 {
			break
		}
		task := m.tasks[idx]
		m.tasks = append(m.tasks[:idx], m.tasks[idx+1:]...)
		m.now = task.due
		task.fn()
	}
	m.now = target
}

// Pending returns the number of tasks not yet fired.
func (m *ManualScheduler) Pending() int {
	return len(m.tasks)
}

// PendingDues lists outstanding due times, ascending. Test helper.
func (m *ManualScheduler) PendingDues() []time.Duration {
	dues := make([]time.Duration, 0, len(m.tasks))
	for _, t := range m.tasks {
		dues = append(dues, t.due)
	}
	sort.Slice(dues, func(i, j int) bool { return dues[i] < dues[j] })
	return dues
}
