// internal/sched/queue.go
package sched

import (
	"sort"
	"time"
)

// Token identifies a scheduled task. The zero Token is never issued.
type Token uint64

type task struct {
	token Token
	due   float64
	fn    func()
}

// Queue runs one-shot deferred tasks against game time.
// Time only moves forward through Advance, which the game loop calls
// with the frame delta, so everything stays on the Update goroutine.
// Not safe for concurrent use.
type Queue struct {
	now   float64
	next  Token
	tasks []task
}

// NewQueue создаёт пустую очередь.
func NewQueue() *Queue {
	return &Queue{}
}

// After schedules fn to run once delay of game time has elapsed.
func (q *Queue) After(delay time.Duration, fn func()) Token {
	q.next++
	due := q.now + delay.Seconds()
	q.tasks = append(q.tasks, task{token: q.next, due: due, fn: fn})
	return q.next
}

// Cancel removes a pending task. Reports whether it was still pending.
func (q *Queue) Cancel(t Token) bool {
	for i, tk := range q.tasks {
		if tk.token == t {
			q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending reports whether t is scheduled and has not fired.
func (q *Queue) Pending(t Token) bool {
	for _, tk := range q.tasks {
		if tk.token == t {
			return true
		}
	}
	return false
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int { return len(q.tasks) }

// Now returns the accumulated game time in seconds.
func (q *Queue) Now() float64 { return q.now }

// Advance moves game time forward by dt seconds and runs the tasks that
// became due, earliest first. Tasks scheduled by a running task wait for
// the next Advance even when their delay is zero; a due task cancelled by
// an earlier one in the same batch does not run.
func (q *Queue) Advance(dt float64) {
	if dt > 0 {
		q.now += dt
	}

	var due []task
	for _, tk := range q.tasks {
		if tk.due <= q.now {
			due = append(due, tk)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })

	for _, tk := range due {
		// Cancel возвращает false, если задачу уже сняли
		if q.Cancel(tk.token) {
			tk.fn()
		}
	}
}
