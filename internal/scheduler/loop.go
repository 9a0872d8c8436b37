package scheduler

import (
	"container/heap"
	"time"
)

// Loop runs tasks against a virtual clock, one at a time, in due order.
// Ties fire in the order they were armed. It backs headless runs and tests,
// where waiting on real timers would only slow things down.
type Loop struct {
	now   time.Duration
	seq   int
	queue taskQueue
}

type pending struct {
	task Task
	due  time.Duration
	seq  int
}

type taskQueue []pending

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}
func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x any)   { *q = append(*q, x.(pending)) }
func (q *taskQueue) Pop() any {
	old := *q
	p := old[len(old)-1]
	*q = old[:len(old)-1]
	return p
}

// Now is the virtual time elapsed since the loop was created.
func (l *Loop) Now() time.Duration {
	return l.now
}

// Pending is the number of armed tasks.
func (l *Loop) Pending() int {
	return l.queue.Len()
}

// Arm schedules a task relative to the current virtual time.
func (l *Loop) Arm(a Arming) {
	heap.Push(&l.queue, pending{task: a.Task, due: l.now + a.Delay, seq: l.seq})
	l.seq++
}

// ArmAll schedules several tasks.
func (l *Loop) ArmAll(arms []Arming) {
	for _, a := range arms {
		l.Arm(a)
	}
}

// Step fires the earliest task, re-arming it if the handler asks to.
// It reports false when nothing is armed.
func (l *Loop) Step(h Handler) bool {
	if l.queue.Len() == 0 {
		return false
	}
	p := heap.Pop(&l.queue).(pending)
	l.now = p.due
	if delay, again := h(p.task); again {
		l.Arm(Arming{Task: p.task, Delay: delay})
	}
	return true
}

// RunUntil fires every task due at or before limit and returns how many ran.
// The clock ends at limit even if the queue drained earlier.
func (l *Loop) RunUntil(limit time.Duration, h Handler) int {
	fired := 0
	for l.queue.Len() > 0 && l.queue[0].due <= limit {
		l.Step(h)
		fired++
	}
	if l.now < limit {
		l.now = limit
	}
	return fired
}
