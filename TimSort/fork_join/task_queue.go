package fork_join

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

type job struct {
	t Task
	f *ForkJoinTask
}

// workQueue is owned by one worker. The owner takes from the tail (most
// recently forked first), thieves take from the head.
type workQueue struct {
	_    cpu.CacheLinePad
	lock sync.Mutex
	jobs []job
	head int
}

func (q *workQueue) push(j job) {
	q.lock.Lock()
	q.jobs = append(q.jobs, j)
	q.lock.Unlock()
}

func (q *workQueue) popTail() (job, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()
	if q.head == len(q.jobs) {
		return job{}, false
	}
	n := len(q.jobs) - 1
	j := q.jobs[n]
	q.jobs[n] = job{}
	q.jobs = q.jobs[:n]
	q.reset()
	return j, true
}

func (q *workQueue) popHead() (job, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()
	if q.head == len(q.jobs) {
		return job{}, false
	}
	j := q.jobs[q.head]
	q.jobs[q.head] = job{}
	q.head++
	q.reset()
	return j, true
}

// reset reclaims the backing array once the queue drains.
func (q *workQueue) reset() {
	if q.head == len(q.jobs) {
		q.head = 0
		q.jobs = q.jobs[:0]
	}
}

// TaskQueue spreads forked tasks over one queue per worker.
type TaskQueue struct {
	queues []*workQueue
	next   atomic.Uint32
	size   atomic.Int64
}

func NewTaskQueue(workerCap int32) *TaskQueue {
	tq := &TaskQueue{queues: make([]*workQueue, workerCap)}
	for i := range tq.queues {
		tq.queues[i] = &workQueue{}
	}
	return tq
}

// enqueue places the task on the queues round-robin.
func (tq *TaskQueue) enqueue(t Task, f *ForkJoinTask) {
	i := int(tq.next.Add(1)-1) % len(tq.queues)
	tq.size.Add(1)
	tq.queues[i].push(job{t: t, f: f})
}

// dequeueByTail takes from worker wId's own queue first and steals from
// the others when it is empty.
func (tq *TaskQueue) dequeueByTail(wId int32) (bool, Task, *ForkJoinTask) {
	if j, ok := tq.queues[wId].popTail(); ok {
		tq.size.Add(-1)
		return true, j.t, j.f
	}
	return tq.steal(wId)
}

// steal scans every queue except skip (-1 scans all) from its head.
func (tq *TaskQueue) steal(skip int32) (bool, Task, *ForkJoinTask) {
	n := int32(len(tq.queues))
	start := skip + 1
	for k := int32(0); k < n; k++ {
		i := (start + k) % n
		if i == skip {
			continue
		}
		if j, ok := tq.queues[i].popHead(); ok {
			tq.size.Add(-1)
			return true, j.t, j.f
		}
	}
	return false, nil, nil
}

func (tq *TaskQueue) Len() int {
	return int(tq.size.Load())
}
