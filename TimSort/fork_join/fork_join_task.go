package fork_join

// Task is a unit of work that can be forked onto a ForkJoinPool.
type Task interface {
	Compute() interface{}
}

// ForkJoinTask is embedded by task types to make them forkable:
//
//	t.Build(pool).Run(t)
//	ok, v := t.Join()
type ForkJoinTask struct {
	TaskPool *ForkJoinPool
	done     chan struct{}
	result   interface{}
	err      error
}

// Build binds the task to pool and resets its completion state. A task
// must be built again before it is run a second time.
func (f *ForkJoinTask) Build(pool *ForkJoinPool) *ForkJoinTask {
	f.TaskPool = pool
	f.done = make(chan struct{})
	f.result = nil
	f.err = nil
	return f
}

// Run forks t; t is normally the value that embeds f.
func (f *ForkJoinTask) Run(t Task) {
	if f.TaskPool == nil || f.done == nil {
		panic("assert task built before Run")
	}
	if err := f.TaskPool.pushTask(t, f); err != nil {
		f.complete(nil, err)
	}
}

// Join blocks until the task has completed. While waiting, the calling
// goroutine runs other queued tasks of the same pool, so joining from
// inside Compute does not starve the workers.
// ok is false when the task panicked or was rejected; see Err.
func (f *ForkJoinTask) Join() (bool, interface{}) {
	f.TaskPool.helpUntil(f.done)
	return f.err == nil, f.result
}

// Err reports why the task failed. Only valid after Join returned.
func (f *ForkJoinTask) Err() error {
	return f.err
}

func (f *ForkJoinTask) complete(result interface{}, err error) {
	f.result = result
	f.err = err
	close(f.done)
}
