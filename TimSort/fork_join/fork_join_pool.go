package fork_join

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
	"golang.org/x/exp/slog"
)

type ForkJoinPool struct {
	cap       int32
	taskQueue *TaskQueue
	wp        *Pool // worker pool
	lock      sync.Mutex
	signal    *sync.Cond // 用于通知 worker pool 中的 worker 有新的任务到来
	closed    bool
	closeOnce sync.Once
	logger    *slog.Logger
}

// NewForkJoinPool starts workerCap workers. workerCap <= 0 means
// runtime.GOMAXPROCS(0).
func NewForkJoinPool(workerCap int32) *ForkJoinPool {
	if workerCap <= 0 {
		workerCap = int32(runtime.GOMAXPROCS(0))
	}
	fp := &ForkJoinPool{
		cap:       workerCap,
		taskQueue: NewTaskQueue(workerCap),
		logger:    slog.Default(),
	}
	fp.wp = newPool(fp.logger)
	fp.signal = sync.NewCond(&fp.lock)
	fp.wp.spawn(workerCap, fp.run)
	fp.logger.Debug("fork_join: pool started", slog.Int("workers", int(workerCap)))
	return fp
}

// SetPanicHandler registers a callback invoked with the value of every
// recovered task panic, before the task is marked failed. The handler
// must not panic.
func (fp *ForkJoinPool) SetPanicHandler(panicHandler func(interface{})) {
	fp.lock.Lock()
	defer fp.lock.Unlock()
	fp.wp.panicHandler = panicHandler
}

// SetLogger replaces slog.Default() as the destination of pool logs.
func (fp *ForkJoinPool) SetLogger(logger *slog.Logger) {
	fp.lock.Lock()
	defer fp.lock.Unlock()
	fp.logger = logger
	fp.wp.logger = logger
}

func (fp *ForkJoinPool) Workers() int {
	return int(fp.cap)
}

func (fp *ForkJoinPool) pushTask(t Task, f *ForkJoinTask) error {
	fp.lock.Lock()
	if fp.closed {
		fp.lock.Unlock()
		return ErrPoolClosed
	}
	fp.taskQueue.enqueue(t, f)
	fp.lock.Unlock()
	fp.signal.Signal()
	return nil
}

// 每个 worker 轮询自己对应的 Task 队列进行获取任务
func (fp *ForkJoinPool) run(wId int32) {
	for {
		hasTask, job, ft := fp.taskQueue.dequeueByTail(wId)
		if hasTask {
			fp.wp.execute(job, ft)
			continue
		}
		fp.lock.Lock()
		for fp.taskQueue.Len() == 0 && !fp.closed {
			fp.signal.Wait()
		}
		exit := fp.closed && fp.taskQueue.Len() == 0
		fp.lock.Unlock()
		if exit {
			return
		}
	}
}

// helpUntil runs queued tasks on the calling goroutine until done is
// closed or the queues are empty, then blocks on done.
func (fp *ForkJoinPool) helpUntil(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		default:
		}
		hasTask, job, ft := fp.taskQueue.steal(-1)
		if !hasTask {
			<-done
			return
		}
		fp.wp.execute(job, ft)
	}
}

// Close stops accepting work, lets the workers drain what is queued and
// waits for them to exit. It is safe to call more than once.
func (fp *ForkJoinPool) Close() {
	fp.closeOnce.Do(func() {
		fp.lock.Lock()
		fp.closed = true
		fp.lock.Unlock()
		fp.signal.Broadcast()
		fp.wp.wait()
		fp.logger.Debug("fork_join: pool stopped", slog.Int("workers", int(fp.cap)))
	})
}

func (fp *ForkJoinPool) isClosed() bool {
	fp.lock.Lock()
	defer fp.lock.Unlock()
	return fp.closed
}

// batch tracks one InvokeAll call; after the first panic the tasks of the
// batch that have not started yet are skipped.
type batch struct {
	aborted atomic.Bool
}

type funcTask struct {
	ForkJoinTask
	fn    func()
	batch *batch
}

var errSkipped = errors.New("fork_join: skipped after batch failure")

func (t *funcTask) Compute() interface{} {
	if t.batch.aborted.Load() {
		return errSkipped
	}
	finished := false
	defer func() {
		if !finished {
			t.batch.aborted.Store(true)
		}
	}()
	t.fn()
	finished = true
	return nil
}

// InvokeAll forks one task per function and blocks until all of them have
// completed. Tasks of one call must not touch the same data. ctx is only
// consulted before anything is forked; started tasks always finish.
// Panics are returned as *PanicError values combined with multierr.
func (fp *ForkJoinPool) InvokeAll(ctx context.Context, tasks []func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if fp.isClosed() {
		return ErrPoolClosed
	}
	b := &batch{}
	forked := make([]*funcTask, len(tasks))
	for i, fn := range tasks {
		t := &funcTask{fn: fn, batch: b}
		t.Build(fp).Run(t)
		forked[i] = t
	}
	var errs, rejected error
	for _, t := range forked {
		if ok, _ := t.Join(); ok {
			continue
		}
		if errors.Is(t.Err(), ErrPoolClosed) {
			rejected = t.Err()
			continue
		}
		errs = multierr.Append(errs, t.Err())
	}
	return multierr.Append(errs, rejected)
}
