package fork_join

import (
	"sync"

	"golang.org/x/exp/slog"
)

// Pool owns the worker goroutines of a ForkJoinPool and runs tasks on
// them, turning panics into task failures.
type Pool struct {
	wg           sync.WaitGroup
	panicHandler func(interface{})
	logger       *slog.Logger
}

func newPool(logger *slog.Logger) *Pool {
	return &Pool{logger: logger}
}

func (p *Pool) spawn(workerCap int32, loop func(wId int32)) {
	p.wg.Add(int(workerCap))
	for wId := int32(0); wId < workerCap; wId++ {
		go func(wId int32) {
			defer p.wg.Done()
			loop(wId)
		}(wId)
	}
}

// execute runs t to completion and completes f with its result. A panic
// in t completes f with a *PanicError instead of unwinding the worker.
func (p *Pool) execute(t Task, f *ForkJoinTask) {
	defer func() {
		if r := recover(); r != nil {
			perr := NewPanicError(r)
			p.logger.Error("fork_join: task panicked", slog.Any("panic", r))
			if p.panicHandler != nil {
				p.panicHandler(r)
			}
			f.complete(nil, perr)
		}
	}()
	result := t.Compute()
	f.complete(result, nil)
}

func (p *Pool) wait() {
	p.wg.Wait()
}
