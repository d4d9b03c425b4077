package operator

import (
	"context"
	"sync"

	"github.com/carson-networks/budget-buddy/internal/operator/actions"
	"github.com/carson-networks/budget-buddy/internal/storage"
)

// OperatorDelegator manages the queue, starts/stops the Operator, and
// enqueues items. It runs exactly one worker: mutations must be applied in
// the order they were dispatched, and a single worker is what guarantees
// that readers only ever see fully committed snapshots.
type OperatorDelegator struct {
	store    *storage.Store
	queue    chan ActionItem
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(s *storage.Store) *OperatorDelegator {
	return &OperatorDelegator{
		store: s,
		queue: make(chan ActionItem, 64),
	}
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	op := NewOperator(d.store, d.queue)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// Process enqueues an action and blocks until it has been committed or
// rejected, so callers observe their own writes on the next read.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.queue <- item

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
