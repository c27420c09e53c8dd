package testfixtures

import (
	"context"
	"sync"
)

type txLogKey struct{}

type txLog struct {
	mu   sync.Mutex
	undo []func()
}

func onRollback(ctx context.Context, fn func()) {
	log, ok := ctx.Value(txLogKey{}).(*txLog)
	if !ok {
		return
	}
	log.mu.Lock()
	log.undo = append(log.undo, fn)
	log.mu.Unlock()
}

// TxManager runs fn and undoes the fake repositories' writes when fn fails.
// Transactions are not isolated from each other; only the ledger's
// conditional insert is atomic, as with the unique key in Postgres.
type TxManager struct {
	Begins int
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, nested := ctx.Value(txLogKey{}).(*txLog); nested {
		return fn(ctx)
	}

	log := &txLog{}
	if err := fn(context.WithValue(ctx, txLogKey{}, log)); err != nil {
		log.mu.Lock()
		undo := log.undo
		log.mu.Unlock()
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		return err
	}
	return nil
}
