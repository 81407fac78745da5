package memory

import (
	"context"

	"github.com/jhoicas/erp-inventario/internal/application/inventory"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// undoLog acumula las acciones que revierten las escrituras de una unidad de trabajo.
// Un *undoLog nil (fuera de transacción) ignora los registros.
type undoLog struct {
	steps []func()
}

func (u *undoLog) push(step func()) {
	if u == nil {
		return
	}
	u.steps = append(u.steps, step)
}

// rollback deshace en orden inverso. Debe llamarse con Store.mu tomado.
func (u *undoLog) rollback() {
	for i := len(u.steps) - 1; i >= 0; i-- {
		u.steps[i]()
	}
	u.steps = nil
}

// TxRunner implementa inventory.TxRunner en memoria: serializa las unidades de trabajo
// y revierte las escrituras si fn devuelve error.
type TxRunner struct {
	s *Store
}

var _ inventory.TxRunner = (*TxRunner)(nil)

// NewTxRunner crea el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repositorios atados a la unidad de trabajo.
func (t *TxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	undo := &undoLog{}
	invRepo := &InventoryRepo{s: t.s, undo: undo}
	movRepo := &InventoryMovementRepo{s: t.s, undo: undo}
	if err := fn(invRepo, movRepo); err != nil {
		t.s.mu.Lock()
		undo.rollback()
		t.s.mu.Unlock()
		return err
	}
	return nil
}
