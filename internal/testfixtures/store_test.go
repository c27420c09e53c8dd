package testfixtures_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/office-hours-service/internal/domain"
	ledgerRepo "github.com/m04kA/office-hours-service/internal/infra/storage/ledger"
	"github.com/m04kA/office-hours-service/internal/testfixtures"
)

var monday = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

func bookedIndex(t *testing.T, store *testfixtures.Store, professorID uuid.UUID) domain.BookedSlotIndex {
	t.Helper()
	idx, err := store.Ledger().Index(context.Background(), professorID, monday, monday)
	require.NoError(t, err)
	return idx
}

func TestLedger_ReleaseTwiceLeavesLedgerUnchanged(t *testing.T) {
	ctx := context.Background()
	store := testfixtures.NewStore(nil)
	ledger := store.Ledger()
	professorID := uuid.New()

	released := domain.BookedSlot{ProfessorID: professorID, Date: monday, Time: "10:00", AppointmentID: uuid.New()}
	kept := domain.BookedSlot{ProfessorID: professorID, Date: monday, Time: "10:30", AppointmentID: uuid.New()}
	require.NoError(t, ledger.Reserve(ctx, released))
	require.NoError(t, ledger.Reserve(ctx, kept))

	require.NoError(t, ledger.Release(ctx, released))
	before := bookedIndex(t, store, professorID)

	require.NoError(t, ledger.Release(ctx, released))
	after := bookedIndex(t, store, professorID)

	assert.Equal(t, before, after)
	assert.Equal(t, 1, store.BookedCount())
	assert.True(t, after.Has(monday, "10:30"))
	assert.False(t, after.Has(monday, "10:00"))
}

func TestLedger_StaleReleaseKeepsReReservedSlot(t *testing.T) {
	ctx := context.Background()
	store := testfixtures.NewStore(nil)
	ledger := store.Ledger()
	professorID := uuid.New()

	stale := domain.BookedSlot{ProfessorID: professorID, Date: monday, Time: "10:00", AppointmentID: uuid.New()}
	require.NoError(t, ledger.Reserve(ctx, stale))
	require.NoError(t, ledger.Release(ctx, stale))

	current := stale
	current.AppointmentID = uuid.New()
	require.NoError(t, ledger.Reserve(ctx, current))

	// повторная отмена старой записи не трогает новую бронь
	require.NoError(t, ledger.Release(ctx, stale))
	assert.Equal(t, 1, store.BookedCount())
	assert.True(t, bookedIndex(t, store, professorID).Has(monday, "10:00"))
	assert.ErrorIs(t, ledger.Reserve(ctx, stale), ledgerRepo.ErrAlreadyBooked)

	require.NoError(t, ledger.Release(ctx, current))
	assert.Equal(t, 0, store.BookedCount())
}

func TestLedger_RolledBackReleaseRestoresHolder(t *testing.T) {
	ctx := context.Background()
	store := testfixtures.NewStore(nil)
	ledger := store.Ledger()

	slot := domain.BookedSlot{ProfessorID: uuid.New(), Date: monday, Time: "11:00", AppointmentID: uuid.New()}
	require.NoError(t, ledger.Reserve(ctx, slot))

	errBoom := errors.New("boom")
	err := store.TxManager().Do(ctx, func(txCtx context.Context) error {
		require.NoError(t, ledger.Release(txCtx, slot))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, store.BookedCount())

	// держатель восстановлен: освобождение по своему ID снова работает
	require.NoError(t, ledger.Release(ctx, slot))
	assert.Equal(t, 0, store.BookedCount())
}
