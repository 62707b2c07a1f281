package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/routing"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(t *testing.T, name string) kernel.Location {
	t.Helper()
	l, err := kernel.NewLocation(name)
	require.NoError(t, err)
	return l
}

// newScheduler builds a scheduler over a small warehouse topology shared by
// the handler tests.
func newScheduler(t *testing.T) *services.Scheduler {
	t.Helper()

	g, err := routing.NewRouteGraph(loc(t, "Warehouse"))
	require.NoError(t, err)
	for _, name := range []string{"Area A", "Area B", "Area C"} {
		require.NoError(t, g.AddLocation(loc(t, name)))
	}
	require.NoError(t, g.AddRoute(loc(t, "Warehouse"), loc(t, "Area A"), 3*time.Minute))
	require.NoError(t, g.AddRoute(loc(t, "Warehouse"), loc(t, "Area B"), 4*time.Minute))
	require.NoError(t, g.AddRoute(loc(t, "Area A"), loc(t, "Area C"), 3*time.Minute))

	s, err := services.NewScheduler(g)
	require.NoError(t, err)
	return s
}

func TestRegisterDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	scheduler := newScheduler(t)
	h := commands.NewRegisterDeliveryCommandHandler(scheduler)

	cmd, err := commands.NewRegisterDeliveryCommand("P-1", "Acme Ltd", "J. Smith", "Area A")
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	record, err := scheduler.Get("P-1")
	require.NoError(t, err)
	// the slot was free, so registration promotes the record immediately
	assert.Equal(t, delivery.Dispatched, record.Status())
}

func TestRegisterDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewRegisterDeliveryCommandHandler(newScheduler(t))

	err := h.Handle(ctx, commands.RegisterDeliveryCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRegisterDeliveryCommandIsNotConstructed)
}

func TestRegisterDeliveryCommandHandler_Handle_DuplicateParcel(t *testing.T) {
	ctx := t.Context()
	h := commands.NewRegisterDeliveryCommandHandler(newScheduler(t))

	cmd, err := commands.NewRegisterDeliveryCommand("P-1", "Acme Ltd", "J. Smith", "Area A")
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrDuplicateParcel)
}

func TestRegisterDeliveryCommandHandler_Handle_UnknownDestination(t *testing.T) {
	ctx := t.Context()
	h := commands.NewRegisterDeliveryCommandHandler(newScheduler(t))

	cmd, err := commands.NewRegisterDeliveryCommand("P-1", "Acme Ltd", "J. Smith", "Nowhere")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrUnknownDestination)
}
