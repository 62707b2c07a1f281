package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddRouteCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAddRouteCommand("Warehouse", "Area A", 3*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "Warehouse", cmd.From())
	assert.Equal(t, "Area A", cmd.To())
	assert.Equal(t, 3*time.Minute, cmd.TravelTime())
}

func TestNewAddRouteCommand_MissingEndpoints(t *testing.T) {
	_, err := commands.NewAddRouteCommand("", "Area A", time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRouteFromIsRequired)

	_, err = commands.NewAddRouteCommand("Warehouse", "", time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRouteToIsRequired)
}

func TestNewAddRouteCommand_EqualEndpoints(t *testing.T) {
	_, err := commands.NewAddRouteCommand("Area A", "Area A", time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRouteEndpointsAreEqual)
}

func TestNewAddRouteCommand_NegativeTravelTime(t *testing.T) {
	_, err := commands.NewAddRouteCommand("Warehouse", "Area A", -time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTravelTimeIsNegative)
}

func TestNewAddRouteCommand_ZeroTravelTime(t *testing.T) {
	_, err := commands.NewAddRouteCommand("Warehouse", "Area A", 0)
	require.NoError(t, err)
}
