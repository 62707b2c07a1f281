package routing_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/routing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(t *testing.T, name string) kernel.Location {
	t.Helper()
	l, err := kernel.NewLocation(name)
	require.NoError(t, err)
	return l
}

// seedGraph builds the default warehouse topology:
//
//	Warehouse -> Area A -> Area C, Area D
//	Warehouse -> Area B -> Area E, Area F
func seedGraph(t *testing.T) *routing.RouteGraph {
	t.Helper()

	g, err := routing.NewRouteGraph(loc(t, "Warehouse"))
	require.NoError(t, err)

	for _, name := range []string{"Area A", "Area B", "Area C", "Area D", "Area E", "Area F"} {
		require.NoError(t, g.AddLocation(loc(t, name)))
	}

	edges := []struct {
		from, to string
		minutes  int
	}{
		{"Warehouse", "Area A", 3},
		{"Warehouse", "Area B", 4},
		{"Area A", "Area C", 3},
		{"Area A", "Area D", 3},
		{"Area B", "Area E", 4},
		{"Area B", "Area F", 4},
	}
	for _, e := range edges {
		require.NoError(t, g.AddRoute(loc(t, e.from), loc(t, e.to), time.Duration(e.minutes)*time.Minute))
	}

	return g
}

func pathNames(path []kernel.Location) []string {
	names := make([]string, len(path))
	for i, l := range path {
		names[i] = l.Name()
	}
	return names
}

func TestNewRouteGraph(t *testing.T) {
	t.Run("contains the warehouse", func(t *testing.T) {
		g, err := routing.NewRouteGraph(loc(t, "Warehouse"))

		require.NoError(t, err)
		assert.Equal(t, "Warehouse", g.Warehouse().Name())
		assert.True(t, g.Contains(loc(t, "Warehouse")))
	})

	t.Run("rejects unconstructed warehouse", func(t *testing.T) {
		var w kernel.Location

		_, err := routing.NewRouteGraph(w)

		require.Error(t, err)
	})
}

func TestRouteGraph_AddLocation(t *testing.T) {
	t.Run("registers a node", func(t *testing.T) {
		g, err := routing.NewRouteGraph(loc(t, "Warehouse"))
		require.NoError(t, err)

		require.NoError(t, g.AddLocation(loc(t, "Area A")))

		assert.True(t, g.Contains(loc(t, "Area A")))
	})

	t.Run("is idempotent", func(t *testing.T) {
		g, err := routing.NewRouteGraph(loc(t, "Warehouse"))
		require.NoError(t, err)

		require.NoError(t, g.AddLocation(loc(t, "Area A")))
		require.NoError(t, g.AddLocation(loc(t, "Area A")))

		assert.Len(t, g.Locations(), 2)
	})
}

func TestRouteGraph_AddRoute(t *testing.T) {
	t.Run("rejects negative travel time", func(t *testing.T) {
		g := seedGraph(t)

		err := g.AddRoute(loc(t, "Warehouse"), loc(t, "Area A"), -1*time.Minute)

		require.Error(t, err)
		require.ErrorIs(t, err, routing.ErrInvalidRoute)
	})

	t.Run("zero travel time is allowed", func(t *testing.T) {
		g := seedGraph(t)

		require.NoError(t, g.AddRoute(loc(t, "Area C"), loc(t, "Area D"), 0))
	})

	t.Run("rejects unregistered origin", func(t *testing.T) {
		g := seedGraph(t)

		err := g.AddRoute(loc(t, "Nowhere"), loc(t, "Area A"), time.Minute)

		require.ErrorIs(t, err, routing.ErrInvalidRoute)
	})

	t.Run("rejects unregistered destination", func(t *testing.T) {
		g := seedGraph(t)

		err := g.AddRoute(loc(t, "Area A"), loc(t, "Nowhere"), time.Minute)

		require.ErrorIs(t, err, routing.ErrInvalidRoute)
	})

	t.Run("redefining an edge updates its weight without duplicating the neighbor", func(t *testing.T) {
		g := seedGraph(t)

		require.NoError(t, g.AddRoute(loc(t, "Warehouse"), loc(t, "Area A"), 7*time.Minute))

		tm, err := g.TravelTime(loc(t, "Warehouse"), loc(t, "Area A"))
		require.NoError(t, err)
		assert.Equal(t, 7*time.Minute, tm)
		assert.Equal(t, []string{"Area A", "Area B"}, pathNames(g.Neighbors(loc(t, "Warehouse"))))
	})
}

func TestRouteGraph_ShortestPathBFS(t *testing.T) {
	t.Run("finds a two-hop path of length three", func(t *testing.T) {
		g := seedGraph(t)

		path, err := g.ShortestPathBFS(loc(t, "Warehouse"), loc(t, "Area C"))

		require.NoError(t, err)
		assert.Equal(t, []string{"Warehouse", "Area A", "Area C"}, pathNames(path))
	})

	t.Run("finds a direct neighbor", func(t *testing.T) {
		g := seedGraph(t)

		path, err := g.ShortestPathBFS(loc(t, "Warehouse"), loc(t, "Area B"))

		require.NoError(t, err)
		assert.Equal(t, []string{"Warehouse", "Area B"}, pathNames(path))
	})

	t.Run("path to self is the single node", func(t *testing.T) {
		g := seedGraph(t)

		path, err := g.ShortestPathBFS(loc(t, "Warehouse"), loc(t, "Warehouse"))

		require.NoError(t, err)
		assert.Equal(t, []string{"Warehouse"}, pathNames(path))
	})

	t.Run("disconnected destination is not reachable", func(t *testing.T) {
		g := seedGraph(t)
		require.NoError(t, g.AddLocation(loc(t, "Area X")))

		_, err := g.ShortestPathBFS(loc(t, "Warehouse"), loc(t, "Area X"))

		require.Error(t, err)
		require.ErrorIs(t, err, routing.ErrNotReachable)
	})

	t.Run("unregistered destination is not reachable", func(t *testing.T) {
		g := seedGraph(t)

		_, err := g.ShortestPathBFS(loc(t, "Warehouse"), loc(t, "Nowhere"))

		require.ErrorIs(t, err, routing.ErrNotReachable)
	})

	t.Run("prefers fewer hops over lighter edges", func(t *testing.T) {
		// Heavy direct edge vs light two-hop detour: BFS must take the
		// direct edge because hop count, not weight, decides.
		g, err := routing.NewRouteGraph(loc(t, "Warehouse"))
		require.NoError(t, err)
		for _, name := range []string{"Hub", "Target"} {
			require.NoError(t, g.AddLocation(loc(t, name)))
		}
		require.NoError(t, g.AddRoute(loc(t, "Warehouse"), loc(t, "Target"), 60*time.Minute))
		require.NoError(t, g.AddRoute(loc(t, "Warehouse"), loc(t, "Hub"), time.Minute))
		require.NoError(t, g.AddRoute(loc(t, "Hub"), loc(t, "Target"), time.Minute))

		path, err := g.ShortestPathBFS(loc(t, "Warehouse"), loc(t, "Target"))

		require.NoError(t, err)
		assert.Equal(t, []string{"Warehouse", "Target"}, pathNames(path))
	})

	t.Run("equal-hop tie breaks on adjacency insertion order", func(t *testing.T) {
		// Two length-2 paths to the same target; the neighbor added first
		// must win the discovery.
		g, err := routing.NewRouteGraph(loc(t, "Warehouse"))
		require.NoError(t, err)
		for _, name := range []string{"Left", "Right", "Target"} {
			require.NoError(t, g.AddLocation(loc(t, name)))
		}
		require.NoError(t, g.AddRoute(loc(t, "Warehouse"), loc(t, "Left"), time.Minute))
		require.NoError(t, g.AddRoute(loc(t, "Warehouse"), loc(t, "Right"), time.Minute))
		require.NoError(t, g.AddRoute(loc(t, "Left"), loc(t, "Target"), time.Minute))
		require.NoError(t, g.AddRoute(loc(t, "Right"), loc(t, "Target"), time.Minute))

		path, err := g.ShortestPathBFS(loc(t, "Warehouse"), loc(t, "Target"))

		require.NoError(t, err)
		assert.Equal(t, []string{"Warehouse", "Left", "Target"}, pathNames(path))
	})
}

func TestRouteGraph_TravelTime(t *testing.T) {
	t.Run("returns the direct edge weight", func(t *testing.T) {
		g := seedGraph(t)

		tm, err := g.TravelTime(loc(t, "Warehouse"), loc(t, "Area B"))

		require.NoError(t, err)
		assert.Equal(t, 4*time.Minute, tm)
	})

	t.Run("does not sum multi-hop paths", func(t *testing.T) {
		g := seedGraph(t)

		// Area C is reachable from the warehouse but only via Area A.
		_, err := g.TravelTime(loc(t, "Warehouse"), loc(t, "Area C"))

		require.Error(t, err)
		require.ErrorIs(t, err, routing.ErrEdgeNotFound)
	})

	t.Run("edges are directed", func(t *testing.T) {
		g := seedGraph(t)

		_, err := g.TravelTime(loc(t, "Area A"), loc(t, "Warehouse"))

		require.ErrorIs(t, err, routing.ErrEdgeNotFound)
	})
}

func TestRouteGraph_PathTravelTime(t *testing.T) {
	t.Run("sums edges along a path", func(t *testing.T) {
		g := seedGraph(t)
		path := []kernel.Location{loc(t, "Warehouse"), loc(t, "Area A"), loc(t, "Area C")}

		assert.Equal(t, 6*time.Minute, g.PathTravelTime(path))
	})

	t.Run("missing segments contribute zero", func(t *testing.T) {
		g := seedGraph(t)
		path := []kernel.Location{loc(t, "Warehouse"), loc(t, "Area C")}

		assert.Equal(t, time.Duration(0), g.PathTravelTime(path))
	})

	t.Run("short paths have zero travel time", func(t *testing.T) {
		g := seedGraph(t)

		assert.Equal(t, time.Duration(0), g.PathTravelTime(nil))
		assert.Equal(t, time.Duration(0), g.PathTravelTime([]kernel.Location{loc(t, "Warehouse")}))
	})
}

func TestRouteGraph_Listings(t *testing.T) {
	t.Run("locations keep registration order", func(t *testing.T) {
		g := seedGraph(t)

		assert.Equal(t,
			[]string{"Warehouse", "Area A", "Area B", "Area C", "Area D", "Area E", "Area F"},
			pathNames(g.Locations()))
	})

	t.Run("neighbors keep insertion order", func(t *testing.T) {
		g := seedGraph(t)

		assert.Equal(t, []string{"Area C", "Area D"}, pathNames(g.Neighbors(loc(t, "Area A"))))
		assert.Empty(t, g.Neighbors(loc(t, "Area F")))
	})
}
