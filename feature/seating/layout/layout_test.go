package layout_test

import (
	"fmt"
	"math"
	"testing"

	"wedding-planner/feature/seating/layout"
	"wedding-planner/feature/seating/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTables(n int) []models.Table {
	tables := make([]models.Table, 0, n)
	for i := 0; i < n; i++ {
		tables = append(tables, models.Table{
			ID:   fmt.Sprintf("t%d", i+1),
			Name: fmt.Sprintf("Table %d", i+1),
		})
	}
	return tables
}

func distance(a, b models.Table) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Every strategy must keep pairwise center distance at or above the
// absolute floor and stay inside the hall for any realistic table count.
func TestPlace_SpacingFloorAndBounds(t *testing.T) {
	hall := models.HallSize{Width: 4000, Height: 3000}
	engine := layout.NewSeededEngine(1)

	for _, strategy := range layout.Strategies {
		t.Run(string(strategy), func(t *testing.T) {
			for n := 1; n <= 50; n++ {
				placed := engine.Place(makeTables(n), strategy, hall)
				require.Len(t, placed, n)

				for i := range placed {
					assert.GreaterOrEqual(t, placed[i].X, 99.0,
						"strategy %s n=%d table %d x", strategy, n, i)
					assert.LessOrEqual(t, placed[i].X, hall.Width-99.0,
						"strategy %s n=%d table %d x", strategy, n, i)
					assert.GreaterOrEqual(t, placed[i].Y, 99.0,
						"strategy %s n=%d table %d y", strategy, n, i)
					assert.LessOrEqual(t, placed[i].Y, hall.Height-99.0,
						"strategy %s n=%d table %d y", strategy, n, i)

					for j := i + 1; j < len(placed); j++ {
						d := distance(placed[i], placed[j])
						assert.GreaterOrEqual(t, d, 100.0-1e-9,
							"strategy %s n=%d tables %d/%d too close", strategy, n, i, j)
					}
				}
			}
		})
	}
}

func TestPlace_Annotations(t *testing.T) {
	engine := layout.NewSeededEngine(1)
	placed := engine.Place(makeTables(4), layout.StrategyColumns, models.HallSize{Width: 1800, Height: 1200})

	for _, table := range placed {
		assert.Equal(t, 120.0, table.Diameter)
		assert.Equal(t, "circle", table.Shape)
		assert.Equal(t, models.DefaultTableCapacity, table.Seats)
	}
}

func TestPlace_Empty(t *testing.T) {
	engine := layout.NewSeededEngine(1)
	placed := engine.Place(nil, layout.StrategyColumns, models.HallSize{Width: 1000, Height: 800})
	assert.Empty(t, placed)
}

func TestPlaceColumns_CenteredGrid(t *testing.T) {
	engine := layout.NewSeededEngine(1)
	placed := engine.Place(makeTables(5), layout.StrategyColumns, models.HallSize{Width: 1800, Height: 1200})
	require.Len(t, placed, 5)

	// 5 tables form a 3-column, 2-row grid centered in the hall.
	assert.Equal(t, 660.0, placed[0].X)
	assert.Equal(t, 900.0, placed[1].X)
	assert.Equal(t, 1140.0, placed[2].X)
	assert.Equal(t, placed[0].Y, placed[1].Y)
	assert.Equal(t, 480.0, placed[0].Y)
	assert.Equal(t, 720.0, placed[3].Y)
	// Second row reuses the column positions.
	assert.Equal(t, placed[0].X, placed[3].X)
}

func TestPlaceCircular_RadiusCap(t *testing.T) {
	hall := models.HallSize{Width: 200, Height: 200}
	engine := layout.NewSeededEngine(1)
	placed := engine.Place(makeTables(3), layout.StrategyCircular, hall)

	// The circumference-derived radius exceeds the 0.4×min(dim) cap, so
	// every table sits exactly 80 units from the hall center.
	for _, table := range placed {
		d := math.Hypot(table.X-100, table.Y-100)
		assert.InDelta(t, 80.0, d, 1e-9)
	}

	// First table at the top, then clockwise.
	assert.InDelta(t, 100.0, placed[0].X, 1e-9)
	assert.InDelta(t, 20.0, placed[0].Y, 1e-9)
	assert.Greater(t, placed[1].X, 100.0)
}

func TestPlaceUShape_ColumnStaysAboveBottomRow(t *testing.T) {
	hall := models.HallSize{Width: 4000, Height: 3000}
	engine := layout.NewSeededEngine(1)

	for _, n := range []int{9, 24, 50} {
		placed := engine.Place(makeTables(n), layout.StrategyUShape, hall)
		bottomY := hall.Height - 120 - 60
		for i, table := range placed {
			if table.X == hall.Width-120-60 { // right column
				assert.Less(t, table.Y, bottomY, "n=%d table %d", n, i)
			}
		}
	}
}

func TestPlaceRandom_Deterministic(t *testing.T) {
	hall := models.HallSize{Width: 3000, Height: 2000}
	a := layout.NewSeededEngine(42).Place(makeTables(12), layout.StrategyRandom, hall)
	b := layout.NewSeededEngine(42).Place(makeTables(12), layout.StrategyRandom, hall)
	assert.Equal(t, a, b)
}

func TestParseStrategy(t *testing.T) {
	for _, s := range layout.Strategies {
		parsed, err := layout.ParseStrategy(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := layout.ParseStrategy("spiral")
	require.Error(t, err)
	assert.ErrorIs(t, err, layout.ErrUnknownStrategy)
}
