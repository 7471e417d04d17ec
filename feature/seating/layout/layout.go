package layout

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"wedding-planner/feature/seating/models"
)

// Strategy selects one of the table placement algorithms.
type Strategy string

const (
	StrategyColumns  Strategy = "columns"
	StrategyCircular Strategy = "circular"
	StrategyAisle    Strategy = "aisle"
	StrategyUShape   Strategy = "u-shape"
	StrategyRandom   Strategy = "random"
	StrategyChevron  Strategy = "chevron"
)

// Strategies lists every placement strategy in presentation order.
var Strategies = []Strategy{
	StrategyColumns,
	StrategyCircular,
	StrategyAisle,
	StrategyUShape,
	StrategyRandom,
	StrategyChevron,
}

// ErrUnknownStrategy is returned for strategy names Place cannot handle.
var ErrUnknownStrategy = errors.New("unknown layout strategy")

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownStrategy, name)
}

// Placement constants shared by all strategies. Distances are in hall
// units (centimeters).
const (
	// TableDiameter is the diameter of a standard round table.
	TableDiameter = 120.0

	// AbsoluteMinSpacing is the floor below which table edges may never
	// be brought, even when the hall is too small for the ideal spacing.
	// Under pressure the positions are clamped at this floor and the
	// layout may logically overflow the hall; that trade-off is accepted
	// rather than reported as an error.
	AbsoluteMinSpacing = 100.0

	// ideal spacing used when the hall has room for it
	minSpacing = 120.0
)

// Engine places tables into a rectangular hall.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an engine with a time-seeded source for the random
// strategy.
func NewEngine() *Engine {
	return NewSeededEngine(time.Now().UnixNano())
}

// NewSeededEngine creates an engine with a fixed seed, for reproducible
// random layouts.
func NewSeededEngine(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// Place positions every table inside the hall using the given strategy.
// The input is not modified; returned tables carry x/y coordinates, the
// standard diameter, and circle shape. Every strategy keeps pairwise
// center distance at or above AbsoluteMinSpacing.
func (e *Engine) Place(tables []models.Table, strategy Strategy, hall models.HallSize) []models.Table {
	if len(tables) == 0 {
		return []models.Table{}
	}

	switch strategy {
	case StrategyCircular:
		return e.placeCircular(tables, hall)
	case StrategyAisle:
		return e.placeAisle(tables, hall)
	case StrategyUShape:
		return e.placeUShape(tables, hall)
	case StrategyRandom:
		return e.placeRandom(tables, hall)
	case StrategyChevron:
		return e.placeChevron(tables, hall)
	default:
		return e.placeColumns(tables, hall)
	}
}

// gridDimensions returns the near-square grid for n tables.
func gridDimensions(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return rows, cols
}

// placed returns a copy of the table annotated with a position and the
// rendering defaults every strategy shares.
func placed(t models.Table, x, y float64) models.Table {
	t.X = x
	t.Y = y
	t.Diameter = TableDiameter
	t.Shape = "circle"
	t.TableType = "round"
	t.AutoCapacity = false
	if t.Seats == 0 {
		t.Seats = models.DefaultTableCapacity
	}
	return t
}
