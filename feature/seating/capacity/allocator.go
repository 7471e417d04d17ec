package capacity

import (
	"fmt"

	"wedding-planner/feature/seating/models"

	"github.com/google/uuid"
)

// DeriveTables builds a default table set from a raw guest count, used
// when a wedding has guests but no tables yet. One table is created per
// started group of GuestsPerTable guests, each seeded with that
// capacity.
func DeriveTables(totalGuests int) []models.Table {
	if totalGuests <= 0 {
		return nil
	}

	numTables := (totalGuests + models.GuestsPerTable - 1) / models.GuestsPerTable
	tables := make([]models.Table, 0, numTables)
	for i := 0; i < numTables; i++ {
		tables = append(tables, models.Table{
			ID:        uuid.NewString(),
			Name:      fmt.Sprintf("Table %d", i+1),
			Capacity:  models.GuestsPerTable,
			Seats:     models.GuestsPerTable,
			Shape:     "circle",
			TableType: "round",
			Enabled:   true,
		})
	}
	return tables
}
