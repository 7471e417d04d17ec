package layout

import (
	"fmt"

	"wedding-planner/feature/seating/capacity"
	"wedding-planner/feature/seating/models"
)

// GenerateAutoLayout builds a full hall layout. An existing table set is
// authoritative and placed as-is; otherwise tables are inferred from
// guest references, and when no guest references a table a default set
// is derived from the guest count.
func (e *Engine) GenerateAutoLayout(guests []models.Guest, existing []models.Table, strategy Strategy, hall models.HallSize) models.LayoutResult {
	analysis := AnalyzeGuestAssignments(guests)

	tables := existing
	if len(tables) == 0 {
		tables = analysis.TableSet()
	}
	totalTables := len(tables)

	if totalTables == 0 {
		if analysis.TotalGuests == 0 {
			return models.LayoutResult{
				Tables:           []models.Table{},
				UnassignedGuests: []models.Guest{},
				Message:          "no guests to generate tables from",
			}
		}
		tables = capacity.DeriveTables(analysis.TotalGuests)
		totalTables = len(tables)
	}

	return models.LayoutResult{
		Tables:           e.Place(tables, strategy, hall),
		UnassignedGuests: analysis.UnassignedGuests,
		TotalTables:      totalTables,
		TotalAssigned:    analysis.TotalAssigned,
		Message: fmt.Sprintf("%d tables generated with %d guests assigned",
			totalTables, analysis.TotalAssigned),
	}
}
