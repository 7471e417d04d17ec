package layout

import (
	"fmt"

	"wedding-planner/feature/seating/models"
)

// TableGroup is a table inferred from guest assignments, with the guests
// that reference it.
type TableGroup struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Guests     []models.Guest `json:"guests"`
	TotalSeats int            `json:"totalSeats"`
}

// Analysis is the outcome of grouping guests by their table references.
type Analysis struct {
	Tables           []TableGroup
	UnassignedGuests []models.Guest
	TotalTables      int
	TotalAssigned    int
	TotalGuests      int
}

// AnalyzeGuestAssignments groups guests by table reference, using the
// table id or falling back to the legacy free-text table name. Seats per
// group count the guest plus companions; guests with neither reference
// are listed as unassigned.
//
// Note this seat count includes companions while capacity.Index's
// occupancy does not; the divergence is deliberate (see DESIGN.md).
func AnalyzeGuestAssignments(guests []models.Guest) Analysis {
	groups := make([]TableGroup, 0)
	indexByKey := make(map[string]int)
	unassigned := make([]models.Guest, 0)

	for _, guest := range guests {
		key := guest.TableID
		if key == "" {
			key = guest.TableName
		}
		if key == "" {
			unassigned = append(unassigned, guest)
			continue
		}

		idx, ok := indexByKey[key]
		if !ok {
			id := guest.TableID
			if id == "" {
				id = key
			}
			name := guest.TableName
			if name == "" {
				name = fmt.Sprintf("Table %s", key)
			}
			groups = append(groups, TableGroup{ID: id, Name: name})
			idx = len(groups) - 1
			indexByKey[key] = idx
		}

		groups[idx].Guests = append(groups[idx].Guests, guest)
		groups[idx].TotalSeats += guest.SeatCount()
	}

	return Analysis{
		Tables:           groups,
		UnassignedGuests: unassigned,
		TotalTables:      len(groups),
		TotalAssigned:    len(guests) - len(unassigned),
		TotalGuests:      len(guests),
	}
}

// TableSet converts the inferred groups into placeable tables.
func (a Analysis) TableSet() []models.Table {
	tables := make([]models.Table, 0, len(a.Tables))
	for _, group := range a.Tables {
		tables = append(tables, models.Table{
			ID:    group.ID,
			Name:  group.Name,
			Seats: group.TotalSeats,
		})
	}
	return tables
}
