package layout

import (
	"math"

	"wedding-planner/feature/seating/models"
)

// placeColumns lays tables out on a centered near-square grid. Spacing
// shrinks proportionally when the hall is tight but never below the
// absolute floor.
func (e *Engine) placeColumns(tables []models.Table, hall models.HallSize) []models.Table {
	_, cols := gridDimensions(len(tables))
	rows := (len(tables) + cols - 1) / cols

	const marginX, marginY = 120.0, 160.0

	availableWidth := hall.Width - marginX*2
	availableHeight := hall.Height - marginY*2
	totalTableWidth := float64(cols)*TableDiameter + float64(cols-1)*minSpacing
	totalTableHeight := float64(rows)*TableDiameter + float64(rows-1)*minSpacing

	spacingX := minSpacing
	if totalTableWidth > availableWidth {
		spacingX = math.Max(AbsoluteMinSpacing,
			(availableWidth-float64(cols)*TableDiameter)/math.Max(float64(cols-1), 1))
	}
	spacingY := minSpacing
	if totalTableHeight > availableHeight {
		spacingY = math.Max(AbsoluteMinSpacing,
			(availableHeight-float64(rows)*TableDiameter)/math.Max(float64(rows-1), 1))
	}

	// Center the grid in the hall.
	startX := marginX + (availableWidth-(float64(cols)*TableDiameter+float64(cols-1)*spacingX))/2
	startY := marginY + (availableHeight-(float64(rows)*TableDiameter+float64(rows-1)*spacingY))/2

	out := make([]models.Table, 0, len(tables))
	for i, t := range tables {
		row := i / cols
		col := i % cols
		out = append(out, placed(t,
			startX+TableDiameter/2+float64(col)*(TableDiameter+spacingX),
			startY+TableDiameter/2+float64(row)*(TableDiameter+spacingY),
		))
	}
	return out
}

// placeCircular spaces tables evenly around a circle. The radius keeps
// arc spacing at the floor value, capped at 40% of the smaller hall
// dimension. The first table sits at the top, then clockwise.
func (e *Engine) placeCircular(tables []models.Table, hall models.HallSize) []models.Table {
	centerX := hall.Width / 2
	centerY := hall.Height / 2

	circumference := float64(len(tables)) * (TableDiameter + AbsoluteMinSpacing)
	calculatedRadius := circumference / (2 * math.Pi)
	maxRadius := math.Min(hall.Width, hall.Height) * 0.4
	radius := math.Min(calculatedRadius, maxRadius)

	angleStep := 2 * math.Pi / float64(len(tables))

	out := make([]models.Table, 0, len(tables))
	for i, t := range tables {
		angle := float64(i)*angleStep - math.Pi/2
		out = append(out, placed(t,
			centerX+radius*math.Cos(angle),
			centerY+radius*math.Sin(angle),
		))
	}
	return out
}

// placeAisle builds two column blocks separated by a fixed central
// aisle. Tables fill the left block of each row before the right block.
func (e *Engine) placeAisle(tables []models.Table, hall models.HallSize) []models.Table {
	rows, _ := gridDimensions(len(tables))
	colsPerSide := int(math.Ceil(float64(len(tables)) / float64(rows) / 2))

	const (
		marginX    = 100.0
		marginY    = 160.0
		aisleWidth = 250.0
	)
	sideWidth := (hall.Width - marginX*2 - aisleWidth) / 2

	spacingX := minSpacing
	if colsPerSide > 1 {
		availablePerSide := sideWidth - TableDiameter
		spacingX = math.Max(AbsoluteMinSpacing, availablePerSide/float64(colsPerSide))
	}
	spacingY := minSpacing
	if rows > 1 {
		availableHeight := hall.Height - marginY*2 - float64(rows)*TableDiameter
		spacingY = math.Max(AbsoluteMinSpacing, availableHeight/float64(rows))
	}

	out := make([]models.Table, 0, len(tables))
	for i, t := range tables {
		row := i / (colsPerSide * 2)
		leftSide := i%(colsPerSide*2) < colsPerSide
		colInSide := i % colsPerSide

		var x float64
		if leftSide {
			x = marginX + TableDiameter/2 + float64(colInSide)*(TableDiameter+spacingX)
		} else {
			x = marginX + sideWidth + aisleWidth + TableDiameter/2 +
				float64(colInSide)*(TableDiameter+spacingX)
		}
		y := marginY + TableDiameter/2 + float64(row)*(TableDiameter+spacingY)
		out = append(out, placed(t, x, y))
	}
	return out
}

// placeUShape distributes tables across three sides: a top row, a right
// column, and a bottom row filled right to left. The column height is
// divided by its own table count so the U closes without the right side
// running into the bottom row.
func (e *Engine) placeUShape(tables []models.Table, hall models.HallSize) []models.Table {
	const margin = 120.0
	n := len(tables)
	tablesPerSide := int(math.Ceil(float64(n) / 3))

	availableWidth := hall.Width - margin*2 - TableDiameter
	availableHeight := hall.Height - margin*2 - TableDiameter

	spacingX := minSpacing
	if tablesPerSide > 1 {
		spacingX = math.Max(AbsoluteMinSpacing, availableWidth/float64(tablesPerSide))
	}

	topCount := tablesPerSide
	if topCount > n {
		topCount = n
	}
	rightCount := (n - topCount + 1) / 2
	bottomCount := n - topCount - rightCount

	spacingY := minSpacing
	if rightCount > 0 {
		spacingY = math.Max(AbsoluteMinSpacing, availableHeight/float64(rightCount+1))
	}

	type point struct{ x, y float64 }
	positions := make([]point, 0, n)

	// Top side, left to right.
	for i := 0; i < topCount; i++ {
		positions = append(positions, point{
			x: margin + TableDiameter/2 + float64(i)*spacingX,
			y: margin + TableDiameter/2,
		})
	}
	// Right side, top to bottom.
	for i := 0; i < rightCount; i++ {
		positions = append(positions, point{
			x: hall.Width - margin - TableDiameter/2,
			y: margin + TableDiameter/2 + float64(i+1)*spacingY,
		})
	}
	// Bottom side, right to left.
	for i := 0; i < bottomCount; i++ {
		positions = append(positions, point{
			x: hall.Width - margin - TableDiameter/2 - float64(i+1)*spacingX,
			y: hall.Height - margin - TableDiameter/2,
		})
	}

	out := make([]models.Table, 0, n)
	for i, t := range tables {
		out = append(out, placed(t, positions[i].x, positions[i].y))
	}
	return out
}

// placeRandom scatters tables by rejection sampling: sample a point
// within margins and accept it when every already-placed center is at
// least a table diameter plus clearance away. After maxAttempts failures
// the table falls back to a deterministic grid slot.
func (e *Engine) placeRandom(tables []models.Table, hall models.HallSize) []models.Table {
	const (
		margin      = 120.0
		minDistance = TableDiameter + 80
		maxAttempts = 200
	)

	type point struct{ x, y float64 }
	positions := make([]point, 0, len(tables))

	cols := int(math.Ceil(math.Sqrt(float64(len(tables)))))

	for range tables {
		var pos *point
		for attempts := 0; pos == nil && attempts < maxAttempts; attempts++ {
			testX := margin + TableDiameter/2 + e.rng.Float64()*(hall.Width-margin*2-TableDiameter)
			testY := margin + TableDiameter/2 + e.rng.Float64()*(hall.Height-margin*2-TableDiameter)

			tooClose := false
			for _, p := range positions {
				dx := testX - p.x
				dy := testY - p.y
				if math.Sqrt(dx*dx+dy*dy) < minDistance {
					tooClose = true
					break
				}
			}
			if !tooClose {
				pos = &point{x: testX, y: testY}
			}
		}

		if pos == nil {
			gridIndex := len(positions)
			row := gridIndex / cols
			col := gridIndex % cols
			pos = &point{
				x: margin + TableDiameter/2 + float64(col)*(TableDiameter+AbsoluteMinSpacing),
				y: margin + TableDiameter/2 + float64(row)*(TableDiameter+AbsoluteMinSpacing),
			}
		}
		positions = append(positions, *pos)
	}

	out := make([]models.Table, 0, len(tables))
	for i, t := range tables {
		out = append(out, placed(t, positions[i].x, positions[i].y))
	}
	return out
}

// placeChevron is the columns grid with alternating rows shifted
// sideways to form a zigzag.
func (e *Engine) placeChevron(tables []models.Table, hall models.HallSize) []models.Table {
	rows, _ := gridDimensions(len(tables))
	tablesPerRow := (len(tables) + rows - 1) / rows

	const (
		marginX       = 120.0
		marginY       = 160.0
		chevronMin    = 100.0
		chevronOffset = 80.0
	)

	availableWidth := hall.Width - marginX*2 - chevronOffset*2
	availableHeight := hall.Height - marginY*2
	totalTableWidth := float64(tablesPerRow)*TableDiameter + float64(tablesPerRow-1)*chevronMin
	totalTableHeight := float64(rows)*TableDiameter + float64(rows-1)*chevronMin

	spacingX := chevronMin
	if totalTableWidth > availableWidth {
		spacingX = math.Max(AbsoluteMinSpacing,
			(availableWidth-float64(tablesPerRow)*TableDiameter)/math.Max(float64(tablesPerRow-1), 1))
	}
	spacingY := chevronMin
	if totalTableHeight > availableHeight {
		spacingY = math.Max(AbsoluteMinSpacing,
			(availableHeight-float64(rows)*TableDiameter)/math.Max(float64(rows-1), 1))
	}

	startX := marginX + TableDiameter/2
	startY := marginY + TableDiameter/2

	out := make([]models.Table, 0, len(tables))
	for i, t := range tables {
		row := i / tablesPerRow
		col := i % tablesPerRow

		offset := chevronOffset
		if row%2 != 0 {
			offset = -chevronOffset
		}
		out = append(out, placed(t,
			startX+float64(col)*(TableDiameter+spacingX)+offset,
			startY+float64(row)*(TableDiameter+spacingY),
		))
	}
	return out
}
