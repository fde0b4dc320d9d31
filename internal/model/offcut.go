package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut represents a usable rectangular remnant left on a board after
// the cutting plan is executed.
type Offcut struct {
	ID         string  `json:"id"`
	Material   string  `json:"material"`
	BoardIndex int     `json:"board_index"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Value      float64 `json:"value"` // board cost prorated by area
}

// Area returns the offcut area in square mm.
func (o Offcut) Area() float64 {
	return o.Width * o.Height
}

// MinOffcutDimension is the minimum width or height (in mm) for a remnant
// to be considered usable. Smaller remnants are waste.
const MinOffcutDimension = 50.0

// MinOffcutArea is the minimum area (in sq mm) for a usable remnant.
const MinOffcutArea = 10000.0

// DetectOffcuts identifies the rectangular remnant strips of a board:
// the strip right of the widest row and the strip below the last row.
// The shelf layout guarantees both are clear of placed items.
func DetectOffcuts(b *BoardLayout) []Offcut {
	boardW := b.Width()
	boardL := b.Length()

	if len(b.Rows) == 0 {
		return []Offcut{{
			ID:         uuid.New().String()[:8],
			Material:   b.Material.Name,
			BoardIndex: b.Index,
			Width:      boardW,
			Height:     boardL,
			Value:      b.Material.Cost,
		}}
	}

	usedW := b.UsedWidth() + b.Kerf
	usedL := b.UsedLength() + b.Kerf

	var offcuts []Offcut

	// Right strip: clear of items over the full used length.
	rightW := boardW - usedW
	if rightW >= MinOffcutDimension && usedL >= MinOffcutDimension && rightW*usedL >= MinOffcutArea {
		offcuts = append(offcuts, Offcut{
			ID:         uuid.New().String()[:8],
			Material:   b.Material.Name,
			BoardIndex: b.Index,
			X:          usedW,
			Y:          0,
			Width:      rightW,
			Height:     usedL,
		})
	}

	// Bottom strip below the last row, spanning the full board width.
	bottomH := boardL - usedL
	if bottomH >= MinOffcutDimension && boardW >= MinOffcutDimension && bottomH*boardW >= MinOffcutArea {
		offcuts = append(offcuts, Offcut{
			ID:         uuid.New().String()[:8],
			Material:   b.Material.Name,
			BoardIndex: b.Index,
			X:          0,
			Y:          usedL,
			Width:      boardW,
			Height:     bottomH,
		})
	}

	// Prorate the board price over the remnant area.
	if b.Material.Cost > 0 {
		boardArea := b.Material.Area()
		for i := range offcuts {
			offcuts[i].Value = (offcuts[i].Area() / boardArea) * b.Material.Cost
		}
	}

	sort.Slice(offcuts, func(i, j int) bool {
		return offcuts[i].Area() > offcuts[j].Area()
	})

	return offcuts
}

// DetectAllOffcuts finds offcuts across every board of a plan, in plan
// order.
func DetectAllOffcuts(plan CutPlan) []Offcut {
	var all []Offcut
	for _, b := range plan.AllBoards() {
		all = append(all, DetectOffcuts(b)...)
	}
	return all
}

// TotalOffcutArea returns the summed area of the given offcuts.
func TotalOffcutArea(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Area()
	}
	return total
}
