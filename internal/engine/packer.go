// Package engine builds cutting plans: it assigns items to materials and
// packs item units onto boards using a greedy shelf/row strategy with
// kerf spacing. The placement search order is deterministic on purpose;
// reports and billing depend on reproducing the same layout for the same
// input every time.
package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/cutplan/internal/model"
	"github.com/piwi3910/cutplan/internal/wrap"
)

// Packer packs the items of a single material onto boards.
type Packer struct {
	Kerf             float64 // saw blade width in mm
	EnforceWrapRules bool
}

func NewPacker(kerf float64, enforce bool) *Packer {
	return &Packer{Kerf: kerf, EnforceWrapRules: enforce}
}

// BuildBoards expands item quantities into unit placements, sorts them
// largest-first, and places each unit with a first-fit search over open
// boards: existing rows on every open board first, then a fresh row on
// every open board, then a brand-new board. Board creation order, row
// order, and candidate order (non-rotated first) are all significant.
func (p *Packer) BuildBoards(material model.MaterialSpec, items []model.ItemSpec) ([]*model.BoardLayout, error) {
	// Expand quantities into independent unit requests.
	var units []model.ItemSpec
	for _, it := range items {
		for i := 0; i < it.Quantity; i++ {
			unit := it
			unit.Quantity = 1
			units = append(units, unit)
		}
	}

	// Largest units first; the stable sort keeps input order for ties.
	sort.SliceStable(units, func(i, j int) bool {
		return maxDim(units[i]) > maxDim(units[j])
	})

	var boards []*model.BoardLayout

	for _, unit := range units {
		candidates, _ := wrap.Candidates(unit, p.EnforceWrapRules)
		if len(candidates) == 0 {
			// Validation normally catches this before packing starts.
			return nil, fmt.Errorf("item %q has no valid orientation", unit.Name)
		}

		if p.placeOnOpenBoards(boards, unit, candidates) {
			continue
		}

		board, err := p.placeOnNewBoard(material, len(boards), unit, candidates)
		if err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}

	return boards, nil
}

func maxDim(it model.ItemSpec) float64 {
	if it.Length > it.Width {
		return it.Length
	}
	return it.Width
}

// placeOnOpenBoards runs the two-phase first-fit search over the already
// open boards: every existing row on every board first, then a new row
// on every board. Returns true once the unit is placed.
func (p *Packer) placeOnOpenBoards(boards []*model.BoardLayout, unit model.ItemSpec, candidates []model.Orientation) bool {
	// Phase 1: existing rows, board creation order, candidate order,
	// rows top to bottom.
	for _, b := range boards {
		for _, c := range candidates {
			for _, row := range b.Rows {
				if p.tryPlaceOnRow(b, row, unit, c) {
					return true
				}
			}
		}
	}

	// Phase 2: open a new row below the last one.
	for _, b := range boards {
		for _, c := range candidates {
			if !p.newRowFits(b, c) {
				continue
			}
			row := p.startNewRow(b, c.Height)
			if !p.tryPlaceOnRow(b, row, unit, c) {
				// Cannot happen: newRowFits checked both dimensions.
				continue
			}
			return true
		}
	}

	return false
}

// newRowFits reports whether a row of the candidate's height fits below
// the board's last row (plus a horizontal kerf when a row exists) and
// the candidate's width fits the empty row.
func (p *Packer) newRowFits(b *model.BoardLayout, c model.Orientation) bool {
	needed := b.UsedLength() + c.Height
	if len(b.Rows) > 0 {
		needed += p.Kerf
	}
	return needed <= b.Length() && c.Width <= b.Width()
}

// placeOnNewBoard opens a fresh board and places the unit as the first
// item of its first row, using the first candidate that fits the raw
// board dimensions.
func (p *Packer) placeOnNewBoard(material model.MaterialSpec, index int, unit model.ItemSpec, candidates []model.Orientation) (*model.BoardLayout, error) {
	board := model.NewBoardLayout(material, index, p.Kerf)
	for _, c := range candidates {
		if c.Width <= material.Width && c.Height <= material.Length {
			row := p.startNewRow(board, c.Height)
			p.tryPlaceOnRow(board, row, unit, c)
			return board, nil
		}
	}
	return nil, fmt.Errorf("item %q cannot fit even on an empty board of material %q", unit.Name, material.Name)
}

// tryPlaceOnRow places the unit into an existing row when the oriented
// height matches the row height exactly and the remaining horizontal
// space holds the oriented width plus a kerf gap for non-first items.
// A vertical CutRect is recorded ahead of every non-first item.
func (p *Packer) tryPlaceOnRow(b *model.BoardLayout, row *model.RowLayout, unit model.ItemSpec, c model.Orientation) bool {
	if c.Height != row.Height {
		return false
	}

	needed := c.Width
	if len(row.Items) > 0 {
		needed += p.Kerf
	}
	if row.XCursor+needed > row.BoardWidth {
		return false
	}

	if len(row.Items) > 0 {
		b.CutRects = append(b.CutRects, model.CutRect{
			X:           row.XCursor,
			Y:           row.Y,
			Width:       p.Kerf,
			Height:      row.Height,
			CutLength:   row.Height,
			Orientation: model.CutVertical,
		})
		row.XCursor += p.Kerf
	}

	placed := model.PlacedItem{
		Spec:       unit,
		Material:   b.Material.Name,
		BoardIndex: b.Index,
		X:          row.XCursor,
		Y:          row.Y,
		Width:      c.Width,
		Height:     c.Height,
		Rotated:    c.Rotated,
	}
	row.Items = append(row.Items, placed)
	b.PlacedItems = append(b.PlacedItems, placed)
	row.XCursor += c.Width

	return true
}

// startNewRow appends a row of the given height at the next free Y
// offset, recording a full-width horizontal CutRect below the previous
// row when one exists.
func (p *Packer) startNewRow(b *model.BoardLayout, height float64) *model.RowLayout {
	var y float64
	if len(b.Rows) > 0 {
		prev := b.Rows[len(b.Rows)-1]
		b.CutRects = append(b.CutRects, model.CutRect{
			X:           0,
			Y:           prev.Bottom(),
			Width:       b.Width(),
			Height:      p.Kerf,
			CutLength:   b.Width(),
			Orientation: model.CutHorizontal,
		})
		y = prev.Bottom() + p.Kerf
	}

	row := &model.RowLayout{
		Y:          y,
		Height:     height,
		BoardWidth: b.Width(),
	}
	b.Rows = append(b.Rows, row)
	return row
}
