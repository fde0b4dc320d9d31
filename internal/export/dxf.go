package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/piwi3910/cutplan/internal/model"
)

// boardGap is the horizontal spacing between boards in the DXF output, mm.
const boardGap = 100.0

// ExportDXF writes the plan as a DXF drawing for CAD viewers: board
// outlines, item rectangles and kerf cut lines on separate layers,
// boards laid out side by side in plan order.
func ExportDXF(path string, plan model.CutPlan) error {
	boards := plan.AllBoards()
	if len(boards) == 0 {
		return fmt.Errorf("no boards to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("BOARDS", dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
		return err
	}
	if _, err := d.AddLayer("ITEMS", color.Green, table.LT_CONTINUOUS, false); err != nil {
		return err
	}
	if _, err := d.AddLayer("CUTS", color.Red, table.LT_CONTINUOUS, false); err != nil {
		return err
	}

	var offsetX float64
	for _, b := range boards {
		if err := drawBoard(d, b, offsetX); err != nil {
			return err
		}
		offsetX += b.Width() + boardGap
	}

	return d.SaveAs(path)
}

// drawBoard renders one board at the given horizontal offset. The Y axis
// is flipped so the board's top-left maps to DXF's upward-positive
// coordinate system.
func drawBoard(d *drawing.Drawing, b *model.BoardLayout, offsetX float64) error {
	length := b.Length()

	if err := d.ChangeLayer("BOARDS"); err != nil {
		return err
	}
	if err := drawRect(d, offsetX, 0, b.Width(), length, length); err != nil {
		return err
	}

	if err := d.ChangeLayer("ITEMS"); err != nil {
		return err
	}
	for _, p := range b.PlacedItems {
		if err := drawRect(d, offsetX+p.X, p.Y, p.Width, p.Height, length); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer("CUTS"); err != nil {
		return err
	}
	for _, cr := range b.CutRects {
		// A single line along the cut center is enough for the saw.
		var x1, y1, x2, y2 float64
		if cr.Orientation == model.CutHorizontal {
			x1, y1 = cr.X, cr.Y+cr.Height/2
			x2, y2 = cr.X+cr.Width, y1
		} else {
			x1, y1 = cr.X+cr.Width/2, cr.Y
			x2, y2 = x1, cr.Y+cr.Height
		}
		if _, err := d.Line(offsetX+x1, length-y1, 0, offsetX+x2, length-y2, 0); err != nil {
			return err
		}
	}

	return nil
}

// drawRect draws an axis-aligned rectangle as four lines, flipping Y
// within a board of the given length.
func drawRect(d *drawing.Drawing, x, y, w, h, boardLength float64) error {
	top := boardLength - y
	bottom := boardLength - (y + h)

	lines := [][4]float64{
		{x, top, x + w, top},
		{x + w, top, x + w, bottom},
		{x + w, bottom, x, bottom},
		{x, bottom, x, top},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}
