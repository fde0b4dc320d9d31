package model

// RowLayout is one horizontal shelf on a board. Its Y offset and height
// are fixed when the row is created from its first item; items are
// appended left to right and must match the row height exactly.
type RowLayout struct {
	Y          float64      `json:"y"`
	Height     float64      `json:"height"`
	BoardWidth float64      `json:"board_width"`
	XCursor    float64      `json:"x_cursor"` // next free horizontal offset
	Items      []PlacedItem `json:"items"`
}

// ItemWidthSum returns the summed widths of the items in the row,
// ignoring kerf gaps.
func (r *RowLayout) ItemWidthSum() float64 {
	var total float64
	for _, it := range r.Items {
		total += it.Width
	}
	return total
}

// Bottom returns the row's bottom edge (Y + height).
func (r *RowLayout) Bottom() float64 {
	return r.Y + r.Height
}

// BoardClass is the billing classification of a finished board.
type BoardClass int

const (
	BoardFull       BoardClass = iota // whole board consumed
	BoardNarrowHalf                   // fits within (L/2, W)
	BoardWideHalf                     // fits within (L, W/2)
)

func (c BoardClass) String() string {
	switch c {
	case BoardNarrowHalf:
		return "narrow half"
	case BoardWideHalf:
		return "wide half"
	default:
		return "full"
	}
}

// IsHalf reports whether the class bills as half a board.
func (c BoardClass) IsHalf() bool {
	return c == BoardNarrowHalf || c == BoardWideHalf
}

// BoardLayout is one physical board instance. Created empty by the
// packer, mutated only by appending rows, items and cut rects during the
// packing pass, read-only afterward.
type BoardLayout struct {
	Material    MaterialSpec `json:"material"`
	Index       int          `json:"index"` // unique within the material group
	Kerf        float64      `json:"kerf"`
	Rows        []*RowLayout `json:"rows"`
	PlacedItems []PlacedItem `json:"placed_items"`
	CutRects    []CutRect    `json:"cut_rects"`
}

func NewBoardLayout(material MaterialSpec, index int, kerf float64) *BoardLayout {
	return &BoardLayout{
		Material: material,
		Index:    index,
		Kerf:     kerf,
	}
}

// Width returns the board's horizontal dimension in mm.
func (b *BoardLayout) Width() float64 {
	return b.Material.Width
}

// Length returns the board's vertical dimension in mm.
func (b *BoardLayout) Length() float64 {
	return b.Material.Length
}

// UsedLength returns the bottom edge of the last row, or 0 for an empty
// board.
func (b *BoardLayout) UsedLength() float64 {
	if len(b.Rows) == 0 {
		return 0
	}
	return b.Rows[len(b.Rows)-1].Bottom()
}

// UsedWidth returns the maximum summed item width across all rows,
// ignoring kerf gaps. 0 for an empty board.
func (b *BoardLayout) UsedWidth() float64 {
	var max float64
	for _, r := range b.Rows {
		if w := r.ItemWidthSum(); w > max {
			max = w
		}
	}
	return max
}

// UsedArea returns the total area covered by placed items.
func (b *BoardLayout) UsedArea() float64 {
	var total float64
	for _, p := range b.PlacedItems {
		total += p.Width * p.Height
	}
	return total
}

// Efficiency returns the usage percentage relative to the full board.
func (b *BoardLayout) Efficiency() float64 {
	a := b.Material.Area()
	if a == 0 {
		return 0
	}
	return (b.UsedArea() / a) * 100.0
}

// CutLength returns the summed saw travel of all kerf cuts on the board.
func (b *BoardLayout) CutLength() float64 {
	var total float64
	for _, cr := range b.CutRects {
		total += cr.CutLength
	}
	return total
}

// Classify sizes the finished board for billing. A board whose usage fits
// within half the length (narrow half) or half the width (wide half)
// bills as a half board. When both fit, narrow half wins; the original
// pricing sheet has always worked that way, so the tie-break is kept.
func (b *BoardLayout) Classify() BoardClass {
	uL := b.UsedLength()
	uW := b.UsedWidth()
	L := b.Length()
	W := b.Width()

	narrowOK := uL <= L/2 && uW <= W
	wideOK := uL <= L && uW <= W/2

	switch {
	case narrowOK:
		return BoardNarrowHalf
	case wideOK:
		return BoardWideHalf
	default:
		return BoardFull
	}
}

// CutPlan is the full packing result: the boards produced for every
// material, in a stable material order for reproducible reports.
type CutPlan struct {
	MaterialOrder []string                  `json:"material_order"`
	Materials     map[string]MaterialSpec   `json:"materials"`
	Boards        map[string][]*BoardLayout `json:"boards"`
}

// BoardCount returns the total number of boards across all materials.
func (p CutPlan) BoardCount() int {
	n := 0
	for _, boards := range p.Boards {
		n += len(boards)
	}
	return n
}

// AllBoards returns every board in material order, then board index order.
func (p CutPlan) AllBoards() []*BoardLayout {
	var all []*BoardLayout
	for _, name := range p.MaterialOrder {
		all = append(all, p.Boards[name]...)
	}
	return all
}

// PlacedCount returns the total number of placed item units.
func (p CutPlan) PlacedCount() int {
	n := 0
	for _, b := range p.AllBoards() {
		n += len(b.PlacedItems)
	}
	return n
}
