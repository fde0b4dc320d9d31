package model

import "github.com/google/uuid"

// WrapEdges holds the edge-band width in mm for each edge of an item.
// A zero value means the edge is not banded; only presence (>0) matters
// for orientation rules, the width itself is used for reporting only.
type WrapEdges struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// HasAny reports whether any edge requires banding.
func (w WrapEdges) HasAny() bool {
	return w.Left > 0 || w.Right > 0 || w.Top > 0 || w.Bottom > 0
}

// sideCount returns how many of the two given edges are banded (0, 1 or 2).
func sideCount(a, b float64) int {
	n := 0
	if a > 0 {
		n++
	}
	if b > 0 {
		n++
	}
	return n
}

// ParallelCount returns the number of banded left/right edges (0-2).
// These run parallel to the board's length axis.
func (w WrapEdges) ParallelCount() int {
	return sideCount(w.Left, w.Right)
}

// PerpendicularCount returns the number of banded top/bottom edges (0-2).
func (w WrapEdges) PerpendicularCount() int {
	return sideCount(w.Top, w.Bottom)
}

// EdgeCount returns the total number of banded edges.
func (w WrapEdges) EdgeCount() int {
	return w.ParallelCount() + w.PerpendicularCount()
}

// String returns a compact edge summary like "L+R+T" or "none".
func (w WrapEdges) String() string {
	var s string
	add := func(tag string) {
		if s != "" {
			s += "+"
		}
		s += tag
	}
	if w.Left > 0 {
		add("L")
	}
	if w.Right > 0 {
		add("R")
	}
	if w.Top > 0 {
		add("T")
	}
	if w.Bottom > 0 {
		add("B")
	}
	if s == "" {
		return "none"
	}
	return s
}

// MaterialSpec describes one stock board type. Length runs along the
// vertical (Y) axis, width along the horizontal (X) axis. Cost is the
// price of one full board.
type MaterialSpec struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Length float64 `json:"length"` // mm, vertical axis
	Width  float64 `json:"width"`  // mm, horizontal axis
	Cost   float64 `json:"cost"`   // price per full board
}

func NewMaterialSpec(name string, length, width, cost float64) MaterialSpec {
	return MaterialSpec{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Length: length,
		Width:  width,
		Cost:   cost,
	}
}

// Area returns the full board area in square mm.
func (m MaterialSpec) Area() float64 {
	return m.Length * m.Width
}

// CostPerArea returns the cost per square mm, used for cheapest-material
// auto-assignment.
func (m MaterialSpec) CostPerArea() float64 {
	a := m.Area()
	if a == 0 {
		return 0
	}
	return m.Cost / a
}

// ItemSpec describes one required piece. Quantity expands into that many
// independent unit placements during packing.
type ItemSpec struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Length          float64   `json:"length"` // mm, nominal vertical dimension
	Width           float64   `json:"width"`  // mm, nominal horizontal dimension
	Quantity        int       `json:"quantity"`
	RotationAllowed bool      `json:"rotation_allowed"`
	Wrap            WrapEdges `json:"wrap"`
	Material        string    `json:"material,omitempty"` // empty = assign automatically
}

func NewItemSpec(name string, length, width float64, qty int) ItemSpec {
	return ItemSpec{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Length:   length,
		Width:    width,
		Quantity: qty,
	}
}

// Orientation is one legal axis-aligned layout of an item: Width and
// Height are the oriented (placed) dimensions, not the nominal ones.
type Orientation struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Rotated bool    `json:"rotated"`
}

// PlacedItem is one unit of an item placed on a board. Coordinates are mm
// from the board's top-left corner. Never mutated after placement.
type PlacedItem struct {
	Spec       ItemSpec `json:"spec"`
	Material   string   `json:"material"`
	BoardIndex int      `json:"board_index"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Width      float64  `json:"width"`  // oriented width
	Height     float64  `json:"height"` // oriented height
	Rotated    bool     `json:"rotated"`
}

// CutOrientation distinguishes horizontal row-separating cuts from
// vertical item-separating cuts.
type CutOrientation string

const (
	CutHorizontal CutOrientation = "H"
	CutVertical   CutOrientation = "V"
)

// CutRect is a kerf gap rectangle consumed by the saw blade. Horizontal
// cuts span the full board width between rows; vertical cuts sit between
// adjacent items within a row.
type CutRect struct {
	X           float64        `json:"x"`
	Y           float64        `json:"y"`
	Width       float64        `json:"width"`
	Height      float64        `json:"height"`
	CutLength   float64        `json:"cut_length"` // length along the saw direction
	Orientation CutOrientation `json:"orientation"`
}
