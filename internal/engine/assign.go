package engine

import (
	"fmt"

	"github.com/piwi3910/cutplan/internal/model"
	"github.com/piwi3910/cutplan/internal/wrap"
)

// AssignMaterials resolves every item without a pinned material to the
// cheapest-per-area material that can physically host at least one legal
// orientation. order supplies a stable iteration order over materials so
// that cost ties always resolve the same way; the first material
// encountered at the minimum cost per area wins.
//
// The input slice is not modified; a copy with material keys filled in is
// returned.
func AssignMaterials(items []model.ItemSpec, materials map[string]model.MaterialSpec, order []string, enforce bool) ([]model.ItemSpec, error) {
	if len(materials) == 0 {
		return nil, fmt.Errorf("no materials available for assignment")
	}

	assigned := make([]model.ItemSpec, len(items))
	copy(assigned, items)

	for i := range assigned {
		it := &assigned[i]
		if it.Material != "" {
			if _, ok := materials[it.Material]; !ok {
				return nil, fmt.Errorf("item %q references unknown material %q", it.Name, it.Material)
			}
			continue
		}

		candidates, _ := wrap.Candidates(*it, enforce)

		var chosen *model.MaterialSpec
		for _, name := range order {
			m, ok := materials[name]
			if !ok {
				continue
			}
			if !anyFits(candidates, m) {
				continue
			}
			if chosen == nil || m.CostPerArea() < chosen.CostPerArea() {
				mc := m
				chosen = &mc
			}
		}

		if chosen == nil {
			return nil, fmt.Errorf("item %q cannot fit any material (considering rotations and wrap rules)", it.Name)
		}
		it.Material = chosen.Name
	}

	return assigned, nil
}

// anyFits reports whether at least one orientation fits within the raw
// board dimensions of the material.
func anyFits(candidates []model.Orientation, m model.MaterialSpec) bool {
	for _, c := range candidates {
		if c.Width <= m.Width && c.Height <= m.Length {
			return true
		}
	}
	return false
}
