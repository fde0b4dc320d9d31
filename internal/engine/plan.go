package engine

import (
	"github.com/piwi3910/cutplan/internal/model"
	"github.com/piwi3910/cutplan/internal/wrap"
)

// Plan runs the full planning pipeline for a validated input set:
// wrap validation (when enforced), material auto-assignment, grouping by
// material, and per-material packing. order fixes the material iteration
// order end to end so output is reproducible.
//
// Any failure aborts the whole run; a partial plan is never returned.
func Plan(items []model.ItemSpec, materials map[string]model.MaterialSpec, order []string, kerf float64, enforce bool) (model.CutPlan, error) {
	if enforce {
		if err := wrap.Validate(items); err != nil {
			return model.CutPlan{}, err
		}
	}

	assigned, err := AssignMaterials(items, materials, order, enforce)
	if err != nil {
		return model.CutPlan{}, err
	}

	// Group items by material, preserving input order within each group.
	grouped := make(map[string][]model.ItemSpec)
	for _, it := range assigned {
		grouped[it.Material] = append(grouped[it.Material], it)
	}

	packer := NewPacker(kerf, enforce)
	plan := model.CutPlan{
		Materials: materials,
		Boards:    make(map[string][]*model.BoardLayout),
	}

	for _, name := range order {
		its, ok := grouped[name]
		if !ok {
			continue
		}
		boards, err := packer.BuildBoards(materials[name], its)
		if err != nil {
			return model.CutPlan{}, err
		}
		plan.MaterialOrder = append(plan.MaterialOrder, name)
		plan.Boards[name] = boards
	}

	return plan, nil
}
