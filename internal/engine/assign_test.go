package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cutplan/internal/model"
)

func materialsFixture(specs ...model.MaterialSpec) (map[string]model.MaterialSpec, []string) {
	m := make(map[string]model.MaterialSpec, len(specs))
	order := make([]string, 0, len(specs))
	for _, s := range specs {
		m[s.Name] = s
		order = append(order, s.Name)
	}
	return m, order
}

func TestAssignMaterials_CheapestPerAreaWins(t *testing.T) {
	// 2000x1000 at 100 is 0.00005/mm2; 2800x2070 at 200 is ~0.0000345/mm2.
	cheap := model.NewMaterialSpec("chipboard", 2800, 2070, 200)
	dear := model.NewMaterialSpec("mdf", 2000, 1000, 100)
	materials, order := materialsFixture(dear, cheap)

	items := []model.ItemSpec{model.NewItemSpec("panel", 600, 400, 1)}
	assigned, err := AssignMaterials(items, materials, order, true)
	require.NoError(t, err)
	assert.Equal(t, "chipboard", assigned[0].Material)
}

func TestAssignMaterials_TieBrokenByOrder(t *testing.T) {
	a := model.NewMaterialSpec("first", 2000, 1000, 100)
	b := model.NewMaterialSpec("second", 2000, 1000, 100)
	materials, order := materialsFixture(a, b)

	items := []model.ItemSpec{model.NewItemSpec("panel", 600, 400, 1)}
	assigned, err := AssignMaterials(items, materials, order, true)
	require.NoError(t, err)
	assert.Equal(t, "first", assigned[0].Material)
}

func TestAssignMaterials_FitFiltersCheaperMaterial(t *testing.T) {
	// The cheaper stock is too small for the item, so the pricier one
	// must be chosen.
	small := model.NewMaterialSpec("offcut stock", 500, 500, 5)
	big := model.NewMaterialSpec("full sheet", 2800, 2070, 300)
	materials, order := materialsFixture(small, big)

	items := []model.ItemSpec{model.NewItemSpec("side", 1800, 600, 1)}
	assigned, err := AssignMaterials(items, materials, order, true)
	require.NoError(t, err)
	assert.Equal(t, "full sheet", assigned[0].Material)
}

func TestAssignMaterials_RotationExtendsFit(t *testing.T) {
	// Nominal 600x1200 exceeds the 1000mm board width; with rotation
	// allowed the material still qualifies.
	m := model.NewMaterialSpec("mdf", 2000, 1000, 100)
	materials, order := materialsFixture(m)

	item := model.NewItemSpec("worktop", 600, 1200, 1)
	_, err := AssignMaterials([]model.ItemSpec{item}, materials, order, true)
	require.Error(t, err)

	item.RotationAllowed = true
	assigned, err := AssignMaterials([]model.ItemSpec{item}, materials, order, true)
	require.NoError(t, err)
	assert.Equal(t, "mdf", assigned[0].Material)
}

func TestAssignMaterials_PinnedMaterialKept(t *testing.T) {
	cheap := model.NewMaterialSpec("chipboard", 2800, 2070, 200)
	dear := model.NewMaterialSpec("mdf", 2000, 1000, 100)
	materials, order := materialsFixture(cheap, dear)

	item := model.NewItemSpec("panel", 600, 400, 1)
	item.Material = "mdf"
	assigned, err := AssignMaterials([]model.ItemSpec{item}, materials, order, true)
	require.NoError(t, err)
	assert.Equal(t, "mdf", assigned[0].Material)
}

func TestAssignMaterials_UnknownPinnedMaterialFails(t *testing.T) {
	materials, order := materialsFixture(model.NewMaterialSpec("mdf", 2000, 1000, 100))

	item := model.NewItemSpec("panel", 600, 400, 1)
	item.Material = "walnut"
	_, err := AssignMaterials([]model.ItemSpec{item}, materials, order, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown material")
	assert.Contains(t, err.Error(), "walnut")
}

func TestAssignMaterials_NoMaterialsFails(t *testing.T) {
	_, err := AssignMaterials([]model.ItemSpec{model.NewItemSpec("panel", 600, 400, 1)}, nil, nil, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no materials")
}

func TestAssignMaterials_InputNotModified(t *testing.T) {
	materials, order := materialsFixture(model.NewMaterialSpec("mdf", 2000, 1000, 100))
	items := []model.ItemSpec{model.NewItemSpec("panel", 600, 400, 1)}

	assigned, err := AssignMaterials(items, materials, order, true)
	require.NoError(t, err)
	assert.Equal(t, "mdf", assigned[0].Material)
	assert.Empty(t, items[0].Material, "caller's slice keeps its empty material key")
}
