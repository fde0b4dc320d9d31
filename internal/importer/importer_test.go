package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "a,b,c\n1,2,3\n", ','},
		{"semicolon", "a;b;c\n1;2;3\n", ';'},
		{"tab", "a\tb\tc\n1\t2\t3\n", '\t'},
		{"pipe", "a|b|c\n1|2|3\n", '|'},
		{"single column defaults to comma", "a\nb\nc\n", ','},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCSVDelimiter([]byte(tt.data)))
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"1", "true", "TRUE", "yes", "Y", "tak", " Tak "} {
		assert.True(t, ParseBool(s), "%q should be truthy", s)
	}
	for _, s := range []string{"", "0", "false", "no", "nie", "2"} {
		assert.False(t, ParseBool(s), "%q should be falsy", s)
	}
}

func TestImportItems_HeaderedCSV(t *testing.T) {
	path := writeTempFile(t, "items.csv",
		"name,length,width,quantity,rotation,wrap_l,wrap_r,wrap_t,wrap_b,material\n"+
			"shelf,300,400,2,yes,2,2,,,mdf\n"+
			"side,700,500,1,,,,2,2,\n")

	result := ImportItems(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Items, 2)

	shelf := result.Items[0]
	assert.Equal(t, "shelf", shelf.Name)
	assert.Equal(t, 300.0, shelf.Length)
	assert.Equal(t, 400.0, shelf.Width)
	assert.Equal(t, 2, shelf.Quantity)
	assert.True(t, shelf.RotationAllowed)
	assert.Equal(t, 2.0, shelf.Wrap.Left)
	assert.Equal(t, 2.0, shelf.Wrap.Right)
	assert.Equal(t, 0.0, shelf.Wrap.Top)
	assert.Equal(t, "mdf", shelf.Material)

	side := result.Items[1]
	assert.False(t, side.RotationAllowed)
	assert.Equal(t, 2.0, side.Wrap.Top)
	assert.Empty(t, side.Material)
}

func TestImportItems_SemicolonDelimiterWarns(t *testing.T) {
	path := writeTempFile(t, "items.csv",
		"name;length;width;quantity\nshelf;300;400;2\n")

	result := ImportItems(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Items, 1)
	assert.Contains(t, result.Warnings, "detected semicolon delimiter")
}

func TestImportItems_PositionalFallback(t *testing.T) {
	// No recognizable header: legacy column order applies and the first
	// row is data.
	path := writeTempFile(t, "items.csv",
		"shelf,300,400,2,tak,2,2,0,0,mdf\n"+
			"side,700,500,1,nie,0,0,0,0,\n")

	result := ImportItems(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Items, 2)
	assert.Contains(t, result.Warnings, "no header row recognized, using positional columns")
	assert.True(t, result.Items[0].RotationAllowed)
	assert.False(t, result.Items[1].RotationAllowed)
}

func TestImportItems_DefaultsAndErrors(t *testing.T) {
	path := writeTempFile(t, "items.csv",
		"name,length,width,quantity\n"+
			",600,400,\n"+ // unnamed row gets a generated name, qty defaults to 1
			"bad,abc,400,1\n"+
			"negative,600,-5,1\n")

	result := ImportItems(path)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Item 1", result.Items[0].Name)
	assert.Equal(t, 1, result.Items[0].Quantity)

	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], `invalid length "abc"`)
	assert.Contains(t, result.Errors[1], `invalid width "-5"`)
}

func TestImportItems_DuplicateNames(t *testing.T) {
	path := writeTempFile(t, "items.csv",
		"name,length,width\nshelf,300,400\nshelf,300,400\n")

	result := ImportItems(path)
	require.Len(t, result.Items, 1)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `duplicate item name "shelf"`)
}

func TestImportItems_MissingFile(t *testing.T) {
	result := ImportItems(filepath.Join(t.TempDir(), "nope.csv"))
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "cannot open file")
}

func TestImportItems_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "items.csv", "\n\n")
	result := ImportItems(path)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "file is empty")
}

func TestImportMaterials_HeaderedCSV(t *testing.T) {
	path := writeTempFile(t, "materials.csv",
		"material,height,width,cost\n"+ // legacy sheets say height for length
			"mdf,2000,1000,100\n"+
			"plywood,2500,1250,400\n")

	result := ImportMaterials(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Materials, 2)
	assert.Equal(t, []string{"mdf", "plywood"}, result.Order)

	mdf := result.Materials["mdf"]
	assert.Equal(t, 2000.0, mdf.Length)
	assert.Equal(t, 1000.0, mdf.Width)
	assert.Equal(t, 100.0, mdf.Cost)
}

func TestImportMaterials_ZeroCostAllowed(t *testing.T) {
	path := writeTempFile(t, "materials.csv",
		"material,length,width,cost\nscrap,2000,1000,0\n")

	result := ImportMaterials(path)
	require.Empty(t, result.Errors)
	assert.Equal(t, 0.0, result.Materials["scrap"].Cost)
}

func TestImportMaterials_DuplicatesAndBadRows(t *testing.T) {
	path := writeTempFile(t, "materials.csv",
		"material,length,width,cost\n"+
			"mdf,2000,1000,100\n"+
			"mdf,2000,1000,100\n"+
			"ply,0,1250,400\n")

	result := ImportMaterials(path)
	require.Len(t, result.Materials, 1)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], `duplicate material name "mdf"`)
	assert.Contains(t, result.Errors[1], `invalid length "0"`)
}

func TestImportMaterials_PositionalFallback(t *testing.T) {
	path := writeTempFile(t, "materials.csv", "mdf,2000,1000,100\n")

	result := ImportMaterials(path)
	require.Empty(t, result.Errors)
	assert.Equal(t, []string{"mdf"}, result.Order)
	assert.Contains(t, result.Warnings, "no header row recognized, using positional columns")
}
