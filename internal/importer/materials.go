package importer

import (
	"fmt"
	"strconv"

	"github.com/piwi3910/cutplan/internal/model"
)

// MaterialImportResult holds the outcome of a material list import.
// Order preserves the file's row order; downstream tie-breaking in
// material auto-assignment depends on it.
type MaterialImportResult struct {
	Materials map[string]model.MaterialSpec
	Order     []string
	Errors    []string
	Warnings  []string
}

// materialHeaderAliases maps canonical material columns to accepted
// spellings. Legacy sheets use "height" for the board length.
var materialHeaderAliases = map[string][]string{
	"material": {"material", "name", "label"},
	"length":   {"length", "len", "height", "h"},
	"width":    {"width", "w"},
	"cost":     {"cost", "price", "price per board"},
}

var materialPositionalMapping = map[string]int{
	"material": 0, "length": 1, "width": 2, "cost": 3,
}

// ImportMaterials reads a material list from a CSV or Excel file.
func ImportMaterials(path string) MaterialImportResult {
	result := MaterialImportResult{Materials: make(map[string]model.MaterialSpec)}

	rows, warnings, err := readRows(path)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Warnings = warnings

	mapping, hasHeader := detectColumns(rows[0], materialHeaderAliases)
	start := 0
	if hasHeader {
		start = 1
	} else {
		mapping = materialPositionalMapping
		result.Warnings = append(result.Warnings, "no header row recognized, using positional columns")
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("row %d", i+1)

		name := getCell(row, mapping["material"])
		if name == "" {
			continue
		}
		if _, dup := result.Materials[name]; dup {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: duplicate material name %q", rowLabel, name))
			continue
		}

		length, errMsg := parsePositive(getCell(row, mapping["length"]), "length", rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		width, errMsg := parsePositive(getCell(row, mapping["width"]), "width", rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}

		costStr := getCell(row, mapping["cost"])
		cost, err := strconv.ParseFloat(costStr, 64)
		if err != nil || cost < 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: invalid cost %q", rowLabel, costStr))
			continue
		}

		result.Materials[name] = model.NewMaterialSpec(name, length, width, cost)
		result.Order = append(result.Order, name)
	}

	if len(result.Materials) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "no materials found in file")
	}
	return result
}
