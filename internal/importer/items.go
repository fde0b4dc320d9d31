package importer

import (
	"fmt"
	"strconv"

	"github.com/piwi3910/cutplan/internal/model"
)

// ItemImportResult holds the outcome of an item list import. Errors stop
// the run; warnings are informational.
type ItemImportResult struct {
	Items    []model.ItemSpec
	Errors   []string
	Warnings []string
}

// itemHeaderAliases maps canonical item columns to accepted spellings
// (all lowercase).
var itemHeaderAliases = map[string][]string{
	"name":     {"name", "label", "item", "part", "description", "desc"},
	"length":   {"length", "len", "l"},
	"width":    {"width", "w"},
	"quantity": {"quantity", "qty", "count", "num", "pcs", "pieces"},
	"rotation": {"rotation", "rotate", "rot", "rotation allowed"},
	"wrap_l":   {"wrap_l", "wrap left", "wrapl", "band_l"},
	"wrap_r":   {"wrap_r", "wrap right", "wrapr", "band_r"},
	"wrap_t":   {"wrap_t", "wrap top", "wrapt", "band_t"},
	"wrap_b":   {"wrap_b", "wrap bottom", "wrapb", "band_b"},
	"material": {"material", "mat", "board"},
}

// itemPositionalMapping is the legacy column order used when no header
// row is recognized.
var itemPositionalMapping = map[string]int{
	"name": 0, "length": 1, "width": 2, "quantity": 3, "rotation": 4,
	"wrap_l": 5, "wrap_r": 6, "wrap_t": 7, "wrap_b": 8, "material": 9,
}

// ImportItems reads an item list from a CSV or Excel file. Unknown or
// broken rows are collected as errors; duplicate item names are an
// error because names key the plan downstream.
func ImportItems(path string) ItemImportResult {
	result := ItemImportResult{}

	rows, warnings, err := readRows(path)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Warnings = warnings

	mapping, hasHeader := detectColumns(rows[0], itemHeaderAliases)
	start := 0
	if hasHeader {
		start = 1
	} else {
		mapping = itemPositionalMapping
		result.Warnings = append(result.Warnings, "no header row recognized, using positional columns")
	}

	seen := make(map[string]bool)
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("row %d", i+1)

		item, errMsg := parseItemRow(row, mapping, rowLabel, len(result.Items))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if seen[item.Name] {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: duplicate item name %q", rowLabel, item.Name))
			continue
		}
		seen[item.Name] = true
		result.Items = append(result.Items, item)
	}

	if len(result.Items) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "no items found in file")
	}
	return result
}

// parseItemRow extracts one ItemSpec from a row. Returns an error
// message on malformed required fields.
func parseItemRow(row []string, mapping map[string]int, rowLabel string, itemCount int) (model.ItemSpec, string) {
	name := getCell(row, mapping["name"])
	if name == "" {
		name = fmt.Sprintf("Item %d", itemCount+1)
	}

	length, errMsg := parsePositive(getCell(row, mapping["length"]), "length", rowLabel)
	if errMsg != "" {
		return model.ItemSpec{}, errMsg
	}
	width, errMsg := parsePositive(getCell(row, mapping["width"]), "width", rowLabel)
	if errMsg != "" {
		return model.ItemSpec{}, errMsg
	}

	qty := 1
	if qtyStr := getCell(row, mapping["quantity"]); qtyStr != "" {
		q, err := strconv.Atoi(qtyStr)
		if err != nil || q <= 0 {
			return model.ItemSpec{}, fmt.Sprintf("%s: invalid quantity %q", rowLabel, qtyStr)
		}
		qty = q
	}

	item := model.NewItemSpec(name, length, width, qty)
	item.RotationAllowed = ParseBool(getCell(row, mapping["rotation"]))
	item.Material = getCell(row, mapping["material"])

	var wrapErr string
	item.Wrap = model.WrapEdges{
		Left:   parseWrap(getCell(row, mapping["wrap_l"]), "wrap_l", rowLabel, &wrapErr),
		Right:  parseWrap(getCell(row, mapping["wrap_r"]), "wrap_r", rowLabel, &wrapErr),
		Top:    parseWrap(getCell(row, mapping["wrap_t"]), "wrap_t", rowLabel, &wrapErr),
		Bottom: parseWrap(getCell(row, mapping["wrap_b"]), "wrap_b", rowLabel, &wrapErr),
	}
	if wrapErr != "" {
		return model.ItemSpec{}, wrapErr
	}

	return item, ""
}

// parsePositive parses a required positive numeric field.
func parsePositive(s, field, rowLabel string) (float64, string) {
	if s == "" {
		return 0, fmt.Sprintf("%s: missing %s value", rowLabel, field)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Sprintf("%s: invalid %s %q", rowLabel, field, s)
	}
	return v, ""
}

// parseWrap parses an optional edge-band width; empty means no band.
func parseWrap(s, field, rowLabel string, errMsg *string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		if *errMsg == "" {
			*errMsg = fmt.Sprintf("%s: invalid %s %q", rowLabel, field, s)
		}
		return 0
	}
	return v
}
