package reduce

import (
	"github.com/yijiazho/incubator-pinot/common"
	"github.com/yijiazho/incubator-pinot/data"
)

// selectionColumns expands the requested column list against the
// schema: empty, or the single entry "*", means every schema column in
// declared order.
func selectionColumns(requested []string, schema data.DataSchema) []string {
	if len(requested) == 0 || (len(requested) == 1 && requested[0] == "*") {
		return schema.ColumnNames()
	}
	return requested
}

// resolveColumns maps requested column names to schema positions.
// Lookup is case-sensitive exact match; a miss is fatal for the
// response, never silently skipped.
func resolveColumns(columns []string, schema data.DataSchema) ([]int, error) {
	indices := make([]int, len(columns))
	for i, name := range columns {
		idx, ok := schema.ColumnIndex(name)
		if !ok {
			return nil, common.NewQueryError(common.UnknownColumnError,
				"column %q not found in schema %s", name, schema)
		}
		indices[i] = idx
	}
	return indices, nil
}

// renderResultTable produces the strict typed payload: the projected
// schema plus rows whose cells are coerced to the schema's (widened)
// column types.
func renderResultTable(rows []data.Row, schema data.DataSchema, columns []string) (*ResultTable, error) {
	indices, err := resolveColumns(columns, schema)
	if err != nil {
		return nil, err
	}
	out := make([][]any, len(rows))
	for r, row := range rows {
		cells := make([]any, len(indices))
		for c, idx := range indices {
			cells[c] = row[idx].Convert(schema.ColumnType(idx)).Native()
		}
		out[r] = cells
	}
	return &ResultTable{DataSchema: schema.Project(indices), Rows: out}, nil
}

// renderSelectionResults produces the legacy payload. Unless
// preserveType is set, every cell is coerced to a string for backward
// compatibility; either way the cell content agrees row-for-row with
// the strict format.
func renderSelectionResults(rows []data.Row, schema data.DataSchema, columns []string,
	preserveType bool) (*SelectionResults, error) {

	indices, err := resolveColumns(columns, schema)
	if err != nil {
		return nil, err
	}
	out := make([][]any, len(rows))
	for r, row := range rows {
		cells := make([]any, len(indices))
		for c, idx := range indices {
			value := row[idx].Convert(schema.ColumnType(idx))
			if preserveType {
				cells[c] = value.Native()
			} else {
				cells[c] = value.FormatString()
			}
		}
		out[r] = cells
	}
	return &SelectionResults{Columns: columns, Rows: out}, nil
}
