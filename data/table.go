package data

import "github.com/yijiazho/incubator-pinot/common"

// ServerInstance identifies the server that produced a partial result.
// It is opaque to reduction: used only for diagnostics and dropped
// source reporting, never for ordering or correctness.
type ServerInstance string

// Row is one fixed-width result row. Values are aligned to the schema
// of the table that produced the row, which may be narrower than the
// merged schema it is later read under.
type Row []common.Value

// Copy returns an independently-owned copy of the row.
func (r Row) Copy() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// DataTable is one server's partial result: its own schema plus the
// rows it computed. DataTables are built by the transport layer and
// are read-only to reduction.
type DataTable struct {
	schema DataSchema
	rows   []Row
}

// NewDataTable builds a partial result table. Every row must match the
// schema's width.
func NewDataTable(schema DataSchema, rows []Row) *DataTable {
	for i, r := range rows {
		common.Assert(len(r) == schema.Size(), "row %d width %d does not match schema %s", i, len(r), schema)
	}
	return &DataTable{schema: schema, rows: rows}
}

// Schema returns the table's own schema.
func (t *DataTable) Schema() DataSchema {
	return t.schema
}

// NumRows returns the number of rows in the table.
func (t *DataTable) NumRows() int {
	return len(t.rows)
}

// Row returns row i. The returned slice is borrowed; callers must not
// mutate it.
func (t *DataTable) Row(i int) Row {
	return t.rows[i]
}
