package data

import (
	"strings"

	"github.com/yijiazho/incubator-pinot/common"
)

// Column represents the basic unit of a result schema.
type Column struct {
	Name string      `json:"name"`
	Type common.Type `json:"type"`
}

// DataSchema describes the columns of a result table. Column identity
// is positional; name lookup is by exact, case-sensitive match.
type DataSchema struct {
	Columns []Column `json:"columns"`
}

// NewDataSchema builds a schema from parallel name and type slices.
func NewDataSchema(names []string, types []common.Type) DataSchema {
	common.Assert(len(names) == len(types), "schema names/types length mismatch: %d vs %d", len(names), len(types))
	cols := make([]Column, len(names))
	for i := range names {
		cols[i] = Column{Name: names[i], Type: types[i]}
	}
	return DataSchema{Columns: cols}
}

// Size returns the number of columns.
func (s DataSchema) Size() int {
	return len(s.Columns)
}

// ColumnName returns the name of column i.
func (s DataSchema) ColumnName(i int) string {
	return s.Columns[i].Name
}

// ColumnType returns the declared type of column i.
func (s DataSchema) ColumnType(i int) common.Type {
	return s.Columns[i].Type
}

// ColumnNames returns all column names in declared order.
func (s DataSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnIndex returns the position of the named column, or false if no
// column has that exact name.
func (s DataSchema) ColumnIndex(name string) (int, bool) {
	for i, c := range s.Columns {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

// IsTypeCompatibleWith returns true if another schema has the same
// column count and every column type is compatible under the widening
// partial order. Column names are not compared; identity is positional.
func (s DataSchema) IsTypeCompatibleWith(other DataSchema) bool {
	if len(s.Columns) != len(other.Columns) {
		return false
	}
	for i := range s.Columns {
		if !s.Columns[i].Type.CompatibleWith(other.Columns[i].Type) {
			return false
		}
	}
	return true
}

// WidenToCover returns a NEW schema whose column types are widened to
// the least upper bound of the receiver's and the other schema's types.
// Column names are taken from the receiver. The receiver is never
// mutated, so a shared reference schema cannot be aliased mid-merge.
func (s DataSchema) WidenToCover(other DataSchema) DataSchema {
	common.Assert(s.IsTypeCompatibleWith(other), "widening incompatible schemas: %s vs %s", s, other)
	cols := make([]Column, len(s.Columns))
	for i := range s.Columns {
		cols[i] = Column{Name: s.Columns[i].Name, Type: s.Columns[i].Type.Widen(other.Columns[i].Type)}
	}
	return DataSchema{Columns: cols}
}

// Project returns a schema containing only the given column positions,
// in the given order.
func (s DataSchema) Project(indices []int) DataSchema {
	cols := make([]Column, len(indices))
	for i, idx := range indices {
		cols[i] = s.Columns[idx]
	}
	return DataSchema{Columns: cols}
}

// Equal reports whether two schemas have identical names and types.
func (s DataSchema) Equal(other DataSchema) bool {
	if len(s.Columns) != len(other.Columns) {
		return false
	}
	for i := range s.Columns {
		if s.Columns[i] != other.Columns[i] {
			return false
		}
	}
	return true
}

func (s DataSchema) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range s.Columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.Name)
		b.WriteByte('(')
		b.WriteString(c.Type.String())
		b.WriteByte(')')
	}
	b.WriteByte(']')
	return b.String()
}
