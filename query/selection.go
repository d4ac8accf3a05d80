package query

// SortDirection controls the direction of one order-by column.
type SortDirection int

const (
	SortOrderAscending SortDirection = iota
	SortOrderDescending
)

func (d SortDirection) String() string {
	if d == SortOrderDescending {
		return "DESC"
	}
	return "ASC"
}

// OrderByClause names one ordering column and its direction. Columns
// are resolved by exact name against the merged result schema.
type OrderByClause struct {
	Column    string
	Direction SortDirection
}

// Selection describes the row-set shape of a query: which columns the
// client asked for, how many rows, and in what order.
type Selection struct {
	// Columns is the requested output column list. Empty, or the single
	// entry "*", means all columns of the result schema in declared
	// order.
	Columns []string
	// Size is the requested row limit. Zero yields zero rows.
	Size int
	// OrderBy, when non-empty, requests the top Size rows under this
	// ordering. Each server pre-sorts its partial result by the same
	// ordering before transport.
	OrderBy []OrderByClause
}

// IsOrdered returns true if this selection requests an ordered top-K
// result rather than an arbitrary bounded row set.
func (s *Selection) IsOrdered() bool {
	return s.Size > 0 && len(s.OrderBy) > 0
}
