package reduce

import (
	"container/heap"

	"github.com/yijiazho/incubator-pinot/common"
	"github.com/yijiazho/incubator-pinot/data"
	"github.com/yijiazho/incubator-pinot/query"
)

// reduceWithoutOrdering concatenates rows from the tables in arrival
// order until limit rows are collected. No row is inspected for
// ordering; work is proportional to the number of rows visited.
func reduceWithoutOrdering(tables []*data.DataTable, limit int) []data.Row {
	if limit <= 0 {
		return nil
	}
	rows := make([]data.Row, 0, limit)
	for _, table := range tables {
		for i := 0; i < table.NumRows(); i++ {
			rows = append(rows, table.Row(i))
			if len(rows) == limit {
				return rows
			}
		}
	}
	return rows
}

// orderKey is one order-by column resolved to its position in the
// merged schema.
type orderKey struct {
	index      int
	descending bool
}

// resolveOrderBy resolves order-by columns against the merged schema.
// An unknown ordering column is fatal for the response.
func resolveOrderBy(orderBy []query.OrderByClause, schema data.DataSchema) ([]orderKey, error) {
	keys := make([]orderKey, len(orderBy))
	for i, clause := range orderBy {
		idx, ok := schema.ColumnIndex(clause.Column)
		if !ok {
			return nil, common.NewQueryError(common.UnknownColumnError,
				"order-by column %q not found in schema %s", clause.Column, schema)
		}
		keys[i] = orderKey{index: idx, descending: clause.Direction == query.SortOrderDescending}
	}
	return keys, nil
}

// compareRows compares two rows under the resolved ordering.
// NULLs sort last regardless of direction; non-NULL values compare
// type-aware (numeric columns numerically, never lexically). Returns 0
// when all ordering columns are equal; the merge heap then falls back
// to its stable arrival-order tie-break.
func compareRows(a, b data.Row, keys []orderKey) int {
	for _, key := range keys {
		va, vb := a[key.index], b[key.index]
		switch {
		case va.IsNull() && vb.IsNull():
			continue
		case va.IsNull():
			return 1
		case vb.IsNull():
			return -1
		}
		cmp := va.Compare(vb)
		if cmp == 0 {
			continue
		}
		if key.descending {
			return -cmp
		}
		return cmp
	}
	return 0
}

// mergeCursor tracks one pre-sorted table's position in the k-way
// merge. seq is the cursor's arrival position, used as the stable
// tie-break when all ordering columns compare equal.
type mergeCursor struct {
	table *data.DataTable
	next  int
	seq   int
}

func (c *mergeCursor) head() data.Row {
	return c.table.Row(c.next)
}

// mergeHeap implements heap.Interface over the table cursors, ordered
// by each cursor's head row.
type mergeHeap struct {
	cursors []*mergeCursor
	keys    []orderKey
}

func (h *mergeHeap) Len() int { return len(h.cursors) }

func (h *mergeHeap) Swap(i, j int) { h.cursors[i], h.cursors[j] = h.cursors[j], h.cursors[i] }

func (h *mergeHeap) Less(i, j int) bool {
	cmp := compareRows(h.cursors[i].head(), h.cursors[j].head(), h.keys)
	if cmp != 0 {
		return cmp < 0
	}
	return h.cursors[i].seq < h.cursors[j].seq
}

func (h *mergeHeap) Push(x any) {
	h.cursors = append(h.cursors, x.(*mergeCursor))
}

func (h *mergeHeap) Pop() any {
	old := h.cursors
	n := len(old)
	x := old[n-1]
	h.cursors = old[:n-1]
	return x
}

// reduceWithOrdering performs a bounded k-way merge of tables whose
// rows are each pre-sorted by orderBy (per server, before transport).
// It repeatedly pops the globally next row and advances that table's
// cursor, stopping after limit rows, so work is O(R log K) for R rows
// emitted across K tables rather than proportional to total input.
func reduceWithOrdering(tables []*data.DataTable, orderBy []query.OrderByClause,
	schema data.DataSchema, limit int) ([]data.Row, error) {

	keys, err := resolveOrderBy(orderBy, schema)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, nil
	}

	h := &mergeHeap{keys: keys, cursors: make([]*mergeCursor, 0, len(tables))}
	for i, table := range tables {
		if table.NumRows() > 0 {
			h.cursors = append(h.cursors, &mergeCursor{table: table, seq: i})
		}
	}
	heap.Init(h)

	rows := make([]data.Row, 0, limit)
	for h.Len() > 0 && len(rows) < limit {
		cursor := h.cursors[0]
		rows = append(rows, cursor.head())
		cursor.next++
		if cursor.next < cursor.table.NumRows() {
			heap.Fix(h, 0)
		} else {
			heap.Pop(h)
		}
	}
	return rows, nil
}
