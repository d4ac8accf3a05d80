package reduce

import (
	"github.com/tidwall/btree"

	"github.com/yijiazho/incubator-pinot/common"
	"github.com/yijiazho/incubator-pinot/data"
	"github.com/yijiazho/incubator-pinot/query"
)

// DistinctReducer merges per-server distinct row sets into one global
// distinct set bounded by the query limit. The set is kept in a btree
// ordered by the row comparator, so the rendered output is
// deterministic for any server arrival order.
type DistinctReducer struct {
	distinct          *query.Distinct
	preserveType      bool
	responseFormatSQL bool
}

func NewDistinctReducer(distinct *query.Distinct, opts query.Options) *DistinctReducer {
	return &DistinctReducer{
		distinct:          distinct,
		preserveType:      opts.PreserveType,
		responseFormatSQL: opts.ResponseFormatSQL,
	}
}

func (r *DistinctReducer) ReduceAndSetResults(tableName string, schema *data.DataSchema,
	tables map[data.ServerInstance]*data.DataTable, response *BrokerResponse, metrics Metrics) error {

	if len(tables) == 0 {
		if schema == nil {
			return nil
		}
		return r.setResults(nil, *schema, response)
	}

	common.Assert(schema != nil, "reference schema missing for table %s with %d server responses",
		tableName, len(tables))

	merged := *schema
	survivors := tablesInServerOrder(tables)
	if len(tables) > 1 {
		var dropped []data.ServerInstance
		merged, survivors, dropped = reconcileSchemas(*schema, tables)
		if len(dropped) > 0 {
			reportDroppedServers(tableName, dropped, response, metrics)
		}
		if len(survivors) == 0 {
			return r.setResults(nil, *schema, response)
		}
	} else {
		// A lone response may report wider types than the reference.
		merged = merged.WidenToCover(survivors[0].Schema())
	}

	limit := r.distinct.Limit
	if limit <= 0 {
		return r.setResults(nil, merged, response)
	}

	// Union the servers' distinct sets. Rows compare column-wise under
	// the widened schema, so the same logical row reported with
	// narrower types by one server still deduplicates.
	tree := btree.NewBTreeG(func(a, b data.Row) bool {
		return distinctRowLess(a, b)
	})
	for _, table := range survivors {
		for i := 0; i < table.NumRows(); i++ {
			tree.Set(table.Row(i))
		}
	}

	rows := make([]data.Row, 0, min(limit, tree.Len()))
	tree.Scan(func(row data.Row) bool {
		if len(rows) >= limit {
			return false
		}
		rows = append(rows, row)
		return true
	})
	return r.setResults(rows, merged, response)
}

func (r *DistinctReducer) setResults(rows []data.Row, schema data.DataSchema, response *BrokerResponse) error {
	columns := selectionColumns(r.distinct.Columns, schema)
	if r.responseFormatSQL {
		table, err := renderResultTable(rows, schema, columns)
		if err != nil {
			return err
		}
		response.SetResultTable(table)
		return nil
	}
	results, err := renderSelectionResults(rows, schema, columns, r.preserveType)
	if err != nil {
		return err
	}
	response.SetSelectionResults(results)
	return nil
}

// distinctRowLess is a total order over rows: column-wise Value
// comparison, NULLs first within a column. Two rows are duplicates
// exactly when neither is less than the other.
func distinctRowLess(a, b data.Row) bool {
	for i := range a {
		cmp := a[i].Compare(b[i])
		if cmp != 0 {
			return cmp < 0
		}
	}
	return false
}
