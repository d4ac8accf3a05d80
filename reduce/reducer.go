package reduce

import (
	"github.com/yijiazho/incubator-pinot/data"
	"github.com/yijiazho/incubator-pinot/logger"
	"github.com/yijiazho/incubator-pinot/query"
)

var log = logger.New().With().Str("component", "reduce").Logger()

// Reducer merges the per-server partial results of one scatter/gather
// round and sets exactly one payload shape on the response.
//
// schema is the reference schema attached to the query plan; it is nil
// only when no server ever replied. tables is a finalized snapshot
// built by the transport layer; reducers borrow it for the duration of
// the call and never mutate the tables' rows. metrics may be nil.
//
// Non-fatal degradations (dropped servers) are reported on the response
// and reduction continues; fatal conditions (unknown requested columns)
// return an error and leave the response payload unset.
type Reducer interface {
	ReduceAndSetResults(tableName string, schema *data.DataSchema,
		tables map[data.ServerInstance]*data.DataTable, response *BrokerResponse, metrics Metrics) error
}

// ReducerForQuery picks the reducer variant for a compiled query shape.
// The choice is made once per query from the shape alone, never by
// inspecting result data at runtime.
func ReducerForQuery(q *query.Query, opts query.Options) Reducer {
	switch {
	case q.Distinct != nil:
		return NewDistinctReducer(q.Distinct, opts)
	case len(q.Aggregations) > 0:
		return NewAggregationReducer(q.Aggregations, opts)
	default:
		return NewSelectionReducer(q.Selection, opts)
	}
}
