package reduce

import (
	"github.com/yijiazho/incubator-pinot/common"
	"github.com/yijiazho/incubator-pinot/data"
	"github.com/yijiazho/incubator-pinot/query"
)

// SelectionReducer merges row-set partial results into one response:
// either an arbitrary bounded row set (no order-by) or a distributed
// top-K merge of per-server pre-sorted results.
type SelectionReducer struct {
	selection         *query.Selection
	preserveType      bool
	responseFormatSQL bool
}

func NewSelectionReducer(selection *query.Selection, opts query.Options) *SelectionReducer {
	return &SelectionReducer{
		selection:         selection,
		preserveType:      opts.PreserveType,
		responseFormatSQL: opts.ResponseFormatSQL,
	}
}

// ReduceAndSetResults reduces the per-server tables and sets selection
// results into
//  1. ResultTable if the response format is SQL
//  2. SelectionResults by default
func (r *SelectionReducer) ReduceAndSetResults(tableName string, schema *data.DataSchema,
	tables map[data.ServerInstance]*data.DataTable, response *BrokerResponse, metrics Metrics) error {

	if len(tables) == 0 {
		// Construct an empty result from the cached reference schema if
		// one exists; without a schema there is nothing to shape the
		// response with, so leave it untouched.
		if schema == nil {
			return nil
		}
		return r.setEmptyResults(*schema, response)
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
			// Every response conflicted with the reference schema; fall
			// back to the empty result under the original schema.
			return r.setEmptyResults(*schema, response)
		}
	} else {
		// A single response has nothing to reconcile against, but it may
		// still report wider types than the plan's reference; rows must
		// be read under a schema that covers them.
		merged = merged.WidenToCover(survivors[0].Schema())
	}

	var rows []data.Row
	if r.selection.IsOrdered() {
		var err error
		rows, err = reduceWithOrdering(survivors, r.selection.OrderBy, merged, r.selection.Size)
		if err != nil {
			return err
		}
	} else {
		rows = reduceWithoutOrdering(survivors, r.selection.Size)
	}

	columns := selectionColumns(r.selection.Columns, merged)
	if r.responseFormatSQL {
		table, err := renderResultTable(rows, merged, columns)
		if err != nil {
			return err
		}
		response.SetResultTable(table)
		return nil
	}
	results, err := renderSelectionResults(rows, merged, columns, r.preserveType)
	if err != nil {
		return err
	}
	response.SetSelectionResults(results)
	return nil
}

// setEmptyResults renders a zero-row payload shaped by the requested
// columns and the given schema.
func (r *SelectionReducer) setEmptyResults(schema data.DataSchema, response *BrokerResponse) error {
	columns := selectionColumns(r.selection.Columns, schema)
	if r.responseFormatSQL {
		table, err := renderResultTable(nil, schema, columns)
		if err != nil {
			return err
		}
		response.SetResultTable(table)
		return nil
	}
	results, err := renderSelectionResults(nil, schema, columns, r.preserveType)
	if err != nil {
		return err
	}
	response.SetSelectionResults(results)
	return nil
}

// reportDroppedServers records the non-fatal schema-conflict
// diagnostic: a warning, a structured exception on the response and a
// per-table meter bump.
func reportDroppedServers(tableName string, dropped []data.ServerInstance,
	response *BrokerResponse, metrics Metrics) {

	err := common.NewQueryError(common.MergeResponseError,
		"responses for table: %s from servers: %v got dropped due to data schema inconsistency",
		tableName, dropped)
	log.Warn().Str("table", tableName).Interface("droppedServers", dropped).Msg(err.ErrString)
	if metrics != nil {
		metrics.AddMeteredTableValue(tableName, ResponseMergeExceptions, 1)
	}
	response.AddException(err.Code, err.ErrString)
}
