package reduce

import (
	"fmt"

	"github.com/yijiazho/incubator-pinot/common"
	"github.com/yijiazho/incubator-pinot/data"
	"github.com/yijiazho/incubator-pinot/query"
)

// AggregationReducer merges flat (non-grouped) aggregation results.
// Each server contributes one row of intermediate values, positionally
// aligned with the query's aggregation list; merging folds them with
// the per-function combine op (count and sum add, min and max compare).
type AggregationReducer struct {
	aggregations      []query.Aggregation
	responseFormatSQL bool
}

func NewAggregationReducer(aggregations []query.Aggregation, opts query.Options) *AggregationReducer {
	return &AggregationReducer{
		aggregations:      aggregations,
		responseFormatSQL: opts.ResponseFormatSQL,
	}
}

func (r *AggregationReducer) ReduceAndSetResults(tableName string, schema *data.DataSchema,
	tables map[data.ServerInstance]*data.DataTable, response *BrokerResponse, metrics Metrics) error {

	if len(tables) == 0 {
		if schema == nil {
			return nil
		}
		return r.setResults(r.identityRow(*schema), *schema, response)
	}

	common.Assert(schema != nil, "reference schema missing for table %s with %d server responses",
		tableName, len(tables))
	common.Assert(schema.Size() == len(r.aggregations),
		"aggregation schema %s does not match %d aggregations", schema, len(r.aggregations))

	merged := *schema
	survivors := tablesInServerOrder(tables)
	if len(tables) > 1 {
		var dropped []data.ServerInstance
		merged, survivors, dropped = reconcileSchemas(*schema, tables)
		if len(dropped) > 0 {
			reportDroppedServers(tableName, dropped, response, metrics)
		}
		if len(survivors) == 0 {
			return r.setResults(r.identityRow(*schema), *schema, response)
		}
	} else {
		// A lone response may report wider types than the reference.
		merged = merged.WidenToCover(survivors[0].Schema())
	}

	row := r.identityRow(merged)
	for _, table := range survivors {
		for i := 0; i < table.NumRows(); i++ {
			partial := table.Row(i)
			for c := range r.aggregations {
				row[c] = r.combine(r.aggregations[c].Function, row[c], partial[c].Convert(merged.ColumnType(c)))
			}
		}
	}
	return r.setResults(row, merged, response)
}

// identityRow builds the merge identity: zero for count, NULL for
// everything else (a sum/min/max with no contributions is NULL).
func (r *AggregationReducer) identityRow(schema data.DataSchema) data.Row {
	row := make(data.Row, len(r.aggregations))
	for i, agg := range r.aggregations {
		if agg.Function == query.Count {
			row[i] = zeroValue(schema.ColumnType(i))
		} else {
			row[i] = common.NewNullValue(schema.ColumnType(i))
		}
	}
	return row
}

func (r *AggregationReducer) combine(fn query.AggregationFunction, acc, v common.Value) common.Value {
	if v.IsNull() {
		return acc
	}
	if acc.IsNull() {
		return v
	}
	switch fn {
	case query.Count, query.Sum:
		return addValues(acc, v)
	case query.Min:
		if v.Compare(acc) < 0 {
			return v
		}
		return acc
	case query.Max:
		if v.Compare(acc) > 0 {
			return v
		}
		return acc
	}
	common.Assert(false, "unknown aggregation function %v", fn)
	return acc
}

func (r *AggregationReducer) setResults(row data.Row, schema data.DataSchema, response *BrokerResponse) error {
	if r.responseFormatSQL {
		table, err := renderResultTable([]data.Row{row}, schema, schema.ColumnNames())
		if err != nil {
			return err
		}
		response.SetResultTable(table)
		return nil
	}
	results := make([]AggregationResult, len(r.aggregations))
	for i, agg := range r.aggregations {
		results[i] = AggregationResult{
			Function: fmt.Sprintf("%s(%s)", agg.Function, agg.Column),
			Value:    row[i].Convert(schema.ColumnType(i)).Native(),
		}
	}
	response.AggregationResults = results
	response.NumRowsResultSet = 1
	return nil
}

func zeroValue(t common.Type) common.Value {
	switch t {
	case common.IntType:
		return common.NewIntValue(0)
	case common.LongType:
		return common.NewLongValue(0)
	case common.FloatType:
		return common.NewFloatValue(0)
	case common.DoubleType:
		return common.NewDoubleValue(0)
	}
	common.Assert(false, "no zero for non-numeric type %v", t)
	return common.Value{}
}

func addValues(a, b common.Value) common.Value {
	t := a.Type().Widen(b.Type())
	switch t {
	case common.IntType:
		return common.NewIntValue(int32(a.IntValue() + b.IntValue()))
	case common.LongType:
		return common.NewLongValue(a.Convert(t).IntValue() + b.Convert(t).IntValue())
	case common.FloatType:
		return common.NewFloatValue(float32(a.FloatValue() + b.FloatValue()))
	case common.DoubleType:
		return common.NewDoubleValue(a.FloatValue() + b.FloatValue())
	}
	common.Assert(false, "cannot add values of type %v", t)
	return common.Value{}
}
