package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yijiazho/incubator-pinot/common"
	"github.com/yijiazho/incubator-pinot/data"
	"github.com/yijiazho/incubator-pinot/query"
)

func TestReducerForQuery(t *testing.T) {
	opts := query.Options{}

	q := &query.Query{Selection: &query.Selection{Size: 10}}
	assert.IsType(t, &SelectionReducer{}, ReducerForQuery(q, opts))

	q = &query.Query{Distinct: &query.Distinct{Columns: []string{"a"}, Limit: 10}}
	assert.IsType(t, &DistinctReducer{}, ReducerForQuery(q, opts))

	q = &query.Query{Aggregations: []query.Aggregation{{Function: query.Count, Column: "*"}}}
	assert.IsType(t, &AggregationReducer{}, ReducerForQuery(q, opts))
}

func TestService_Reduce(t *testing.T) {
	schema := schemaOf([]string{"a"}, common.IntType)
	tables := map[data.ServerInstance]*data.DataTable{
		"server1": tableOf(schema, data.Row{iv(1)}),
	}
	q := &query.Query{TableName: "testTable", Selection: &query.Selection{Size: 5}}

	service := NewService(NewBrokerMetrics())
	resp, err := service.Reduce(q, query.Options{ResponseFormatSQL: true}, &schema, tables)
	require.NoError(t, err)
	require.NotNil(t, resp.ResultTable)
	assert.Equal(t, 1, resp.NumRowsResultSet)

	// Fatal errors surface to the caller instead of a payload.
	bad := &query.Query{TableName: "testTable", Selection: &query.Selection{Columns: []string{"nope"}, Size: 5}}
	_, err = service.Reduce(bad, query.Options{}, &schema, tables)
	require.Error(t, err)
}

func TestBrokerMetrics_Counters(t *testing.T) {
	m := NewBrokerMetrics()
	m.AddMeteredTableValue("t1", ResponseMergeExceptions, 1)
	m.AddMeteredTableValue("t1", ResponseMergeExceptions, 2)
	m.AddMeteredTableValue("t2", ResponseMergeExceptions, 5)

	assert.Equal(t, int64(3), m.TableValue("t1", ResponseMergeExceptions))
	assert.Equal(t, int64(5), m.TableValue("t2", ResponseMergeExceptions))
	assert.Zero(t, m.TableValue("t3", ResponseMergeExceptions))
}
