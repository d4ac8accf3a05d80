package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yijiazho/incubator-pinot/common"
	"github.com/yijiazho/incubator-pinot/data"
	"github.com/yijiazho/incubator-pinot/query"
)

func TestDistinctReducer_UnionsServerSets(t *testing.T) {
	schema := schemaOf([]string{"color"}, common.StringType)
	tables := map[data.ServerInstance]*data.DataTable{
		"server1": tableOf(schema, data.Row{sv("red")}, data.Row{sv("blue")}),
		"server2": tableOf(schema, data.Row{sv("blue")}, data.Row{sv("green")}),
	}
	distinct := &query.Distinct{Columns: []string{"color"}, Limit: 10}

	response := &BrokerResponse{}
	err := NewDistinctReducer(distinct, query.Options{PreserveType: true}).
		ReduceAndSetResults("testTable", &schema, tables, response, nil)
	require.NoError(t, err)

	require.NotNil(t, response.SelectionResults)
	assert.Equal(t, [][]any{{"blue"}, {"green"}, {"red"}}, response.SelectionResults.Rows,
		"rows deduplicated and emitted in comparator order")
}

func TestDistinctReducer_Limit(t *testing.T) {
	schema := schemaOf([]string{"n"}, common.IntType)
	tables := map[data.ServerInstance]*data.DataTable{
		"server1": tableOf(schema, data.Row{iv(3)}, data.Row{iv(1)}, data.Row{iv(2)}),
	}
	distinct := &query.Distinct{Columns: []string{"n"}, Limit: 2}

	response := &BrokerResponse{}
	err := NewDistinctReducer(distinct, query.Options{ResponseFormatSQL: true}).
		ReduceAndSetResults("testTable", &schema, tables, response, nil)
	require.NoError(t, err)

	require.NotNil(t, response.ResultTable)
	assert.Equal(t, [][]any{{int64(1)}, {int64(2)}}, response.ResultTable.Rows)
}

func TestDistinctReducer_DeduplicatesAcrossWidenedTypes(t *testing.T) {
	intSchema := schemaOf([]string{"n"}, common.IntType)
	longSchema := schemaOf([]string{"n"}, common.LongType)
	tables := map[data.ServerInstance]*data.DataTable{
		"server1": tableOf(intSchema, data.Row{iv(5)}),
		"server2": tableOf(longSchema, data.Row{lv(5)}, data.Row{lv(6)}),
	}
	distinct := &query.Distinct{Columns: []string{"n"}, Limit: 10}

	response := &BrokerResponse{}
	err := NewDistinctReducer(distinct, query.Options{ResponseFormatSQL: true}).
		ReduceAndSetResults("testTable", &intSchema, tables, response, nil)
	require.NoError(t, err)

	require.NotNil(t, response.ResultTable)
	assert.Equal(t, common.LongType, response.ResultTable.DataSchema.ColumnType(0))
	assert.Equal(t, [][]any{{int64(5)}, {int64(6)}}, response.ResultTable.Rows,
		"the same logical value from differently-typed servers is one distinct row")
}

func TestDistinctReducer_SingleServerWiderSchema(t *testing.T) {
	ref := schemaOf([]string{"n"}, common.IntType)
	wide := schemaOf([]string{"n"}, common.LongType)
	tables := map[data.ServerInstance]*data.DataTable{
		"server1": tableOf(wide, data.Row{lv(5)}),
	}
	distinct := &query.Distinct{Columns: []string{"n"}, Limit: 10}

	response := &BrokerResponse{}
	err := NewDistinctReducer(distinct, query.Options{ResponseFormatSQL: true}).
		ReduceAndSetResults("testTable", &ref, tables, response, nil)
	require.NoError(t, err)
	require.NotNil(t, response.ResultTable)
	assert.Equal(t, common.LongType, response.ResultTable.DataSchema.ColumnType(0))
	assert.Equal(t, [][]any{{int64(5)}}, response.ResultTable.Rows)
}

func TestDistinctReducer_EmptyMap(t *testing.T) {
	schema := schemaOf([]string{"n"}, common.IntType)
	distinct := &query.Distinct{Columns: []string{"n"}, Limit: 10}

	response := &BrokerResponse{}
	err := NewDistinctReducer(distinct, query.Options{}).
		ReduceAndSetResults("testTable", &schema, nil, response, nil)
	require.NoError(t, err)
	require.NotNil(t, response.SelectionResults)
	assert.Empty(t, response.SelectionResults.Rows)
}
