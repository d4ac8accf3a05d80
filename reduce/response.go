package reduce

import (
	"github.com/yijiazho/incubator-pinot/common"
	"github.com/yijiazho/incubator-pinot/data"
)

// ProcessingException is one structured exception record attached to a
// broker response. Non-fatal conditions (dropped servers) surface here
// while the query still returns best-effort data.
type ProcessingException struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
}

// ResultTable is the strict typed response shape: an explicit schema
// plus rows whose cells are native typed values coerced to the schema's
// column types.
type ResultTable struct {
	DataSchema data.DataSchema `json:"dataSchema"`
	Rows       [][]any         `json:"rows"`
}

// SelectionResults is the legacy loosely-typed response shape: a column
// name list plus rows. Cells are strings unless the query asked to
// preserve native types.
type SelectionResults struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"results"`
}

// AggregationResult is one merged flat-aggregation value in the legacy
// response shape.
type AggregationResult struct {
	Function string `json:"function"`
	Value    any    `json:"value"`
}

// BrokerResponse is the client-facing response under construction.
// Exactly one of ResultTable, SelectionResults or AggregationResults is
// set by a reducer; the response format flag decides which.
type BrokerResponse struct {
	ResultTable        *ResultTable          `json:"resultTable,omitempty"`
	SelectionResults   *SelectionResults     `json:"selectionResults,omitempty"`
	AggregationResults []AggregationResult   `json:"aggregationResults,omitempty"`
	Exceptions         []ProcessingException `json:"exceptions"`
	NumRowsResultSet   int                   `json:"numRowsResultSet"`
}

// AddException appends a structured exception record.
func (r *BrokerResponse) AddException(code common.QueryErrorCode, message string) {
	r.Exceptions = append(r.Exceptions, ProcessingException{ErrorCode: int(code), Message: message})
}

// SetResultTable installs the strict typed payload.
func (r *BrokerResponse) SetResultTable(table *ResultTable) {
	common.Assert(r.SelectionResults == nil, "response already holds selection results")
	r.ResultTable = table
	r.NumRowsResultSet = len(table.Rows)
}

// SetSelectionResults installs the legacy payload.
func (r *BrokerResponse) SetSelectionResults(results *SelectionResults) {
	common.Assert(r.ResultTable == nil, "response already holds a result table")
	r.SelectionResults = results
	r.NumRowsResultSet = len(results.Rows)
}
