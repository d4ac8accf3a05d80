package query

// AggregationFunction identifies one flat aggregation.
type AggregationFunction int

const (
	Count AggregationFunction = iota
	Sum
	Min
	Max
)

func (f AggregationFunction) String() string {
	switch f {
	case Count:
		return "count"
	case Sum:
		return "sum"
	case Min:
		return "min"
	case Max:
		return "max"
	}
	return "unknown"
}

// Aggregation is one aggregation requested by the query, e.g.
// sum(price). Column is "*" for count(*).
type Aggregation struct {
	Function AggregationFunction
	Column   string
}

// Distinct describes a distinct-values query: the global union of the
// servers' distinct row sets over the given columns, bounded by Limit.
type Distinct struct {
	Columns []string
	Limit   int
}

// Query is the compiled shape of a broker request, as far as reduction
// cares: exactly one of Selection, Aggregations or Distinct is set.
// The shape decides which reducer variant runs; reduction never
// inspects the original query text.
type Query struct {
	TableName    string
	Selection    *Selection
	Aggregations []Aggregation
	Distinct     *Distinct
}
