package reduce

import (
	"github.com/yijiazho/incubator-pinot/data"
	"github.com/yijiazho/incubator-pinot/query"
)

// Service is the broker's entry point into result reduction. The
// transport layer invokes it once per completed scatter/gather round
// with a finalized snapshot of the per-server tables; reduction itself
// is synchronous and performs no I/O.
type Service struct {
	metrics Metrics
}

func NewService(metrics Metrics) *Service {
	return &Service{metrics: metrics}
}

// Reduce merges the per-server partial results for one query into a
// broker response. schema is nil only when no server replied before
// the deadline.
func (s *Service) Reduce(q *query.Query, opts query.Options, schema *data.DataSchema,
	tables map[data.ServerInstance]*data.DataTable) (*BrokerResponse, error) {

	response := &BrokerResponse{}
	reducer := ReducerForQuery(q, opts)
	if err := reducer.ReduceAndSetResults(q.TableName, schema, tables, response, s.metrics); err != nil {
		log.Error().Err(err).Str("table", q.TableName).Msg("reduction failed")
		return nil, err
	}
	return response, nil
}
