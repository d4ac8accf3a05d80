package reduce

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Meter names a broker-side counter.
type Meter string

const (
	// ResponseMergeExceptions counts server responses dropped during
	// the merge, tagged by table.
	ResponseMergeExceptions Meter = "responseMergeExceptions"
)

// Metrics is the sink reducers report to. A nil Metrics is allowed and
// means "no metrics".
type Metrics interface {
	AddMeteredTableValue(tableName string, meter Meter, count int64)
}

// BrokerMetrics is the in-process Metrics implementation. Counters are
// kept in a concurrent map keyed by table and meter so many query
// reductions can report in parallel without a shared lock.
type BrokerMetrics struct {
	counters *xsync.MapOf[string, *xsync.Counter]
}

func NewBrokerMetrics() *BrokerMetrics {
	return &BrokerMetrics{
		counters: xsync.NewMapOf[string, *xsync.Counter](),
	}
}

func (m *BrokerMetrics) AddMeteredTableValue(tableName string, meter Meter, count int64) {
	c, _ := m.counters.LoadOrCompute(metricKey(tableName, meter), func() *xsync.Counter {
		return xsync.NewCounter()
	})
	c.Add(count)
}

// TableValue reads the current count for a table's meter.
func (m *BrokerMetrics) TableValue(tableName string, meter Meter) int64 {
	c, ok := m.counters.Load(metricKey(tableName, meter))
	if !ok {
		return 0
	}
	return c.Value()
}

func metricKey(tableName string, meter Meter) string {
	return tableName + "." + string(meter)
}
