package reduce

import (
	"sort"

	"github.com/yijiazho/incubator-pinot/data"
)

// reconcileSchemas validates every server's partial table against the
// reference schema and widens the reference to cover the survivors.
//
// Servers are visited in sorted-name order so the fold is stable run to
// run; the final widened schema and dropped set are the same for any
// visitation order because widening is the least upper bound over the
// type lattice. Each table is compared against the CURRENT running
// reference, so a table is dropped as soon as it conflicts with any
// already-accepted type.
//
// The input schema and tables are never mutated: the widened schema is
// a new value owned by the caller, and survivors borrow the input
// tables. Dropped servers are excluded before any row is read.
func reconcileSchemas(reference data.DataSchema, tables map[data.ServerInstance]*data.DataTable) (
	widened data.DataSchema, survivors []*data.DataTable, dropped []data.ServerInstance) {

	servers := make([]data.ServerInstance, 0, len(tables))
	for server := range tables {
		servers = append(servers, server)
	}
	sort.Slice(servers, func(i, j int) bool { return servers[i] < servers[j] })

	widened = reference
	survivors = make([]*data.DataTable, 0, len(tables))
	for _, server := range servers {
		table := tables[server]
		if !widened.IsTypeCompatibleWith(table.Schema()) {
			dropped = append(dropped, server)
			continue
		}
		widened = widened.WidenToCover(table.Schema())
		survivors = append(survivors, table)
	}
	return widened, survivors, dropped
}

// tablesInServerOrder returns the tables sorted by server name, the
// same stable order reconciliation uses. Used when reconciliation is
// skipped (single server) so both paths feed the merge identically.
func tablesInServerOrder(tables map[data.ServerInstance]*data.DataTable) []*data.DataTable {
	servers := make([]data.ServerInstance, 0, len(tables))
	for server := range tables {
		servers = append(servers, server)
	}
	sort.Slice(servers, func(i, j int) bool { return servers[i] < servers[j] })

	out := make([]*data.DataTable, 0, len(tables))
	for _, server := range servers {
		out = append(out, tables[server])
	}
	return out
}
