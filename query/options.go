package query

// Option keys accepted in the query-options bag attached to a request.
const (
	OptionPreserveType   = "preserveType"
	OptionResponseFormat = "responseFormat"
	ResponseFormatSQL    = "sql"
)

// Options are the reduction-relevant query options.
type Options struct {
	// PreserveType keeps native typed values in the legacy response
	// format instead of coercing every cell to a string.
	PreserveType bool
	// ResponseFormatSQL selects the strict typed result-table response
	// shape instead of the legacy selection-results shape.
	ResponseFormatSQL bool
}

// ParseOptions reads reduction options from the raw query-options map.
// Unknown keys are ignored; they belong to other subsystems.
func ParseOptions(raw map[string]string) Options {
	var opts Options
	opts.PreserveType = isTrue(raw[OptionPreserveType])
	opts.ResponseFormatSQL = raw[OptionResponseFormat] == ResponseFormatSQL
	return opts
}

func isTrue(v string) bool {
	return v == "true" || v == "1"
}
