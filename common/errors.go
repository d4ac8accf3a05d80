package common

import "fmt"

// QueryErrorCode identifies the class of a query processing failure.
// The numeric values are stable wire codes surfaced to clients in the
// broker response's exception list.
type QueryErrorCode int

const (
	// QueryExecutionError covers generic failures while producing the
	// reduced result.
	QueryExecutionError QueryErrorCode = 200
	// UnknownColumnError indicates a requested output or order-by
	// column that does not exist in the result schema. Fatal for the
	// current response.
	UnknownColumnError QueryErrorCode = 350
	// MergeResponseError indicates that one or more server responses
	// were dropped during the merge, e.g. for schema inconsistency.
	// Non-fatal; the query returns a best-effort result.
	MergeResponseError QueryErrorCode = 500
)

func (ec QueryErrorCode) String() string {
	switch ec {
	case QueryExecutionError:
		return "QueryExecutionError"
	case UnknownColumnError:
		return "UnknownColumnError"
	case MergeResponseError:
		return "MergeResponseError"
	}
	return "unknown"
}

// QueryError is the error type for broker-side reduction failures.
// It wraps a QueryErrorCode with a detailed message so the response
// builder can attach a structured exception record.
type QueryError struct {
	Code      QueryErrorCode
	ErrString string
}

func (e QueryError) Error() string {
	return fmt.Sprintf("err: %s; msg: %s", e.Code.String(), e.ErrString)
}

// NewQueryError builds a QueryError with a formatted message.
func NewQueryError(code QueryErrorCode, format string, args ...any) QueryError {
	return QueryError{Code: code, ErrString: fmt.Sprintf(format, args...)}
}
