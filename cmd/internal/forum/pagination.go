package forum

import (
	"net/url"
	"strconv"

	"qna/cmd/internal/rejection"
)

// Pagination is a validated start/end window translated to LIMIT/OFFSET.
// Limit < 0 means "no limit".
type Pagination struct {
	Limit  int32
	Offset int32
}

// DefaultPagination returns the unbounded window used when no parameters are
// supplied.
func DefaultPagination() Pagination {
	return Pagination{Limit: -1, Offset: 0}
}

// PaginationFromQuery parses the start/end query parameters.
//
// Rules:
//   - neither present: defaults.
//   - only one present: missing-parameters rejection.
//   - unparsable value: parse rejection carrying the strconv detail.
//   - end < start: invalid-range rejection.
func PaginationFromQuery(q url.Values) (Pagination, error) {
	startRaw := q.Get("start")
	endRaw := q.Get("end")

	if startRaw == "" && endRaw == "" {
		return DefaultPagination(), nil
	}
	if startRaw == "" || endRaw == "" {
		return Pagination{}, rejection.ErrMissingParameters
	}

	start, err := strconv.ParseInt(startRaw, 10, 32)
	if err != nil {
		return Pagination{}, rejection.ParseError{Err: err}
	}
	end, err := strconv.ParseInt(endRaw, 10, 32)
	if err != nil {
		return Pagination{}, rejection.ParseError{Err: err}
	}

	if end < start || start < 0 {
		return Pagination{}, rejection.ErrInvalidRange
	}

	return Pagination{
		Limit:  int32(end - start),
		Offset: int32(start),
	}, nil
}
