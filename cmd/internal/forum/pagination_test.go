package forum

import (
	"errors"
	"net/url"
	"testing"

	"qna/cmd/internal/rejection"
)

func TestPagination_Defaults(t *testing.T) {
	p, err := PaginationFromQuery(url.Values{})
	if err != nil {
		t.Fatalf("PaginationFromQuery: %v", err)
	}
	if p.Limit != -1 || p.Offset != 0 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestPagination_Window(t *testing.T) {
	p, err := PaginationFromQuery(url.Values{"start": {"10"}, "end": {"30"}})
	if err != nil {
		t.Fatalf("PaginationFromQuery: %v", err)
	}
	if p.Limit != 20 || p.Offset != 10 {
		t.Fatalf("expected limit 20 offset 10, got %+v", p)
	}
}

func TestPagination_MissingParameter(t *testing.T) {
	for _, q := range []url.Values{
		{"start": {"10"}},
		{"end": {"30"}},
	} {
		_, err := PaginationFromQuery(q)
		if !errors.Is(err, rejection.ErrMissingParameters) {
			t.Fatalf("expected ErrMissingParameters for %v, got %v", q, err)
		}
	}
}

func TestPagination_ParseFailure(t *testing.T) {
	_, err := PaginationFromQuery(url.Values{"start": {"ten"}, "end": {"30"}})
	var parseErr rejection.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestPagination_InvalidRange(t *testing.T) {
	_, err := PaginationFromQuery(url.Values{"start": {"30"}, "end": {"10"}})
	if !errors.Is(err, rejection.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}

	_, err = PaginationFromQuery(url.Values{"start": {"-5"}, "end": {"10"}})
	if !errors.Is(err, rejection.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for negative start, got %v", err)
	}
}
