package queryfilter

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Spec is the immutable result of Builder.Build, ready to be spliced into a
// SELECT by a repository.
type Spec struct {
	Where    string
	Args     pgx.NamedArgs
	OrderBy  string
	Page     int
	PageSize int
}

func (s Spec) WhereClause() string {
	if s.Where == "" {
		return ""
	}
	return "WHERE " + s.Where
}

func (s Spec) OrderClause() string {
	if s.OrderBy == "" {
		return ""
	}
	return "ORDER BY " + s.OrderBy
}

// Limit is the page size, or 0 when the Spec is unpaged.
func (s Spec) Limit() int {
	return s.PageSize
}

// Offset is the number of rows to skip for the requested page.
func (s Spec) Offset() int {
	if s.Page < 1 || s.PageSize < 1 {
		return 0
	}
	return (s.Page - 1) * s.PageSize
}

func (s Spec) LimitClause() string {
	if s.PageSize < 1 {
		return ""
	}
	return fmt.Sprintf("LIMIT %d OFFSET %d", s.PageSize, s.Offset())
}

// IsPaged reports whether the Spec restricts results to a single page.
func (s Spec) IsPaged() bool {
	return s.PageSize > 0
}
