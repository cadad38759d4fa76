package queryfilter

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
)

// FilterKind decides which predicate a query parameter turns into.
type FilterKind int

const (
	// FilterExact binds the value with Equal.
	FilterExact FilterKind = iota
	// FilterContains is a case-insensitive substring match.
	FilterContains
	// FilterList splits a comma separated value into a set match.
	FilterList
	// FilterFrom and FilterTo bound a timestamp column (RFC 3339 or YYYY-MM-DD).
	FilterFrom
	FilterTo
)

// Filter maps one query parameter onto a column.
type Filter struct {
	Column string
	Kind   FilterKind
	// Allowed, when set, restricts values (after Normalize) to this list.
	Allowed []string
	// Normalize is applied to every raw value before validation.
	Normalize func(string) string
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Schema describes what a listing endpoint accepts for one entity: which
// columns can be sorted on and which query parameters become filters.
type Schema struct {
	Alias            string
	SortColumns      []string
	DefaultSort      string
	DefaultDirection string
	Filters          map[string]Filter
	DefaultPageSize  int
	MaxPageSize      int
}

type condition struct {
	filter Filter
	value  any
}

// ListParams is validated listing input, produced by Schema.Parse.
type ListParams struct {
	SortBy     string
	Direction  string
	Page       int
	PageSize   int
	conditions []condition
}

// HasFilters reports whether any filter parameter was supplied.
func (p ListParams) HasFilters() bool {
	return len(p.conditions) > 0
}

// Parse validates untrusted query parameters. Unlike Builder.OrderBy, an
// unknown sort column here is user error and comes back as a ValidationError.
func (s Schema) Parse(q url.Values) (ListParams, error) {
	var causes []apperrors.FieldError
	fail := func(field, msg string) {
		causes = append(causes, apperrors.FieldError{Field: field, Message: msg})
	}

	params := ListParams{
		SortBy:    s.DefaultSort,
		Direction: s.DefaultDirection,
		Page:      1,
		PageSize:  s.pageSize(),
	}

	if sortBy := q.Get("sort_by"); sortBy != "" {
		if !slices.Contains(s.SortColumns, sortBy) {
			fail("sort_by", "must be one of "+strings.Join(s.SortColumns, ", "))
		} else {
			params.SortBy = sortBy
		}
	}
	if order := q.Get("order"); order != "" {
		switch strings.ToUpper(order) {
		case Asc, Desc:
			params.Direction = strings.ToUpper(order)
		default:
			fail("order", "must be asc or desc")
		}
	}
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			fail("page", "must be a positive integer")
		} else {
			params.Page = page
		}
	}
	if raw := q.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > s.maxPageSize() {
			fail("page_size", "must be between 1 and "+strconv.Itoa(s.maxPageSize()))
		} else {
			params.PageSize = size
		}
	}

	names := make([]string, 0, len(s.Filters))
	for name := range s.Filters {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			continue
		}
		f := s.Filters[name]
		value, msg := f.parse(raw)
		if msg != "" {
			fail(name, msg)
			continue
		}
		params.conditions = append(params.conditions, condition{filter: f, value: value})
	}

	if len(causes) > 0 {
		return ListParams{}, apperrors.NewValidationError("invalid list parameters", causes...)
	}
	return params, nil
}

func (f Filter) normalize(v string) string {
	if f.Normalize == nil {
		return v
	}
	return f.Normalize(v)
}

func (f Filter) allowed(v string) bool {
	return f.Allowed == nil || slices.Contains(f.Allowed, v)
}

func (f Filter) parse(raw string) (any, string) {
	switch f.Kind {
	case FilterList:
		var values []string
		for _, part := range strings.Split(raw, ",") {
			part = f.normalize(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			if !f.allowed(part) {
				return nil, "contains an unsupported value " + strconv.Quote(part)
			}
			values = append(values, part)
		}
		return values, ""
	case FilterFrom, FilterTo:
		t, err := parseTime(raw)
		if err != nil {
			return nil, "must be an RFC 3339 timestamp or YYYY-MM-DD date"
		}
		if f.Kind == FilterTo && len(raw) == len(time.DateOnly) {
			// A bare date includes the whole day.
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return t, ""
	default:
		v := f.normalize(raw)
		if !f.allowed(v) {
			return nil, "must be one of " + strings.Join(f.Allowed, ", ")
		}
		return v, ""
	}
}

func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}

func (s Schema) pageSize() int {
	if s.DefaultPageSize > 0 {
		return s.DefaultPageSize
	}
	return defaultPageSize
}

func (s Schema) maxPageSize() int {
	if s.MaxPageSize > 0 {
		return s.MaxPageSize
	}
	return maxPageSize
}

// Builder returns a builder restricted to the schema's sort columns with the
// parsed filters, ordering and page applied. Callers add their own scoping
// predicates (owner, parent id) before calling Build.
func (s Schema) Builder(params ListParams) *Builder {
	b := New(s.Alias, s.SortColumns)

	for _, c := range params.conditions {
		switch c.filter.Kind {
		case FilterContains:
			b.Like(c.filter.Column, c.value.(string))
		case FilterList:
			if values, _ := c.value.([]string); len(values) > 0 {
				b.In(c.filter.Column, values)
			}
		case FilterFrom:
			b.GreaterThanOrEqual(c.filter.Column, c.value)
		case FilterTo:
			b.LessThanOrEqual(c.filter.Column, c.value)
		default:
			b.Equal(c.filter.Column, c.value)
		}
	}

	b.OrderBy(params.SortBy, params.Direction)
	return b.Paginate(params.Page, params.PageSize)
}
