// Package queryfilter builds parameterized WHERE / ORDER BY / LIMIT clauses for
// listing queries. Values never reach the SQL text: every predicate binds a
// freshly named pgx.NamedArgs parameter, and identifiers are quoted.
package queryfilter

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5"
)

// Direction of an ORDER BY term.
const (
	Asc  = "ASC"
	Desc = "DESC"
)

const likeEscaper = `\`

// Builder accumulates predicates and ordering for a single table alias.
// It is not safe for concurrent use; build one per query.
type Builder struct {
	alias    string
	sortable map[string]struct{}
	clauses  []string
	args     pgx.NamedArgs
	counter  int
	orders   []string
	page     int
	pageSize int
}

// New returns a builder for rows aliased as alias. When allowedColumns is
// non-nil only those columns may be passed to OrderBy.
// Soft-deleted rows are always excluded.
func New(alias string, allowedColumns []string) *Builder {
	b := &Builder{
		alias: alias,
		args:  pgx.NamedArgs{},
	}
	if allowedColumns != nil {
		b.sortable = make(map[string]struct{}, len(allowedColumns))
		for _, c := range allowedColumns {
			b.sortable[c] = struct{}{}
		}
	}
	b.clauses = append(b.clauses, b.column("deleted_at")+" IS NULL")
	return b
}

func (b *Builder) column(name string) string {
	if b.alias == "" {
		return pgx.Identifier{name}.Sanitize()
	}
	return pgx.Identifier{b.alias, name}.Sanitize()
}

// bind registers value under a new parameter name derived from column and
// returns the placeholder. Names never repeat within a builder.
func (b *Builder) bind(column string, value any) string {
	b.counter++
	name := fmt.Sprintf("%s_%d", paramBase(column), b.counter)
	b.args[name] = value
	return "@" + name
}

func paramBase(column string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(column) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "p"
	}
	return sb.String()
}

func escapeLike(v string) string {
	r := strings.NewReplacer(likeEscaper, likeEscaper+likeEscaper, "%", likeEscaper+"%", "_", likeEscaper+"_")
	return "%" + r.Replace(v) + "%"
}

func (b *Builder) likeExpr(column, value string) string {
	return fmt.Sprintf("%s ILIKE %s ESCAPE '%s'", b.column(column), b.bind(column, escapeLike(value)), likeEscaper)
}

// Like adds a case-insensitive substring match.
func (b *Builder) Like(column, value string) *Builder {
	b.clauses = append(b.clauses, b.likeExpr(column, value))
	return b
}

// OrLike matches value as a substring of any of columns.
func (b *Builder) OrLike(value string, columns ...string) *Builder {
	if len(columns) == 0 {
		return b
	}
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = b.likeExpr(c, value)
	}
	b.clauses = append(b.clauses, "("+strings.Join(parts, " OR ")+")")
	return b
}

func (b *Builder) Equal(column string, value any) *Builder {
	b.clauses = append(b.clauses, b.column(column)+" = "+b.bind(column, value))
	return b
}

func (b *Builder) NotEqual(column string, value any) *Builder {
	b.clauses = append(b.clauses, b.column(column)+" <> "+b.bind(column, value))
	return b
}

// In matches any element of values, which must be a slice. An empty slice
// matches nothing.
func (b *Builder) In(column string, values any) *Builder {
	if sliceLen(values) == 0 {
		b.clauses = append(b.clauses, "FALSE")
		return b
	}
	b.clauses = append(b.clauses, b.column(column)+" = ANY("+b.bind(column, values)+")")
	return b
}

// NotIn excludes every element of values. An empty slice excludes nothing.
func (b *Builder) NotIn(column string, values any) *Builder {
	if sliceLen(values) == 0 {
		return b
	}
	b.clauses = append(b.clauses, b.column(column)+" <> ALL("+b.bind(column, values)+")")
	return b
}

func (b *Builder) GreaterThanOrEqual(column string, value any) *Builder {
	b.clauses = append(b.clauses, b.column(column)+" >= "+b.bind(column, value))
	return b
}

func (b *Builder) LessThanOrEqual(column string, value any) *Builder {
	b.clauses = append(b.clauses, b.column(column)+" <= "+b.bind(column, value))
	return b
}

// OrderBy appends a sort term. An empty column is ignored. Asking for a
// column outside the allow-list panics with *apperrors.ConfigurationError:
// untrusted input must be checked against the allow-list before it gets here.
func (b *Builder) OrderBy(column, direction string) *Builder {
	if column == "" {
		return b
	}
	if b.sortable != nil {
		if _, ok := b.sortable[column]; !ok {
			panic(apperrors.NewConfigurationError("column %q is not sortable", column))
		}
	}
	dir := Asc
	if strings.EqualFold(direction, Desc) {
		dir = Desc
	}
	b.orders = append(b.orders, b.column(column)+" "+dir)
	return b
}

// Paginate limits the result to one page. Non-positive values disable paging.
func (b *Builder) Paginate(page, pageSize int) *Builder {
	if page < 1 || pageSize < 1 {
		b.page, b.pageSize = 0, 0
		return b
	}
	b.page, b.pageSize = page, pageSize
	return b
}

// Apply is a convenience for loosely typed filters. Keys are columns; nil
// values are skipped. Strings become substring matches, slices become set
// matches and anything else becomes equality. A []byte is a single value,
// not a set. Use Equal directly when a string must match exactly.
func (b *Builder) Apply(filters map[string]any) *Builder {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, column := range keys {
		value := filters[column]
		if isNil(value) {
			continue
		}
		switch v := value.(type) {
		case string:
			b.Like(column, v)
		default:
			if isSlice(v) {
				b.In(column, v)
			} else {
				b.Equal(column, v)
			}
		}
	}
	return b
}

// Build snapshots the accumulated state. Later calls on the builder do not
// affect the returned Spec.
func (b *Builder) Build() Spec {
	args := make(pgx.NamedArgs, len(b.args))
	for k, v := range b.args {
		args[k] = v
	}
	return Spec{
		Where:    strings.Join(b.clauses, " AND "),
		Args:     args,
		OrderBy:  strings.Join(b.orders, ", "),
		Page:     b.page,
		PageSize: b.pageSize,
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isSlice(v any) bool {
	if _, ok := v.([]byte); ok {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func sliceLen(v any) int {
	if isNil(v) || !isSlice(v) {
		return 0
	}
	return reflect.ValueOf(v).Len()
}
